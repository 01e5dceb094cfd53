package delete_user

import "context"

type CustomerService interface {
	Delete(ctx context.Context, email string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
