package block_user

import "context"

type CustomerService interface {
	Block(ctx context.Context, email string, reason string) error
	Unblock(ctx context.Context, email string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
