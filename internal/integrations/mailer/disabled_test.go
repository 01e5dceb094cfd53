package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	_ Sender = (*Client)(nil)
	_ Sender = (*DisabledClient)(nil)
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestDisabledClient_SkipsSending(t *testing.T) {
	c := NewDisabledClient(nopLogger{})

	err := c.SendWithGracefulDegradation(context.Background(), Message{
		To:       "maria@example.com",
		Template: TemplateBookingConfirmation,
	})

	assert.NoError(t, err)
}
