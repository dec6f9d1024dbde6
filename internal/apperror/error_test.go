package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"plain error is domain", errors.New("connection timeout"), KindDomain},
		{"domain error", NewDomain("list_purchase_invoices", errors.New("boom")), KindDomain},
		{"exceptional error", NewExceptional("parse_query", errors.New("bad escape")), KindExceptional},
		{"wrapped exceptional", fmt.Errorf("outer: %w", NewExceptional("op", errors.New("x"))), KindExceptional},
		{"zero kind falls back to domain", &Error{Op: "op", Err: errors.New("x")}, KindDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestMessageDropsOperation(t *testing.T) {
	err := NewDomain("list_sales_invoices", errors.New("connection timeout"))

	assert.Equal(t, "list_sales_invoices: connection timeout", err.Error())
	assert.Equal(t, "connection timeout", Message(err))
	assert.Equal(t, "connection timeout", Message(fmt.Errorf("wrapped: %w", err)))
	assert.Equal(t, "plain", Message(errors.New("plain")))
	assert.Equal(t, "", Message(nil))
}

func TestFromPanic(t *testing.T) {
	cause := errors.New("nil map write")
	err := FromPanic("gateway", cause)
	require.True(t, IsExceptional(err))
	assert.ErrorIs(t, err, cause)

	err = FromPanic("gateway", "index out of range")
	assert.True(t, IsExceptional(err))
	assert.Equal(t, "index out of range", Message(err))
}

func TestIsExceptionalNil(t *testing.T) {
	assert.False(t, IsExceptional(nil))
}
