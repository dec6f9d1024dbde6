package service

import (
	"context"
	"runtime/debug"

	"github.com/ridwanfathin/invoice-register-service/internal/apperror"
	"github.com/ridwanfathin/invoice-register-service/internal/domain"
	"github.com/ridwanfathin/invoice-register-service/internal/logger"
)

// recoverRepositoryPanic converts a panic raised inside a repository call into
// an exceptional error stored in *errp. It must be deferred directly.
func recoverRepositoryPanic(ctx context.Context, op string, errp *error) {
	r := recover()
	if r == nil {
		return
	}

	appErr := apperror.FromPanic(op, r)
	logger.Error(ctx, "repository call panicked",
		"op", op,
		"panic", appErr.Message(),
		"stack", string(debug.Stack()),
	)
	*errp = appErr
}

// remarksOrEmpty loads remarks through load. A failed lookup is logged and
// degrades to an empty list so the invoice itself can still be served.
func remarksOrEmpty(ctx context.Context, invoiceID string, load func() ([]domain.Remark, error)) []domain.Remark {
	remarks, err := load()
	if err != nil {
		logger.Warn(ctx, "failed to load invoice remarks", "invoice_id", invoiceID, "error", err)
		return []domain.Remark{}
	}
	if remarks == nil {
		return []domain.Remark{}
	}
	return remarks
}
