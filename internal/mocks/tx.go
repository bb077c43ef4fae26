package mocks

import (
	"context"

	"github.com/phrazzld/oblivion-api/internal/store"
)

var _ store.TxRunner = InlineTx

// InlineTx runs fn without a database. The transaction handed to fn is nil,
// which the store mocks ignore in WithTx.
func InlineTx(ctx context.Context, fn store.TxFn) error {
	return fn(ctx, nil)
}

// FailingTx returns a store.TxRunner that never calls fn and returns err,
// as if the transaction could not be started.
func FailingTx(err error) store.TxRunner {
	return func(context.Context, store.TxFn) error {
		return err
	}
}
