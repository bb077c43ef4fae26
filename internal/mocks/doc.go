// Package mocks provides centralized mock implementations for testing.
//
// Every mock follows the same shape: one function field per interface method
// and default return values used when the field is nil. Store mocks return
// themselves from WithTx so a test can run a transactional service with
// InlineTx and observe every call on a single mock.
//
// Usage:
//
//	cards := &mocks.MockCardStore{
//	    GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
//	        return card, nil
//	    },
//	}
//
// Mocks of service interfaces only depend on domain types so that the
// service packages can use the store mocks in their own tests.
package mocks
