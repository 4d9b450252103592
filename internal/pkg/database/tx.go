package database

import "context"

// TxManager runs a function with every repository call inside it bound to a
// single database transaction. Implementations commit when fn returns nil and
// roll back otherwise.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
