package ports

import (
	"context"
)

// UnitOfWorkFactory builds a fresh UnitOfWork per command so concurrent
// handlers never share transaction state.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Handlers drive the
// lifecycle explicitly: Begin, mutate through the repositories, then
// Commit or Rollback.
type UnitOfWork interface {
	// Begin opens a database transaction.
	Begin(ctx context.Context) error

	// Commit finishes the current transaction. Fails when no transaction
	// is active.
	Commit(ctx context.Context) error

	// Rollback aborts the current transaction. Fails when no transaction
	// is active.
	Rollback(ctx context.Context) error

	// ParcelRepository returns a repository bound to the transaction
	// opened by Begin.
	ParcelRepository() ParcelRepository
}
