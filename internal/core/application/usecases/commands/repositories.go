// Package commands holds the write side of the application layer. Every
// command is a validated value object paired with a handler that opens a
// unit of work, mutates aggregates, and commits.
package commands

import (
	"context"

	"mailroom/internal/core/ports"
)

// Narrow unit-of-work interfaces so command handlers depend only on the
// pieces they actually use.
type (
	// TxManager drives the transaction lifecycle around a handler run.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory hands out the parcel repository bound to the
	// current transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// ParcelUoW is the combination every parcel command handler needs:
	// transaction control plus repository access.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates a fresh ParcelUoW per handled command.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}
)
