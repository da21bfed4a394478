package ports

import (
	"context"

	"mailroom/internal/core/domain/model/recipient"
)

// RecipientDirectory defines the read contract for the recipient directory.
// The directory is reference data: seeded at startup, read at intake time.
type RecipientDirectory interface {
	// GetAll retrieves every directory entry in directory order.
	GetAll(ctx context.Context) ([]*recipient.Entry, error)
}
