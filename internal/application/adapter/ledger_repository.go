// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fireplan/backend/internal/domain/entity"
)

// LedgerRepository defines the interface for ledger entry persistence operations.
// It is the persistence collaborator of the expense ledger core: the database
// is the source of truth and entries are only held transiently in memory for
// classification and grouping.
type LedgerRepository interface {
	// Create creates a new ledger entry in the database.
	Create(ctx context.Context, entry *entity.LedgerEntry) error

	// FindByID retrieves a ledger entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error)

	// FindByUser retrieves all ledger entries for a given user,
	// ordered by date descending.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.LedgerEntry, error)

	// Update updates an existing ledger entry in the database.
	Update(ctx context.Context, entry *entity.LedgerEntry) error

	// Delete removes a ledger entry from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
