package postgres

import (
	"context"

	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/models"
	"gorm.io/gorm"
)

// TicketRepository is the GORM-backed persistence sink for issued tickets.
// The table is append only: one insert per processed notification, never
// updated or deleted, so the surface is Create and nothing else.
type TicketRepository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db,
	}
}

// Create inserts a new ticket row.
func (r *TicketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}
