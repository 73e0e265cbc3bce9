package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ticketbase/ticketbase-go/internal/model"
)

var ErrPartnerNotFound = errors.New("partner not found")

// PartnerRepository handles partner profile lookups.
type PartnerRepository struct {
	db *sql.DB
}

// NewPartnerRepository creates a new PartnerRepository.
func NewPartnerRepository(db *sql.DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

// GetByUserID retrieves the partner profile owned by the given user.
func (r *PartnerRepository) GetByUserID(ctx context.Context, userID int64) (*model.Partner, error) {
	query := `SELECT id, user_id, company_name, created_at FROM partners WHERE user_id = ?`

	partner := &model.Partner{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&partner.ID, &partner.UserID, &partner.CompanyName, &partner.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPartnerNotFound
		}
		return nil, err
	}

	return partner, nil
}
