package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ticketbase/ticketbase-go/internal/model"
)

var ErrEventNotFound = errors.New("event not found")

const eventColumns = `id, name, description, date, location, created_at, partner_id`

// EventRepository handles event persistence.
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event and sets the generated ID and creation time.
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	now := time.Now().UTC().Truncate(time.Second)

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO events (name, description, date, location, created_at, partner_id) VALUES (?, ?, ?, ?, ?, ?)`,
		event.Name, event.Description, event.Date, event.Location, now, event.PartnerID,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	event.ID = id
	event.CreatedAt = now
	return nil
}

// ListAll retrieves every event, unscoped.
func (r *EventRepository) ListAll(ctx context.Context) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events`
	return r.queryEvents(ctx, query)
}

// ListByPartner retrieves all events owned by the given partner.
func (r *EventRepository) ListByPartner(ctx context.Context, partnerID int64) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE partner_id = ?`
	return r.queryEvents(ctx, query, partnerID)
}

// GetByID retrieves an event by its ID.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ?`
	return r.queryEvent(ctx, query, id)
}

// GetByPartnerAndID retrieves an event only if it is owned by the given
// partner. Events under other partners come back as ErrEventNotFound.
func (r *EventRepository) GetByPartnerAndID(ctx context.Context, partnerID, id int64) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE partner_id = ? AND id = ?`
	return r.queryEvent(ctx, query, partnerID, id)
}

func (r *EventRepository) queryEvent(ctx context.Context, query string, args ...any) (*model.Event, error) {
	event := &model.Event{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&event.ID, &event.Name, &event.Description, &event.Date,
		&event.Location, &event.CreatedAt, &event.PartnerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

func (r *EventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]model.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Description, &e.Date,
			&e.Location, &e.CreatedAt, &e.PartnerID,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}
