package model

import "time"

// Event represents an event in the database. Every event belongs to exactly
// one partner.
type Event struct {
	ID          int64
	Name        string
	Description string
	Date        time.Time
	Location    string
	CreatedAt   time.Time
	PartnerID   int64
}

// CreateEventRequest represents an event creation request. Date is RFC 3339.
type CreateEventRequest struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location" validate:"required"`
}

// EventResponse represents an event in API responses.
type EventResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	PartnerID   int64     `json:"partner_id"`
}
