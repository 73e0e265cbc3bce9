package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ticketbase/ticketbase-go/internal/model"
	"github.com/ticketbase/ticketbase-go/internal/repository"
)

var (
	ErrNotPartner    = errors.New("not authorized")
	ErrEventNotFound = errors.New("event not found")
)

// PartnerStore resolves partner profiles for authenticated users.
type PartnerStore interface {
	GetByUserID(ctx context.Context, userID int64) (*model.Partner, error)
}

// EventStore persists events.
type EventStore interface {
	Create(ctx context.Context, event *model.Event) error
	ListAll(ctx context.Context) ([]model.Event, error)
	ListByPartner(ctx context.Context, partnerID int64) ([]model.Event, error)
	GetByID(ctx context.Context, id int64) (*model.Event, error)
	GetByPartnerAndID(ctx context.Context, partnerID, id int64) (*model.Event, error)
}

// EventService scopes event creation and reads to the owning partner, and
// serves the public catalog.
type EventService struct {
	partners  PartnerStore
	events    EventStore
	validator *validator.Validate
}

// NewEventService creates a new EventService.
func NewEventService(partners PartnerStore, events EventStore) *EventService {
	return &EventService{
		partners:  partners,
		events:    events,
		validator: validator.New(),
	}
}

// resolvePartner maps an authenticated user to their partner profile. Users
// without one are rejected here, not at the auth gate: the gate proves
// identity, this proves role.
func (s *EventService) resolvePartner(ctx context.Context, userID int64) (*model.Partner, error) {
	partner, err := s.partners.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, ErrNotPartner
		}
		return nil, err
	}
	return partner, nil
}

// CreateEvent creates an event owned by the caller's partner profile.
func (s *EventService) CreateEvent(ctx context.Context, userID int64, req model.CreateEventRequest) (model.EventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return model.EventResponse{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	partner, err := s.resolvePartner(ctx, userID)
	if err != nil {
		return model.EventResponse{}, err
	}

	event := &model.Event{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		PartnerID:   partner.ID,
	}

	if err := s.events.Create(ctx, event); err != nil {
		return model.EventResponse{}, err
	}

	return eventToResponse(event), nil
}

// ListPartnerEvents returns all events owned by the caller's partner profile.
func (s *EventService) ListPartnerEvents(ctx context.Context, userID int64) ([]model.EventResponse, error) {
	partner, err := s.resolvePartner(ctx, userID)
	if err != nil {
		return nil, err
	}

	events, err := s.events.ListByPartner(ctx, partner.ID)
	if err != nil {
		return nil, err
	}

	return eventsToResponse(events), nil
}

// GetPartnerEvent returns an event only if the caller's partner owns it.
// Events owned by other partners are indistinguishable from missing ones.
func (s *EventService) GetPartnerEvent(ctx context.Context, userID, eventID int64) (model.EventResponse, error) {
	partner, err := s.resolvePartner(ctx, userID)
	if err != nil {
		return model.EventResponse{}, err
	}

	event, err := s.events.GetByPartnerAndID(ctx, partner.ID, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return model.EventResponse{}, ErrEventNotFound
		}
		return model.EventResponse{}, err
	}

	return eventToResponse(event), nil
}

// ListPublicEvents returns every event, without authorization.
func (s *EventService) ListPublicEvents(ctx context.Context) ([]model.EventResponse, error) {
	events, err := s.events.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return eventsToResponse(events), nil
}

// GetPublicEvent returns an event by ID, without authorization.
func (s *EventService) GetPublicEvent(ctx context.Context, eventID int64) (model.EventResponse, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return model.EventResponse{}, ErrEventNotFound
		}
		return model.EventResponse{}, err
	}

	return eventToResponse(event), nil
}

func eventToResponse(e *model.Event) model.EventResponse {
	return model.EventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Date:        e.Date,
		Location:    e.Location,
		CreatedAt:   e.CreatedAt,
		PartnerID:   e.PartnerID,
	}
}

func eventsToResponse(events []model.Event) []model.EventResponse {
	result := make([]model.EventResponse, len(events))
	for i := range events {
		result[i] = eventToResponse(&events[i])
	}
	return result
}
