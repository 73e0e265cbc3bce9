package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ticketbase/ticketbase-go/internal/middleware"
	"github.com/ticketbase/ticketbase-go/internal/model"
	"github.com/ticketbase/ticketbase-go/internal/service"
)

// EventHandler handles HTTP requests for partner-scoped and public events.
type EventHandler struct {
	service *service.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{service: svc}
}

// HandleCreateEvent handles POST /partners/events requests.
func (h *EventHandler) HandleCreateEvent(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.CreateEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.CreateEvent(r.Context(), user.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrNotPartner):
			writeJSON(w, http.StatusForbidden, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleListPartnerEvents handles GET /partners/events requests.
func (h *EventHandler) HandleListPartnerEvents(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	events, err := h.service.ListPartnerEvents(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotPartner) {
			writeJSON(w, http.StatusForbidden, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if events == nil {
		events = []model.EventResponse{}
	}
	writeJSON(w, http.StatusOK, events)
}

// HandleGetPartnerEvent handles GET /partners/events/{event_id} requests.
func (h *EventHandler) HandleGetPartnerEvent(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	eventID, ok := eventIDParam(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse("event not found"))
		return
	}

	resp, err := h.service.GetPartnerEvent(r.Context(), user.ID, eventID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotPartner):
			writeJSON(w, http.StatusForbidden, errorResponse(err.Error()))
		case errors.Is(err, service.ErrEventNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleListEvents handles GET /events requests (public catalog).
func (h *EventHandler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListPublicEvents(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if events == nil {
		events = []model.EventResponse{}
	}
	writeJSON(w, http.StatusOK, events)
}

// HandleGetEvent handles GET /events/{event_id} requests (public catalog).
func (h *EventHandler) HandleGetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDParam(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse("event not found"))
		return
	}

	resp, err := h.service.GetPublicEvent(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// eventIDParam parses the event_id path parameter. A non-numeric id is
// treated the same as a missing event so probes cannot tell them apart.
func eventIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "event_id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
