package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/ticketbase/ticketbase-go/internal/middleware"
	"github.com/ticketbase/ticketbase-go/internal/model"
	"github.com/ticketbase/ticketbase-go/internal/repository"
	"github.com/ticketbase/ticketbase-go/internal/service"
)

const testSecret = "test-secret"

// fakeStore holds all in-memory state shared by the fake store views.
type fakeStore struct {
	usersByEmail   map[string]*model.User
	usersByID      map[int64]*model.User
	partnersByUser map[int64]*model.Partner
	events         map[int64]*model.Event
	nextID         int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		usersByEmail:   make(map[string]*model.User),
		usersByID:      make(map[int64]*model.User),
		partnersByUser: make(map[int64]*model.Partner),
		events:         make(map[int64]*model.Event),
		nextID:         1,
	}
}

func (f *fakeStore) id() int64 {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeStore) createUser(user *model.User) error {
	if _, exists := f.usersByEmail[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	user.ID = f.id()
	user.CreatedAt = time.Now().UTC()
	f.usersByEmail[user.Email] = user
	f.usersByID[user.ID] = user
	return nil
}

// fakeUsers implements service.UserStore and middleware.UserResolver.
type fakeUsers struct{ s *fakeStore }

func (f *fakeUsers) CreateWithPartner(_ context.Context, user *model.User, partner *model.Partner) error {
	if err := f.s.createUser(user); err != nil {
		return err
	}
	partner.ID = f.s.id()
	partner.UserID = user.ID
	partner.CreatedAt = user.CreatedAt
	f.s.partnersByUser[user.ID] = partner
	return nil
}

func (f *fakeUsers) CreateWithCustomer(_ context.Context, user *model.User, customer *model.Customer) error {
	if err := f.s.createUser(user); err != nil {
		return err
	}
	customer.ID = f.s.id()
	customer.UserID = user.ID
	customer.CreatedAt = user.CreatedAt
	return nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := f.s.usersByEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	user, ok := f.s.usersByID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

// fakePartners implements service.PartnerStore.
type fakePartners struct{ s *fakeStore }

func (f *fakePartners) GetByUserID(_ context.Context, userID int64) (*model.Partner, error) {
	partner, ok := f.s.partnersByUser[userID]
	if !ok {
		return nil, repository.ErrPartnerNotFound
	}
	return partner, nil
}

// fakeEvents implements service.EventStore.
type fakeEvents struct{ s *fakeStore }

func (f *fakeEvents) Create(_ context.Context, event *model.Event) error {
	event.ID = f.s.id()
	event.CreatedAt = time.Now().UTC()
	stored := *event
	f.s.events[event.ID] = &stored
	return nil
}

func (f *fakeEvents) ListAll(_ context.Context) ([]model.Event, error) {
	var events []model.Event
	for _, e := range f.s.events {
		events = append(events, *e)
	}
	return events, nil
}

func (f *fakeEvents) ListByPartner(_ context.Context, partnerID int64) ([]model.Event, error) {
	var events []model.Event
	for _, e := range f.s.events {
		if e.PartnerID == partnerID {
			events = append(events, *e)
		}
	}
	return events, nil
}

func (f *fakeEvents) GetByID(_ context.Context, id int64) (*model.Event, error) {
	event, ok := f.s.events[id]
	if !ok {
		return nil, repository.ErrEventNotFound
	}
	return event, nil
}

func (f *fakeEvents) GetByPartnerAndID(_ context.Context, partnerID, id int64) (*model.Event, error) {
	event, ok := f.s.events[id]
	if !ok || event.PartnerID != partnerID {
		return nil, repository.ErrEventNotFound
	}
	return event, nil
}

// newTestRouter builds the full route table over an in-memory store, wired
// the same way as cmd/api.
func newTestRouter(t *testing.T) (http.Handler, *fakeStore) {
	t.Helper()

	store := newFakeStore()
	users := &fakeUsers{s: store}

	authHandler := NewAuthHandler(service.NewAuthService(users, testSecret, time.Hour))
	eventHandler := NewEventHandler(service.NewEventService(&fakePartners{s: store}, &fakeEvents{s: store}))

	r := chi.NewRouter()
	r.Post("/auth/login", authHandler.HandleLogin)
	r.Post("/partners/register", authHandler.HandleRegisterPartner)
	r.Post("/customers/register", authHandler.HandleRegisterCustomer)
	r.Get("/events", eventHandler.HandleListEvents)
	r.Get("/events/{event_id}", eventHandler.HandleGetEvent)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(testSecret, users))
		r.Post("/partners/events", eventHandler.HandleCreateEvent)
		r.Get("/partners/events", eventHandler.HandleListPartnerEvents)
		r.Get("/partners/events/{event_id}", eventHandler.HandleGetPartnerEvent)
	})

	return r, store
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

// registerPartner registers a partner and returns a login token for it.
func registerPartner(t *testing.T, handler http.Handler, email, company string) string {
	t.Helper()

	rec := doJSON(t, handler, http.MethodPost, "/partners/register", "", model.RegisterPartnerRequest{
		Name: "Partner", Email: email, Password: "p", CompanyName: company,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/auth/login", "", model.LoginRequest{
		Email: email, Password: "p",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	return decodeBody[model.LoginResponse](t, rec).Token
}
