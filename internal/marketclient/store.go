package marketclient

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/marketstall/market-api/internal/domain"
)

var ErrNotLoaded = errors.New("entity is not in the store")

// Policy decides how the store catches up after the server created a
// reservation.
type Policy int

const (
	// PolicyRefetch reloads stands and reservations.
	PolicyRefetch Policy = iota
	// PolicyPatch fetches the new reservation and its stand and merges them.
	PolicyPatch
)

// API is the part of the market API the store depends on.
type API interface {
	ListStands(ctx context.Context) ([]domain.Stand, error)
	GetStand(ctx context.Context, id string) (domain.Stand, error)
	ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error)
	GetReservation(ctx context.Context, id string) (domain.Reservation, error)
	CreateReservation(ctx context.Context, in domain.NewReservation) (string, error)
	MarkPaid(ctx context.Context, id string) error
	UpdateCleaning(ctx context.Context, id string, status domain.CleaningStatus, note string) (domain.Reservation, error)
	ListIncidents(ctx context.Context) ([]domain.Incident, error)
	ReportIncident(ctx context.Context, in domain.NewIncident) (domain.Incident, error)
}

// Store is an in-memory copy of the market that applies changes
// optimistically and reconciles them with the API. It is safe for concurrent
// use, but concurrent actions on the same entity are not coordinated.
type Store struct {
	api    API
	policy Policy

	mu           sync.RWMutex
	stands       *collection[domain.Stand]
	reservations *collection[domain.Reservation]
	incidents    *collection[domain.Incident]
	localSeq     int
}

func NewStore(api API, policy Policy) *Store {
	return &Store{
		api:          api,
		policy:       policy,
		stands:       newCollection(func(s domain.Stand) string { return s.ID }),
		reservations: newCollection(func(r domain.Reservation) string { return r.ID }),
		incidents:    newCollection(func(i domain.Incident) string { return i.ID }),
	}
}

// Load fetches all three collections and replaces the store content.
func (s *Store) Load(ctx context.Context) error {
	var (
		stands       []domain.Stand
		reservations []domain.Reservation
		incidents    []domain.Incident
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stands, err = s.api.ListStands(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		reservations, err = s.api.ListReservations(gctx, domain.ReservationFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		incidents, err = s.api.ListIncidents(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load market -> %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stands.replaceAll(stands)
	s.reservations.replaceAll(reservations)
	s.incidents.replaceAll(incidents)

	return nil
}

// AddIncident shows the incident right away and replaces it with the server
// record once persisted. On failure the local entry is dropped.
func (s *Store) AddIncident(ctx context.Context, in domain.NewIncident) (domain.Incident, error) {
	s.mu.Lock()
	s.localSeq++
	local := domain.Incident{
		ID:          fmt.Sprintf("local-%d", s.localSeq),
		StandID:     in.StandID,
		ReporterID:  in.ReporterID,
		Type:        in.Type,
		Description: in.Description,
		Status:      domain.IncidentOpen,
		CreatedAt:   time.Now().UTC(),
	}
	s.incidents.prependDirty(local)
	s.mu.Unlock()

	created, err := s.api.ReportIncident(ctx, in)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.incidents.remove(local.ID)
		return domain.Incident{}, fmt.Errorf("s.api.ReportIncident -> %w", err)
	}
	s.incidents.replace(local.ID, created)

	return created, nil
}

// UpdateCleaningStatus records an inspection locally, then on the server.
// A failed call restores the last synced reservation.
func (s *Store) UpdateCleaningStatus(ctx context.Context, id string, status domain.CleaningStatus, note string) error {
	s.mu.Lock()
	e, ok := s.reservations.get(id)
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("reservation %s -> %w", id, ErrNotLoaded)
	}
	if err := e.value.Inspect(status, note); err != nil {
		s.mu.Unlock()
		return err
	}
	e.state = Dirty
	s.mu.Unlock()

	updated, err := s.api.UpdateCleaning(ctx, id, status, note)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.rollbackReservation(id)
		return fmt.Errorf("s.api.UpdateCleaning -> %w", err)
	}
	s.reservations.upsert(updated)

	return nil
}

// MarkAsPaid marks the reservation PAID locally, then on the server. A failed
// call restores the last synced reservation.
func (s *Store) MarkAsPaid(ctx context.Context, id string) error {
	s.mu.Lock()
	e, ok := s.reservations.get(id)
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("reservation %s -> %w", id, ErrNotLoaded)
	}
	e.value.MarkPaid()
	e.state = Dirty
	s.mu.Unlock()

	err := s.api.MarkPaid(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.rollbackReservation(id)
		return fmt.Errorf("s.api.MarkPaid -> %w", err)
	}
	if e, ok := s.reservations.get(id); ok {
		e.synced = e.value
		e.state = Synced
	}

	return nil
}

// CreateReservation creates the reservation on the server, then reconciles
// the store according to its Policy.
func (s *Store) CreateReservation(ctx context.Context, in domain.NewReservation) (string, error) {
	id, err := s.api.CreateReservation(ctx, in)
	if err != nil {
		return "", fmt.Errorf("s.api.CreateReservation -> %w", err)
	}

	switch s.policy {
	case PolicyPatch:
		err = s.patchReservation(ctx, id, in.StandID)
	default:
		err = s.refetch(ctx)
	}
	if err != nil {
		return id, fmt.Errorf("reconcile reservation %s -> %w", id, err)
	}

	return id, nil
}

func (s *Store) patchReservation(ctx context.Context, id, standID string) error {
	var (
		reservation domain.Reservation
		stand       domain.Stand
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reservation, err = s.api.GetReservation(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		stand, err = s.api.GetStand(gctx, standID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reservations.upsert(reservation)
	s.stands.upsert(stand)

	return nil
}

func (s *Store) refetch(ctx context.Context) error {
	var (
		stands       []domain.Stand
		reservations []domain.Reservation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stands, err = s.api.ListStands(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		reservations, err = s.api.ListReservations(gctx, domain.ReservationFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stands.replaceAll(stands)
	s.reservations.replaceAll(reservations)

	return nil
}

// rollbackReservation must be called with s.mu held.
func (s *Store) rollbackReservation(id string) {
	if e, ok := s.reservations.get(id); ok {
		e.value = e.synced
		e.state = Synced
	}
}

func (s *Store) Stands() []domain.Stand {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stands.snapshot()
}

func (s *Store) Reservations() []domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reservations.snapshot()
}

func (s *Store) Incidents() []domain.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.incidents.snapshot()
}

// Dirty lists ids of entities with unconfirmed local changes.
func (s *Store) Dirty() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.stands.dirty()
	ids = append(ids, s.reservations.dirty()...)
	return append(ids, s.incidents.dirty()...)
}

// State returns the sync state of the entity with id.
func (s *Store) State(id string) (SyncState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e, ok := s.stands.get(id); ok {
		return e.state, true
	}
	if e, ok := s.reservations.get(id); ok {
		return e.state, true
	}
	if e, ok := s.incidents.get(id); ok {
		return e.state, true
	}
	return Synced, false
}
