package service

import (
	"context"
	"sort"
	"sync"

	"github.com/marketstall/market-api/internal/domain"
	"github.com/marketstall/market-api/internal/events"
)

type fakeStandRepo struct {
	mu      sync.Mutex
	stands  map[string]domain.Stand
	updates int
	err     error
}

func newFakeStandRepo(stands ...domain.Stand) *fakeStandRepo {
	r := &fakeStandRepo{stands: map[string]domain.Stand{}}
	for _, s := range stands {
		r.stands[s.ID] = s
	}
	return r
}

func (r *fakeStandRepo) FindAll(context.Context) ([]domain.Stand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}

	var out []domain.Stand
	for _, s := range r.stands {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (r *fakeStandRepo) FindByID(_ context.Context, id string) (domain.Stand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return domain.Stand{}, r.err
	}

	s, ok := r.stands[id]
	if !ok {
		return domain.Stand{}, ErrStandNotFound
	}
	return s, nil
}

func (r *fakeStandRepo) CreateNext(_ context.Context, offer domain.CategoryOffer, loc domain.Location) (domain.Stand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return domain.Stand{}, r.err
	}

	next := 1
	for _, s := range r.stands {
		if s.Number >= next {
			next = s.Number + 1
		}
	}
	s := domain.NewStand(offer, next, loc)
	r.stands[s.ID] = s
	return s, nil
}

func (r *fakeStandRepo) UpdateStatus(_ context.Context, id string, from, to domain.StandStatus) (domain.Stand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return domain.Stand{}, r.err
	}

	s, ok := r.stands[id]
	if !ok {
		return domain.Stand{}, ErrStandNotFound
	}
	if s.Status != from {
		return domain.Stand{}, ErrStandConflict
	}
	s.Status = to
	r.stands[id] = s
	r.updates++
	return s, nil
}

func (r *fakeStandRepo) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.stands)), r.err
}

func (r *fakeStandRepo) SeedGrid(_ context.Context, stands []domain.Stand, _ []domain.Reservation) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	if len(r.stands) > 0 {
		return false, nil
	}
	for _, s := range stands {
		r.stands[s.ID] = s
	}
	return true, nil
}

// fakeReservationRepo claims stands held by its fakeStandRepo the way the
// database transaction does.
type fakeReservationRepo struct {
	mu             sync.Mutex
	stands         *fakeStandRepo
	reservations   map[string]domain.Reservation
	paymentUpdates int
	overdueToday   string
	err            error
}

func newFakeReservationRepo(stands *fakeStandRepo, reservations ...domain.Reservation) *fakeReservationRepo {
	r := &fakeReservationRepo{stands: stands, reservations: map[string]domain.Reservation{}}
	for _, res := range reservations {
		r.reservations[res.ID] = res
	}
	return r
}

func (r *fakeReservationRepo) Find(_ context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}

	var out []domain.Reservation
	for _, res := range r.reservations {
		if filter.StandID != "" && res.StandID != filter.StandID {
			continue
		}
		if filter.Date != "" && !res.ActiveOn(filter.Date) {
			continue
		}
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeReservationRepo) FindByID(_ context.Context, id string) (domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return domain.Reservation{}, r.err
	}

	res, ok := r.reservations[id]
	if !ok {
		return domain.Reservation{}, ErrReservationNotFound
	}
	return res, nil
}

func (r *fakeReservationRepo) CreateClaiming(ctx context.Context, reservation domain.Reservation) (domain.Reservation, error) {
	if r.err != nil {
		return domain.Reservation{}, r.err
	}

	if _, err := r.stands.UpdateStatus(ctx, reservation.StandID, domain.StandAvailable, domain.StandReserved); err != nil {
		if err == ErrStandConflict {
			return domain.Reservation{}, ErrStandNotAvailable
		}
		return domain.Reservation{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.reservations[reservation.ID] = reservation
	return reservation, nil
}

func (r *fakeReservationRepo) UpdatePayment(_ context.Context, id string, status domain.PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}

	res, ok := r.reservations[id]
	if !ok {
		return ErrReservationNotFound
	}
	res.PaymentStatus = status
	r.reservations[id] = res
	r.paymentUpdates++
	return nil
}

func (r *fakeReservationRepo) UpdateCleaning(_ context.Context, reservation domain.Reservation) (domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return domain.Reservation{}, r.err
	}

	res, ok := r.reservations[reservation.ID]
	if !ok {
		return domain.Reservation{}, ErrReservationNotFound
	}
	res.CleaningStatus = reservation.CleaningStatus
	res.CleaningNote = reservation.CleaningNote
	r.reservations[res.ID] = res
	return res, nil
}

func (r *fakeReservationRepo) MarkOverdue(_ context.Context, today string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}

	r.overdueToday = today
	var n int64
	for id, res := range r.reservations {
		if res.MarkOverdue(today) {
			r.reservations[id] = res
			n++
		}
	}
	return n, nil
}

type fakeIncidentRepo struct {
	mu        sync.Mutex
	incidents map[string]domain.Incident
	standIDs  map[string]bool
}

func newFakeIncidentRepo(standIDs ...string) *fakeIncidentRepo {
	r := &fakeIncidentRepo{incidents: map[string]domain.Incident{}, standIDs: map[string]bool{}}
	for _, id := range standIDs {
		r.standIDs[id] = true
	}
	return r
}

func (r *fakeIncidentRepo) FindAll(context.Context) ([]domain.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Incident
	for _, inc := range r.incidents {
		out = append(out, inc)
	}
	return out, nil
}

func (r *fakeIncidentRepo) FindByID(_ context.Context, id string) (domain.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inc, ok := r.incidents[id]
	if !ok {
		return domain.Incident{}, ErrIncidentNotFound
	}
	return inc, nil
}

func (r *fakeIncidentRepo) Create(_ context.Context, incident domain.Incident) (domain.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if incident.StandID != "" && !r.standIDs[incident.StandID] {
		return domain.Incident{}, ErrStandNotFound
	}
	r.incidents[incident.ID] = incident
	return incident, nil
}

func (r *fakeIncidentRepo) UpdateStatus(_ context.Context, id string, from, to domain.IncidentStatus) (domain.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inc, ok := r.incidents[id]
	if !ok {
		return domain.Incident{}, ErrIncidentNotFound
	}
	if inc.Status != from {
		return domain.Incident{}, ErrIncidentConflict
	}
	inc.Status = to
	r.incidents[id] = inc
	return inc, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}
