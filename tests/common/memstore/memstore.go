//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for component tests.
// Transactions run one at a time under a store-wide lock and roll back by
// restoring a snapshot, so concurrent callers observe the same all-or-nothing
// behaviour the row-locked Postgres transactions give.
package memstore

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"gym-reservation-engine/internal/domain/card"
	"gym-reservation-engine/internal/domain/court"
	"gym-reservation-engine/internal/domain/ledger"
	"gym-reservation-engine/internal/domain/member"
	"gym-reservation-engine/internal/domain/order"
	"gym-reservation-engine/internal/domain/reservation"
	"gym-reservation-engine/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// Operation names accepted by FailOn.
const (
	OpCourtsFind         = "courts.find"
	OpReservationsCount  = "reservations.count"
	OpReservationsCreate = "reservations.create"
	OpReservationsFind   = "reservations.find"
	OpReservationsUpdate = "reservations.update"
	OpMembersFind        = "members.find"
	OpMembersUpdate      = "members.update"
	OpLedgerAppend       = "ledger.append"
	OpCardsList          = "cards.list"
	OpOrdersCreate       = "orders.create"
	OpOrdersFind         = "orders.find"
	OpOrdersUpdate       = "orders.update"
	OpSettingsGet        = "settings.get"
	OpSettingsUpsert     = "settings.upsert"
)

var (
	errReadOnly   = errors.New("cannot execute write in a read-only transaction")
	errExclusion  = errors.New("conflicting key value violates exclusion constraint")
	errForeignKey = errors.New("violates foreign key constraint")
	errUnique     = errors.New("duplicate key value violates unique constraint")
	errCheck      = errors.New("violates check constraint")
)

type Court struct {
	ID         int64
	Name       string
	Category   string
	HourlyRate decimal.Decimal
	Status     court.Status
}

type Member struct {
	ID      int64
	Name    string
	Balance decimal.Decimal
	Status  member.Status
	Level   string
}

type Card struct {
	ID              int64
	MemberID        int64
	Kind            card.Kind
	DiscountPercent *int32
	StartDate       time.Time
	EndDate         time.Time
}

type Reservation struct {
	ID          int64
	CourtID     int64
	MemberID    *int64
	Start       time.Time
	End         time.Time
	TotalAmount decimal.Decimal
	Status      reservation.Status
	Origin      reservation.Origin
	Note        string
	CreatedAt   time.Time
}

type LedgerEntry struct {
	ID           int64
	MemberID     int64
	Type         ledger.EntryType
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	Reason       string
}

type state struct {
	courts       map[int64]Court
	members      map[int64]Member
	cards        map[int64]Card
	reservations map[int64]Reservation
	ledger       []LedgerEntry
	orders       map[int64]order.Snapshot
	settings     map[string]string
	seq          int64
}

func (s *state) clone() *state {
	c := &state{
		courts:       make(map[int64]Court, len(s.courts)),
		members:      make(map[int64]Member, len(s.members)),
		cards:        make(map[int64]Card, len(s.cards)),
		reservations: make(map[int64]Reservation, len(s.reservations)),
		ledger:       append([]LedgerEntry(nil), s.ledger...),
		orders:       make(map[int64]order.Snapshot, len(s.orders)),
		settings:     make(map[string]string, len(s.settings)),
		seq:          s.seq,
	}
	for k, v := range s.courts {
		c.courts[k] = v
	}
	for k, v := range s.members {
		c.members[k] = v
	}
	for k, v := range s.cards {
		c.cards[k] = v
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	for k, v := range s.orders {
		c.orders[k] = v
	}
	for k, v := range s.settings {
		c.settings[k] = v
	}
	return c
}

func (s *state) nextID() int64 {
	s.seq++
	return s.seq
}

type Store struct {
	mu       sync.Mutex
	st       *state
	failures map[string]error
	calls    map[string]int
}

func New() *Store {
	return &Store{
		st: &state{
			courts:       map[int64]Court{},
			members:      map[int64]Member{},
			cards:        map[int64]Card{},
			reservations: map[int64]Reservation{},
			orders:       map[int64]order.Snapshot{},
			settings:     map[string]string{},
		},
		failures: map[string]error{},
		calls:    map[string]int{},
	}
}

// Seed helpers. They bypass transactions and must be called before the store is shared.

func (s *Store) AddCourt(c Court) {
	s.st.courts[c.ID] = c
}

func (s *Store) AddMember(m Member) {
	s.st.members[m.ID] = m
}

func (s *Store) AddCard(c Card) {
	s.st.cards[c.ID] = c
}

// AddReservation seeds a reservation without an order.
func (s *Store) AddReservation(r Reservation) {
	s.st.reservations[r.ID] = r
	if r.ID > s.st.seq {
		s.st.seq = r.ID
	}
}

func (s *Store) SetSetting(group, key, value string) {
	s.st.settings[group+"/"+key] = value
}

// FailOn makes every call of op return err until cleared with a nil err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

func (s *Store) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// Inspection helpers return copies taken under the lock.

func (s *Store) Member(id int64) Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.members[id]
}

func (s *Store) Reservations() []Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Reservation, 0, len(s.st.reservations))
	for _, r := range s.st.reservations {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Orders() []order.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]order.Snapshot, 0, len(s.st.orders))
	for _, o := range s.st.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Ledger() []LedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]LedgerEntry(nil), s.st.ledger...)
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return s.run(ctx, false, fn)
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return s.run(ctx, true, fn)
}

func (s *Store) run(ctx context.Context, readOnly bool, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(ctx, &memTx{store: s, readOnly: readOnly}); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

// hook is called with s.mu held.
func (s *Store) hook(op string) error {
	s.calls[op]++
	return s.failures[op]
}

var _ shared.UnitOfWork = (*Store)(nil)
