//go:build unit || e2e

package memstore

import (
	"context"
	"sort"

	"gym-reservation-engine/internal/domain/card"
	"gym-reservation-engine/internal/domain/court"
	"gym-reservation-engine/internal/domain/ledger"
	"gym-reservation-engine/internal/domain/member"
	"gym-reservation-engine/internal/domain/order"
	"gym-reservation-engine/internal/domain/reservation"
	"gym-reservation-engine/internal/infra"
	"gym-reservation-engine/internal/usecase/shared"
)

type memTx struct {
	store    *Store
	readOnly bool
}

func (t *memTx) Courts() shared.CourtRepository             { return courtRepo{t} }
func (t *memTx) Reservations() shared.ReservationRepository { return reservationRepo{t} }
func (t *memTx) Members() shared.MemberRepository           { return memberRepo{t} }
func (t *memTx) Ledger() shared.LedgerRepository            { return ledgerRepo{t} }
func (t *memTx) Cards() shared.CardRepository               { return cardRepo{t} }
func (t *memTx) Orders() shared.OrderRepository             { return orderRepo{t} }
func (t *memTx) Settings() shared.SettingsRepository        { return settingsRepo{t} }

func (t *memTx) Savepoint(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	snapshot := t.store.st.clone()
	if err := fn(ctx, t); err != nil {
		t.store.st = snapshot
		return err
	}
	return nil
}

func (t *memTx) write(op string) error {
	if t.readOnly {
		return infra.WrapRepoErr(op, errReadOnly, infra.KindDBFailure)
	}
	return t.read(op)
}

func (t *memTx) read(op string) error {
	if err := t.store.hook(op); err != nil {
		return infra.WrapRepoErr(op, err, infra.KindDBFailure)
	}
	return nil
}

type courtRepo struct{ t *memTx }

func (r courtRepo) FindByID(_ context.Context, id int64) (*court.Court, error) {
	if err := r.t.read(OpCourtsFind); err != nil {
		return nil, err
	}
	c, ok := r.t.store.st.courts[id]
	if !ok {
		return nil, infra.NewNotFound("court not found")
	}
	return court.ReconstructCourt(c.ID, c.Name, c.Category, c.HourlyRate, c.Status), nil
}

func (r courtRepo) FindByIDForUpdate(ctx context.Context, id int64) (*court.Court, error) {
	return r.FindByID(ctx, id)
}

type reservationRepo struct{ t *memTx }

func (r reservationRepo) CountOverlapping(_ context.Context, courtID int64, slot reservation.TimeSlot) (int, error) {
	if err := r.t.read(OpReservationsCount); err != nil {
		return 0, err
	}
	return r.overlapping(courtID, slot), nil
}

func (r reservationRepo) overlapping(courtID int64, slot reservation.TimeSlot) int {
	n := 0
	for _, res := range r.t.store.st.reservations {
		if res.CourtID != courtID || res.Status == reservation.StatusCancelled {
			continue
		}
		existing, err := reservation.NewTimeSlot(res.Start, res.End)
		if err == nil && existing.Overlaps(slot) {
			n++
		}
	}
	return n
}

// Create enforces the same exclusion rule the schema does.
func (r reservationRepo) Create(_ context.Context, res *reservation.Reservation) (int64, error) {
	if err := r.t.write(OpReservationsCreate); err != nil {
		return 0, err
	}
	if r.overlapping(res.CourtID(), res.TimeSlot()) > 0 {
		return 0, infra.WrapRepoErr("failed to create reservation", errExclusion, infra.KindExclusionViolated)
	}
	if _, ok := r.t.store.st.courts[res.CourtID()]; !ok {
		return 0, infra.WrapRepoErr("failed to create reservation", errForeignKey, infra.KindForeignKeyViolated)
	}
	id := r.t.store.st.nextID()
	r.t.store.st.reservations[id] = Reservation{
		ID:          id,
		CourtID:     res.CourtID(),
		MemberID:    res.MemberID(),
		Start:       res.TimeSlot().Start(),
		End:         res.TimeSlot().End(),
		TotalAmount: res.TotalAmount(),
		Status:      res.Status(),
		Origin:      res.Origin(),
		Note:        res.Note().String(),
		CreatedAt:   res.CreatedAt(),
	}
	return id, nil
}

func (r reservationRepo) FindByIDForUpdate(_ context.Context, id int64) (*reservation.Reservation, error) {
	if err := r.t.read(OpReservationsFind); err != nil {
		return nil, err
	}
	res, ok := r.t.store.st.reservations[id]
	if !ok {
		return nil, infra.NewNotFound("reservation not found")
	}
	slot, err := reservation.NewTimeSlot(res.Start, res.End)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid slot", err, infra.KindDBFailure)
	}
	return reservation.ReconstructReservation(res.ID, res.CourtID, res.MemberID, slot, res.TotalAmount,
		res.Status, res.Origin, reservation.NewNote(res.Note), res.CreatedAt), nil
}

func (r reservationRepo) UpdateStatus(_ context.Context, id int64, status reservation.Status) error {
	if err := r.t.write(OpReservationsUpdate); err != nil {
		return err
	}
	res, ok := r.t.store.st.reservations[id]
	if !ok {
		return infra.NewNotFound("reservation not found")
	}
	res.Status = status
	r.t.store.st.reservations[id] = res
	return nil
}

type memberRepo struct{ t *memTx }

func (r memberRepo) FindByID(_ context.Context, id int64) (*member.Member, error) {
	if err := r.t.read(OpMembersFind); err != nil {
		return nil, err
	}
	m, ok := r.t.store.st.members[id]
	if !ok {
		return nil, infra.NewNotFound("member not found")
	}
	return member.ReconstructMember(m.ID, m.Name, m.Balance, m.Status, m.Level), nil
}

func (r memberRepo) FindByIDForUpdate(ctx context.Context, id int64) (*member.Member, error) {
	return r.FindByID(ctx, id)
}

func (r memberRepo) UpdateBalance(_ context.Context, m *member.Member) error {
	if err := r.t.write(OpMembersUpdate); err != nil {
		return err
	}
	row, ok := r.t.store.st.members[m.ID()]
	if !ok {
		return infra.NewNotFound("member not found")
	}
	if m.Balance().IsNegative() {
		return infra.WrapRepoErr("balance check violated", errCheck, infra.KindDBFailure)
	}
	row.Balance = m.Balance()
	r.t.store.st.members[m.ID()] = row
	return nil
}

type ledgerRepo struct{ t *memTx }

func (r ledgerRepo) Append(_ context.Context, e *ledger.Entry) (int64, error) {
	if err := r.t.write(OpLedgerAppend); err != nil {
		return 0, err
	}
	id := r.t.store.st.nextID()
	r.t.store.st.ledger = append(r.t.store.st.ledger, LedgerEntry{
		ID:           id,
		MemberID:     e.MemberID(),
		Type:         e.Type(),
		Amount:       e.Amount(),
		BalanceAfter: e.BalanceAfter(),
		Reason:       e.Reason(),
	})
	return id, nil
}

type cardRepo struct{ t *memTx }

func (r cardRepo) ListByMember(_ context.Context, memberID int64) ([]*card.MembershipCard, error) {
	if err := r.t.read(OpCardsList); err != nil {
		return nil, err
	}
	var out []*card.MembershipCard
	for _, c := range r.t.store.st.cards {
		if c.MemberID == memberID {
			out = append(out, card.ReconstructCard(c.ID, c.MemberID, c.Kind, nil, c.DiscountPercent, c.StartDate, c.EndDate))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

type orderRepo struct{ t *memTx }

func (r orderRepo) Create(_ context.Context, o *order.Order) (int64, error) {
	if err := r.t.write(OpOrdersCreate); err != nil {
		return 0, err
	}
	for _, existing := range r.t.store.st.orders {
		if existing.OrderNo == o.OrderNo() {
			return 0, infra.WrapRepoErr("failed to create order", errUnique, infra.KindDuplicateKey)
		}
	}
	id := r.t.store.st.nextID()
	s := o.Snapshot()
	s.ID = id
	r.t.store.st.orders[id] = s
	return id, nil
}

func (r orderRepo) FindLatestPaidForUpdate(_ context.Context, t order.Type, relatedID int64) (*order.Order, error) {
	if err := r.t.read(OpOrdersFind); err != nil {
		return nil, err
	}
	var latest *order.Snapshot
	for _, o := range r.t.store.st.orders {
		if o.Type != t || o.RelatedID != relatedID || o.Status != order.StatusPaid {
			continue
		}
		if latest == nil || o.ID > latest.ID {
			cp := o
			latest = &cp
		}
	}
	if latest == nil {
		return nil, infra.NewNotFound("paid order not found")
	}
	return order.Reconstruct(*latest), nil
}

func (r orderRepo) UpdateStatus(_ context.Context, id int64, status order.Status) error {
	if err := r.t.write(OpOrdersUpdate); err != nil {
		return err
	}
	o, ok := r.t.store.st.orders[id]
	if !ok {
		return infra.NewNotFound("order not found")
	}
	o.Status = status
	r.t.store.st.orders[id] = o
	return nil
}

type settingsRepo struct{ t *memTx }

func (r settingsRepo) Get(_ context.Context, group, key string) (string, error) {
	if err := r.t.read(OpSettingsGet); err != nil {
		return "", err
	}
	v, ok := r.t.store.st.settings[group+"/"+key]
	if !ok {
		return "", infra.NewNotFound("setting not found")
	}
	return v, nil
}

func (r settingsRepo) Upsert(_ context.Context, group, key, value string) error {
	if err := r.t.write(OpSettingsUpsert); err != nil {
		return err
	}
	r.t.store.st.settings[group+"/"+key] = value
	return nil
}
