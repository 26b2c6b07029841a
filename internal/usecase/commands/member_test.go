//go:build unit

package commands_test

import (
	"context"
	"testing"

	"gym-reservation-engine/internal/domain/ledger"
	"gym-reservation-engine/internal/domain/member"
	"gym-reservation-engine/internal/pkg/errs"
	"gym-reservation-engine/internal/usecase/shared"
	"gym-reservation-engine/tests/common/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopUp(t *testing.T) {
	e := newEngine(t)

	result, err := e.members.TopUp(context.Background(), 1, dec("250.50"), "")

	require.NoError(t, err)
	assert.True(t, result.BalanceAfter.Equal(dec("1250.50")))
	assert.True(t, e.store.Member(1).Balance.Equal(dec("1250.50")))
	entries := e.store.Ledger()
	require.Len(t, entries, 1)
	assert.Equal(t, ledger.EntryTopUp, entries[0].Type)
	assert.Equal(t, "balance top-up", entries[0].Reason)
	assert.True(t, entries[0].BalanceAfter.Equal(result.BalanceAfter))
	assert.Equal(t, []shared.EventKind{shared.EventMemberToppedUp}, e.publisher.Kinds())
	assert.True(t, conserved(e, 1, dec("1000")))
}

func TestTopUp_Errors(t *testing.T) {
	tests := []struct {
		name     string
		memberID int64
		amount   string
		errIs    error
	}{
		{name: "zero amount", memberID: 1, amount: "0", errIs: errs.ErrValidation},
		{name: "negative amount", memberID: 1, amount: "-10", errIs: errs.ErrValidation},
		{name: "unknown member", memberID: 404, amount: "10", errIs: errs.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t)

			_, err := e.members.TopUp(context.Background(), tt.memberID, dec(tt.amount), "desk")

			require.ErrorIs(t, err, tt.errIs)
			assert.Empty(t, e.store.Ledger())
			assert.Empty(t, e.publisher.Kinds())
		})
	}
}

func TestTopUp_SuspendedMemberIsCredited(t *testing.T) {
	e := newEngine(t, func(s *memstore.Store) {
		s.AddMember(memstore.Member{ID: 2, Name: "Zhao Min", Balance: dec("5"), Status: member.StatusSuspended})
	})

	result, err := e.members.TopUp(context.Background(), 2, dec("20"), "cash at desk")

	require.NoError(t, err)
	assert.True(t, result.BalanceAfter.Equal(dec("25")))
}
