package commands

import (
	"gym-reservation-engine/internal/infra"
	"gym-reservation-engine/internal/pkg/errs"
)

// markRepoErr maps a repository failure to the engine taxonomy. notFound is the
// business error to report when the row is missing; nil treats a miss as integrity.
func markRepoErr(err error, notFound error) error {
	switch {
	case notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindExclusionViolated):
		return errs.Mark(err, errs.ErrConflict)
	case errs.Is(err, errs.ErrConflict, errs.ErrValidation, errs.ErrNotFound, errs.ErrUnavailable,
		errs.ErrInsufficientBalance, errs.ErrAlreadyCancelled, errs.ErrOrderNotFound, errs.ErrInvalidTransition):
		return err
	default:
		return errs.Mark(err, errs.ErrIntegrity)
	}
}

// outcome labels an error for metrics.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errs.Is(err, errs.ErrValidation):
		return "validation"
	case errs.Is(err, errs.ErrNotFound):
		return "not_found"
	case errs.Is(err, errs.ErrUnavailable):
		return "unavailable"
	case errs.Is(err, errs.ErrConflict):
		return "conflict"
	case errs.Is(err, errs.ErrInsufficientBalance):
		return "insufficient_balance"
	case errs.Is(err, errs.ErrAlreadyCancelled):
		return "already_cancelled"
	case errs.Is(err, errs.ErrOrderNotFound):
		return "order_not_found"
	case errs.Is(err, errs.ErrInvalidTransition):
		return "invalid_transition"
	default:
		return "error"
	}
}
