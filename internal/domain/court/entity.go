package court

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrCourtUnavailable   = errors.New("court is not available for booking")
	ErrRateNotConfigured  = errors.New("court hourly rate is not configured")
	ErrInvalidCourtStatus = errors.New("invalid court status")
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusMaintenance Status = "maintenance"
	StatusDisabled    Status = "disabled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance, StatusDisabled:
		return true
	default:
		return false
	}
}

// Court is read-only to the engine; rate and status are maintained by court CRUD.
type Court struct {
	id         int64
	name       string
	category   string
	hourlyRate decimal.Decimal
	status     Status
}

func ReconstructCourt(id int64, name, category string, hourlyRate decimal.Decimal, status Status) *Court {
	return &Court{
		id:         id,
		name:       name,
		category:   category,
		hourlyRate: hourlyRate,
		status:     status,
	}
}

func (c *Court) EnsureBookable() error {
	if c.status != StatusAvailable {
		return ErrCourtUnavailable
	}
	return nil
}

// EnsureRateConfigured rejects zero or negative rates instead of silently charging nothing.
func (c *Court) EnsureRateConfigured() error {
	if !c.hourlyRate.IsPositive() {
		return ErrRateNotConfigured
	}
	return nil
}

func (c *Court) ID() int64                   { return c.id }
func (c *Court) Name() string                { return c.name }
func (c *Court) Category() string            { return c.category }
func (c *Court) HourlyRate() decimal.Decimal { return c.hourlyRate }
func (c *Court) Status() Status              { return c.status }
