//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gym-reservation-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool, a conn or a tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Reference courts seeded on every reset.
const (
	CourtBadminton1 int64 = 1
	CourtBadminton2 int64 = 2
	CourtTennis     int64 = 3
	CourtMaintained int64 = 4
)

func CreateCourt(t *testing.T, db DBLike, name, category string, hourlyRate decimal.Decimal, status string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO courts (name, category, hourly_rate, status) VALUES ($1, $2, $3, $4) RETURNING id",
		name, category, hourlyRate, status).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateMember(t *testing.T, db DBLike, name string, balance decimal.Decimal, level string) int64 {
	t.Helper()

	var lvl *string
	if level != "" {
		lvl = &level
	}
	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO members (name, balance, status, level) VALUES ($1, $2, 'active', $3) RETURNING id",
		name, balance, lvl).Scan(&id)
	require.NoError(t, err)
	return id
}

func SetMemberStatus(t *testing.T, db DBLike, memberID int64, status string) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE members SET status = $2 WHERE id = $1", memberID, status)
	require.NoError(t, err)
}

// CreateDiscountCard issues a percentage card valid from yesterday for a month.
func CreateDiscountCard(t *testing.T, db DBLike, memberID int64, percent int) int64 {
	t.Helper()

	today := time.Now().UTC().Truncate(24 * time.Hour)
	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO membership_cards (member_id, kind, discount_percent, start_date, end_date)
		VALUES ($1, 'percentage_discount', $2, $3, $4) RETURNING id`,
		memberID, percent, today.AddDate(0, 0, -1), today.AddDate(0, 1, 0)).Scan(&id)
	require.NoError(t, err)
	return id
}

// SetMemberLevels stores the tier table JSON the price resolver reads.
func SetMemberLevels(t *testing.T, db DBLike, levelsJSON string) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO system_settings (group_key, setting_key, setting_value)
		VALUES ($1, $2, $3)
		ON CONFLICT (group_key, setting_key) DO UPDATE SET setting_value = EXCLUDED.setting_value, updated_at = NOW()`,
		shared.SettingsGroupMember, shared.SettingsKeyMemberLevel, levelsJSON)
	require.NoError(t, err)
}

func MemberBalance(t *testing.T, db DBLike, memberID int64) decimal.Decimal {
	t.Helper()

	var balance decimal.Decimal
	err := db.QueryRow(context.Background(), "SELECT balance FROM members WHERE id = $1", memberID).Scan(&balance)
	require.NoError(t, err)
	return balance
}

// LedgerNet sums the member's signed ledger movements.
func LedgerNet(t *testing.T, db DBLike, memberID int64) decimal.Decimal {
	t.Helper()

	var net decimal.Decimal
	err := db.QueryRow(context.Background(), `
		SELECT COALESCE(SUM(CASE entry_type WHEN 'charge' THEN -amount ELSE amount END), 0)
		FROM member_ledger WHERE member_id = $1`, memberID).Scan(&net)
	require.NoError(t, err)
	return net
}

// OverlappingPairs counts live reservations on the same court whose slots intersect.
func OverlappingPairs(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), `
		SELECT COUNT(*) FROM reservations a
		JOIN reservations b ON a.court_id = b.court_id AND a.id < b.id
		WHERE a.status <> 'cancelled' AND b.status <> 'cancelled'
		  AND a.start_time < b.end_time AND b.start_time < a.end_time`).Scan(&n)
	require.NoError(t, err)
	return n
}

// SeedReferenceData inserts the courts every test starts from.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO courts (id, name, category, hourly_rate, status) VALUES
		    (1, 'Badminton 1', 'badminton', 50.00, 'available'),
		    (2, 'Badminton 2', 'badminton', 50.00, 'available'),
		    (3, 'Tennis', 'tennis', 120.00, 'available'),
		    (4, 'Squash', 'squash', 80.00, 'maintenance')
		ON CONFLICT (id) DO NOTHING;
		SELECT setval('courts_id_seq', (SELECT MAX(id) FROM courts));
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
