package postgres

import (
	"context"
	"fmt"

	"github.com/salesdash/api/internal/domain"
	"github.com/salesdash/api/pkg/database"
)

// DashboardRepository implements repository.DashboardRepository using
// PostgreSQL.
type DashboardRepository struct {
	pool database.DBTX
}

// NewDashboardRepository creates a PostgreSQL-backed dashboard repository.
func NewDashboardRepository(pool database.DBTX) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// Summary computes all four totals in one statement. A single statement runs
// against one snapshot, so the counts and sums are consistent with each
// other even under concurrent writes. COALESCE keeps the sums at zero for
// an empty product collection.
func (r *DashboardRepository) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM contacts),
			COALESCE((SELECT SUM(price * quantity) FROM products), 0),
			COALESCE((SELECT SUM((price - net_price) * quantity) FROM products), 0)`

	var s domain.DashboardSummary
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.TotalProducts,
		&s.TotalContacts,
		&s.TotalRevenue,
		&s.TotalProfit,
	)
	if err != nil {
		return nil, fmt.Errorf("scan dashboard summary: %w", err)
	}

	return &s, nil
}
