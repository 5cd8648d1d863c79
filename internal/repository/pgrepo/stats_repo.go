package pgrepo

import (
	"context"

	"github.com/fsdevblog/fxdesk/pkg/uow"
)

type StatsRepository struct {
	conn uow.DBTX
}

func NewStatsRepository(conn uow.DBTX) *StatsRepository {
	return &StatsRepository{conn: conn}
}

func (r *StatsRepository) CountSuppliers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT count(*) FROM suppliers`, "counting suppliers")
}

func (r *StatsRepository) CountTransactions(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT count(*) FROM transactions`, "counting transactions")
}

func (r *StatsRepository) CountBeneficiaries(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT count(*) FROM beneficiaries`, "counting beneficiaries")
}

func (r *StatsRepository) count(ctx context.Context, query, msg string) (int64, error) {
	var total int64
	if err := r.conn.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, convertErr(err, "%s", msg)
	}
	return total, nil
}
