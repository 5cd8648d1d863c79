package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/fxdesk/internal/allocation"
	"github.com/fsdevblog/fxdesk/internal/domain"
	"github.com/fsdevblog/fxdesk/internal/service"
)

// SupplierServicer интерфейс исключительно для моков.
type SupplierServicer interface {
	Create(ctx context.Context, args service.CreateSupplierArgs) (*domain.Supplier, error)
	Update(ctx context.Context, id int64, args service.UpdateSupplierArgs) (*domain.Supplier, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Supplier, error)
	GetAll(ctx context.Context) ([]domain.Supplier, error)
}

type TransactionServicer interface {
	Create(ctx context.Context, args service.CreateTransactionArgs) (*domain.Transaction, error)
	Update(ctx context.Context, id int64, args service.UpdateTransactionArgs) (*domain.Transaction, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
	List(ctx context.Context) ([]domain.Transaction, error)
	ListByPeriod(ctx context.Context, period domain.Period) ([]domain.Transaction, error)
	Recent(ctx context.Context, limit uint) ([]service.RecentTransaction, error)
}

type AllocationServicer interface {
	Breakdown(ctx context.Context, transactionID int64, policy allocation.Policy) (*allocation.Breakdown, error)
	History(ctx context.Context, policy allocation.Policy) ([]service.TransactionAllocation, error)
}

type StatsServicer interface {
	Totals(ctx context.Context) (*service.Totals, error)
}
