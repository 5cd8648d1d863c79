package service

import (
	"context"
	"time"

	"github.com/fsdevblog/fxdesk/internal/domain"
	"github.com/fsdevblog/fxdesk/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type SupplierRepository interface {
	Create(ctx context.Context, args repoargs.SupplierCreate) (*domain.Supplier, error)
	InsertBeneficiaries(
		ctx context.Context,
		supplierID int64,
		items []repoargs.BeneficiaryCreate,
	) ([]domain.Beneficiary, error)
	UpdateScalars(ctx context.Context, args repoargs.SupplierUpdate) (*domain.Supplier, error)
	DeleteBeneficiariesBySupplier(ctx context.Context, supplierID int64) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*domain.Supplier, error)
	GetAll(ctx context.Context) ([]domain.Supplier, error)
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.TransactionCreate) (*domain.Transaction, error)
	Update(ctx context.Context, args repoargs.TransactionUpdate) (*domain.Transaction, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*domain.Transaction, error)
	GetAll(ctx context.Context) ([]domain.Transaction, error)
	GetSince(ctx context.Context, since time.Time) ([]domain.Transaction, error)
	GetRecent(ctx context.Context, limit uint) ([]domain.Transaction, error)
	Link(ctx context.Context, transactionID int64, supplierIDs []int64) error
	UnlinkByTransaction(ctx context.Context, transactionID int64) error
	GetLinkedSuppliers(ctx context.Context, transactionID int64) ([]domain.Supplier, error)
	GetLinkedSupplierNames(ctx context.Context, transactionIDs []int64) (map[int64][]string, error)
	AllProfitRows(ctx context.Context) ([]repoargs.ProfitRow, error)
}

type StatsRepository interface {
	CountSuppliers(ctx context.Context) (int64, error)
	CountTransactions(ctx context.Context) (int64, error)
	CountBeneficiaries(ctx context.Context) (int64, error)
}
