package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/fxdesk/internal/allocation"
	"github.com/fsdevblog/fxdesk/internal/domain"
	"github.com/fsdevblog/fxdesk/internal/repository/repoargs"
	"github.com/fsdevblog/fxdesk/pkg/uow"
)

type StatsService struct {
	uow             uow.UOW
	statsRepo       StatsRepository
	transactionRepo TransactionRepository
}

func NewStatsService(u uow.UOW) (*StatsService, error) {
	statsRepo, err := uow.GetRepositoryAs[StatsRepository](u, uow.RepositoryName(repoargs.StatsRepoName))
	if err != nil {
		return nil, err
	}
	transactionRepo, err := uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if err != nil {
		return nil, err
	}
	return &StatsService{
		uow:             u,
		statsRepo:       statsRepo,
		transactionRepo: transactionRepo,
	}, nil
}

type Totals struct {
	Suppliers     int64
	Transactions  int64
	Beneficiaries int64
	// TotalProfit сумма прибыли по всем связям транзакция-поставщик за всю историю.
	TotalProfit decimal.Decimal
}

// Totals возвращает счетчики по каждой сущности и глобальную сумму прибыли.
// Каждый показатель читается независимо.
func (s *StatsService) Totals(ctx context.Context) (*Totals, error) {
	suppliers, err := s.statsRepo.CountSuppliers(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	transactions, err := s.statsRepo.CountTransactions(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	beneficiaries, err := s.statsRepo.CountBeneficiaries(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	rows, err := s.transactionRepo.AllProfitRows(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	var totalProfit decimal.Decimal
	for _, row := range rows {
		profit := allocation.SupplierProfit(row.Rate, domain.Supplier{
			DayRate:      row.DayRate,
			USDTQuantity: row.USDTQuantity,
		})
		totalProfit = totalProfit.Add(profit)
	}

	return &Totals{
		Suppliers:     suppliers,
		Transactions:  transactions,
		Beneficiaries: beneficiaries,
		TotalProfit:   totalProfit,
	}, nil
}
