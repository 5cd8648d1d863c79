package service

import (
	"context"
	"errors"

	"github.com/fsdevblog/fxdesk/internal/allocation"
	"github.com/fsdevblog/fxdesk/internal/domain"
	"github.com/fsdevblog/fxdesk/internal/repository/repoargs"
	"github.com/fsdevblog/fxdesk/pkg/uow"
)

// TransactionAllocation строка сводной раскладки: транзакция вместе с ее
// распределением прибыли. Breakdown равен nil у транзакций без привязанных
// поставщиков, такие строки остаются в сводке явным образом.
type TransactionAllocation struct {
	Transaction domain.Transaction
	Breakdown   *allocation.Breakdown
}

type AllocationService struct {
	uow             uow.UOW
	transactionRepo TransactionRepository
}

func NewAllocationService(u uow.UOW) (*AllocationService, error) {
	transactionRepo, err := uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if err != nil {
		return nil, err
	}
	return &AllocationService{
		uow:             u,
		transactionRepo: transactionRepo,
	}, nil
}

// Breakdown загружает транзакцию с привязанными поставщиками и отдает раскладку
// прибыли по выбранной политике. Если поставщиков нет, наверх уходит
// domain.ErrNoLinkedSuppliers - молчаливого нулевого результата не бывает.
func (a *AllocationService) Breakdown(
	ctx context.Context,
	transactionID int64,
	policy allocation.Policy,
) (*allocation.Breakdown, error) {
	transaction, txErr := a.transactionRepo.FindByID(ctx, transactionID)
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}

	suppliers, supErr := a.transactionRepo.GetLinkedSuppliers(ctx, transactionID)
	if supErr != nil {
		return nil, supErr //nolint:wrapcheck
	}

	breakdown, err := allocation.Compute(*transaction, suppliers, policy)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return breakdown, nil
}

// History считает раскладку по всем транзакциям разом. Транзакция без
// поставщиков попадает в результат с пустым Breakdown, а не выпадает из списка.
func (a *AllocationService) History(
	ctx context.Context,
	policy allocation.Policy,
) ([]TransactionAllocation, error) {
	transactions, err := a.transactionRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	items := make([]TransactionAllocation, 0, len(transactions))
	for _, tx := range transactions {
		suppliers, supErr := a.transactionRepo.GetLinkedSuppliers(ctx, tx.ID)
		if supErr != nil {
			return nil, supErr //nolint:wrapcheck
		}

		breakdown, cErr := allocation.Compute(tx, suppliers, policy)
		if cErr != nil {
			if errors.Is(cErr, domain.ErrNoLinkedSuppliers) {
				items = append(items, TransactionAllocation{Transaction: tx})
				continue
			}
			return nil, cErr //nolint:wrapcheck
		}
		items = append(items, TransactionAllocation{Transaction: tx, Breakdown: breakdown})
	}
	return items, nil
}
