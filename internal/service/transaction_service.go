package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/fxdesk/internal/domain"
	"github.com/fsdevblog/fxdesk/internal/repository/repoargs"
	"github.com/fsdevblog/fxdesk/pkg/uow"
)

// RecentLimit размер витрины последних транзакций на дашборде.
const RecentLimit uint = 3

type TransactionService struct {
	uow             uow.UOW
	transactionRepo TransactionRepository
	supplierRepo    SupplierRepository
}

func NewTransactionService(u uow.UOW) (*TransactionService, error) {
	transactionRepo, err := uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if err != nil {
		return nil, err
	}
	supplierRepo, err := uow.GetRepositoryAs[SupplierRepository](u, uow.RepositoryName(repoargs.SupplierRepoName))
	if err != nil {
		return nil, err
	}
	return &TransactionService{
		uow:             u,
		transactionRepo: transactionRepo,
		supplierRepo:    supplierRepo,
	}, nil
}

type CreateTransactionArgs struct {
	AmountFCFA  decimal.Decimal
	Rate        decimal.Decimal
	SupplierIDs []int64
}

type UpdateTransactionArgs struct {
	AmountFCFA decimal.Decimal
	Rate       decimal.Decimal
}

// RecentTransaction транзакция для витрины "последние N" с именами привязанных
// поставщиков одной строкой.
type RecentTransaction struct {
	Transaction   domain.Transaction
	SupplierNames string
}

// Create создает транзакцию и строки связей с поставщиками одной транзакцией БД.
// Каждый переданный id проверяется на существование до первой записи; пустой
// список поставщиков - ошибка валидации.
func (t *TransactionService) Create(ctx context.Context, args CreateTransactionArgs) (*domain.Transaction, error) {
	if !args.AmountFCFA.IsPositive() {
		return nil, domain.NewValidationError("fcfa amount must be positive")
	}
	if !args.Rate.IsPositive() {
		return nil, domain.NewValidationError("rate must be positive")
	}
	if len(args.SupplierIDs) == 0 {
		return nil, domain.NewValidationError("at least one supplier must be linked")
	}

	supplierIDs := dedupeIDs(args.SupplierIDs)
	existing, existErr := t.supplierRepo.ExistingIDs(ctx, supplierIDs)
	if existErr != nil {
		return nil, existErr //nolint:wrapcheck
	}
	if len(existing) != len(supplierIDs) {
		missing := missingIDs(supplierIDs, existing)
		return nil, fmt.Errorf("suppliers %v: %w", missing, domain.ErrRecordNotFound)
	}

	amount := args.AmountFCFA.Round(domain.QuantityScale)
	rate := args.Rate.Round(domain.QuantityScale)

	var created *domain.Transaction
	txErr := t.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		transaction, createErr := repo.Create(c, repoargs.TransactionCreate{
			AmountFCFA: amount,
			Rate:       rate,
			AmountUSDT: domain.DeriveUSDT(amount, rate),
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		if linkErr := repo.Link(c, transaction.ID, supplierIDs); linkErr != nil {
			return linkErr //nolint:wrapcheck
		}
		created = transaction
		return nil
	})
	if txErr != nil {
		if isDomainInputErr(txErr) {
			return nil, txErr
		}
		return nil, errors.Wrap(txErr, "creating transaction")
	}
	return created, nil
}

// Update перезаписывает сумму и курс, заново выводя объем USDT по той же формуле,
// что и при создании.
func (t *TransactionService) Update(ctx context.Context, id int64, args UpdateTransactionArgs) (*domain.Transaction, error) {
	if !args.AmountFCFA.IsPositive() {
		return nil, domain.NewValidationError("fcfa amount must be positive")
	}
	if !args.Rate.IsPositive() {
		return nil, domain.NewValidationError("rate must be positive")
	}

	amount := args.AmountFCFA.Round(domain.QuantityScale)
	rate := args.Rate.Round(domain.QuantityScale)

	transaction, err := t.transactionRepo.Update(ctx, repoargs.TransactionUpdate{
		ID:         id,
		AmountFCFA: amount,
		Rate:       rate,
		AmountUSDT: domain.DeriveUSDT(amount, rate),
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transaction, nil
}

// Delete удаляет транзакцию. Строки связей убираются первыми, в той же транзакции БД.
func (t *TransactionService) Delete(ctx context.Context, id int64) error {
	txErr := t.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		if unlinkErr := repo.UnlinkByTransaction(c, id); unlinkErr != nil {
			return unlinkErr //nolint:wrapcheck
		}
		return repo.Delete(c, id) //nolint:wrapcheck
	})
	if txErr != nil {
		if isDomainInputErr(txErr) {
			return txErr
		}
		return errors.Wrap(txErr, "deleting transaction")
	}
	return nil
}

func (t *TransactionService) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	transaction, err := t.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transaction, nil
}

// List возвращает все транзакции по возрастанию id.
func (t *TransactionService) List(ctx context.Context) ([]domain.Transaction, error) {
	transactions, err := t.transactionRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}

// ListByPeriod возвращает транзакции не старше нижней границы периода.
func (t *TransactionService) ListByPeriod(ctx context.Context, period domain.Period) ([]domain.Transaction, error) {
	transactions, err := t.transactionRepo.GetSince(ctx, period.Start(time.Now()))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}

// Recent возвращает limit последних по дате транзакций, развернутых обратно
// в хронологический порядок, с именами поставщиков через запятую.
func (t *TransactionService) Recent(ctx context.Context, limit uint) ([]RecentTransaction, error) {
	transactions, err := t.transactionRepo.GetRecent(ctx, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	// Репозиторий отдает от новых к старым, витрина ожидает хронологию.
	slices.Reverse(transactions)

	ids := make([]int64, len(transactions))
	for i, tx := range transactions {
		ids[i] = tx.ID
	}
	names, namesErr := t.transactionRepo.GetLinkedSupplierNames(ctx, ids)
	if namesErr != nil {
		return nil, namesErr //nolint:wrapcheck
	}

	var recent = make([]RecentTransaction, len(transactions))
	for i, tx := range transactions {
		recent[i] = RecentTransaction{
			Transaction:   tx,
			SupplierNames: strings.Join(names[tx.ID], ", "),
		}
	}
	return recent, nil
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	var out = make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func missingIDs(wanted, existing []int64) []int64 {
	present := make(map[int64]struct{}, len(existing))
	for _, id := range existing {
		present[id] = struct{}{}
	}
	var missing []int64
	for _, id := range wanted {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
