package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/fxdesk/internal/domain"
	"github.com/fsdevblog/fxdesk/internal/repository/repoargs"
	"github.com/fsdevblog/fxdesk/pkg/uow"
)

type SupplierService struct {
	uow          uow.UOW
	supplierRepo SupplierRepository
}

func NewSupplierService(u uow.UOW) (*SupplierService, error) {
	supplierRepo, err := uow.GetRepositoryAs[SupplierRepository](u, uow.RepositoryName(repoargs.SupplierRepoName))
	if err != nil {
		return nil, err
	}
	return &SupplierService{
		uow:          u,
		supplierRepo: supplierRepo,
	}, nil
}

type BeneficiaryArgs struct {
	Name       string
	Commission decimal.Decimal
}

type CreateSupplierArgs struct {
	Name          string
	DayRate       decimal.Decimal
	USDTQuantity  decimal.Decimal
	Beneficiaries []BeneficiaryArgs
}

type UpdateSupplierArgs struct {
	Name         string
	DayRate      decimal.Decimal
	USDTQuantity decimal.Decimal
	// Beneficiaries nil означает "набор не трогать". Непустой список полностью
	// заменяет текущих бенефициаров: старые записи удаляются, id не сохраняются.
	Beneficiaries []BeneficiaryArgs
}

// Create создает поставщика вместе с бенефициарами одной транзакцией БД.
// Валидация выполняется целиком до первой записи: при любой ошибке в данных
// не сохраняется ни одной строки.
func (s *SupplierService) Create(ctx context.Context, args CreateSupplierArgs) (*domain.Supplier, error) {
	createArgs, benefArgs, vErr := validateSupplierInput(args.Name, args.DayRate, args.USDTQuantity, args.Beneficiaries)
	if vErr != nil {
		return nil, vErr
	}

	var created *domain.Supplier
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[SupplierRepository](tx, uow.RepositoryName(repoargs.SupplierRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		supplier, createErr := repo.Create(c, *createArgs)
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		beneficiaries, insErr := repo.InsertBeneficiaries(c, supplier.ID, benefArgs)
		if insErr != nil {
			return insErr //nolint:wrapcheck
		}
		supplier.Beneficiaries = beneficiaries
		created = supplier
		return nil
	})
	if txErr != nil {
		if isDomainInputErr(txErr) {
			return nil, txErr
		}
		return nil, errors.Wrap(txErr, "creating supplier")
	}
	return created, nil
}

// Update обновляет скалярные поля поставщика. Если передан список бенефициаров,
// текущий набор удаляется и вставляется новый - это замена, не merge.
func (s *SupplierService) Update(ctx context.Context, id int64, args UpdateSupplierArgs) (*domain.Supplier, error) {
	_, benefArgs, vErr := validateSupplierInput(args.Name, args.DayRate, args.USDTQuantity, args.Beneficiaries)
	if vErr != nil {
		// nil-список бенефициаров валиден на обновлении: набор остается прежним.
		if args.Beneficiaries != nil || !errors.Is(vErr, errBeneficiariesRequired) {
			return nil, vErr
		}
	}

	var updated *domain.Supplier
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[SupplierRepository](tx, uow.RepositoryName(repoargs.SupplierRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		supplier, updErr := repo.UpdateScalars(c, repoargs.SupplierUpdate{
			ID:           id,
			Name:         strings.TrimSpace(args.Name),
			DayRate:      args.DayRate.Round(domain.QuantityScale),
			USDTQuantity: args.USDTQuantity.Round(domain.QuantityScale),
		})
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		if args.Beneficiaries != nil {
			if delErr := repo.DeleteBeneficiariesBySupplier(c, id); delErr != nil {
				return delErr //nolint:wrapcheck
			}
			beneficiaries, insErr := repo.InsertBeneficiaries(c, id, benefArgs)
			if insErr != nil {
				return insErr //nolint:wrapcheck
			}
			supplier.Beneficiaries = beneficiaries
		} else {
			existing, findErr := repo.FindByID(c, id)
			if findErr != nil {
				return findErr //nolint:wrapcheck
			}
			supplier.Beneficiaries = existing.Beneficiaries
		}

		updated = supplier
		return nil
	})
	if txErr != nil {
		if isDomainInputErr(txErr) {
			return nil, txErr
		}
		return nil, errors.Wrap(txErr, "updating supplier")
	}
	return updated, nil
}

// Delete удаляет поставщика. Бенефициары уходят каскадом на уровне схемы,
// строки связей с транзакциями - тоже.
func (s *SupplierService) Delete(ctx context.Context, id int64) error {
	if err := s.supplierRepo.Delete(ctx, id); err != nil {
		return err //nolint:wrapcheck
	}
	return nil
}

func (s *SupplierService) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return supplier, nil
}

func (s *SupplierService) GetAll(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return suppliers, nil
}

var errBeneficiariesRequired = domain.NewValidationError("at least one beneficiary is required")

// validateSupplierInput общая валидация данных поставщика для create и update.
// Возвращает нормализованные аргументы репозитория (имена обрезаны, величины
// приведены к 3 знакам).
func validateSupplierInput(
	name string,
	dayRate, quantity decimal.Decimal,
	beneficiaries []BeneficiaryArgs,
) (*repoargs.SupplierCreate, []repoargs.BeneficiaryCreate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil, domain.NewValidationError("supplier name must not be empty")
	}
	if !dayRate.IsPositive() {
		return nil, nil, domain.NewValidationError("day rate must be positive")
	}
	if !quantity.IsPositive() {
		return nil, nil, domain.NewValidationError("usdt quantity must be positive")
	}
	if len(beneficiaries) == 0 {
		return nil, nil, errBeneficiariesRequired
	}

	var benefArgs = make([]repoargs.BeneficiaryCreate, 0, len(beneficiaries))
	for _, b := range beneficiaries {
		benefName := strings.TrimSpace(b.Name)
		if benefName == "" {
			return nil, nil, domain.NewValidationError("beneficiary name must not be empty")
		}
		if b.Commission.IsNegative() {
			return nil, nil, domain.NewValidationError("beneficiary %q commission must not be negative", benefName)
		}
		benefArgs = append(benefArgs, repoargs.BeneficiaryCreate{
			Name:       benefName,
			Commission: b.Commission.Round(domain.QuantityScale),
		})
	}

	return &repoargs.SupplierCreate{
		Name:         name,
		DayRate:      dayRate.Round(domain.QuantityScale),
		USDTQuantity: quantity.Round(domain.QuantityScale),
	}, benefArgs, nil
}

// isDomainInputErr ошибки валидации и доменные сентинелы отдаются наверх как есть,
// без дополнительной обертки: хендлер маппит их на статусы напрямую.
func isDomainInputErr(err error) bool {
	var vErr *domain.ValidationError
	return errors.As(err, &vErr) ||
		errors.Is(err, domain.ErrRecordNotFound) ||
		errors.Is(err, domain.ErrDuplicateKey) ||
		errors.Is(err, domain.ErrNoLinkedSuppliers)
}
