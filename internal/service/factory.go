package service

import (
	"fmt"

	"github.com/fsdevblog/fxdesk/pkg/uow"
)

type AppServices struct {
	SupplierService    *SupplierService
	TransactionService *TransactionService
	AllocationService  *AllocationService
	StatsService       *StatsService
}

func Factory(unitOfWork uow.UOW) (*AppServices, error) {
	supplierService, supplierErr := NewSupplierService(unitOfWork)
	if supplierErr != nil {
		return nil, fmt.Errorf("service factory: %s", supplierErr.Error())
	}

	transactionService, transactionErr := NewTransactionService(unitOfWork)
	if transactionErr != nil {
		return nil, fmt.Errorf("service factory: %s", transactionErr.Error())
	}

	allocationService, allocationErr := NewAllocationService(unitOfWork)
	if allocationErr != nil {
		return nil, fmt.Errorf("service factory: %s", allocationErr.Error())
	}

	statsService, statsErr := NewStatsService(unitOfWork)
	if statsErr != nil {
		return nil, fmt.Errorf("service factory: %s", statsErr.Error())
	}

	return &AppServices{
		SupplierService:    supplierService,
		TransactionService: transactionService,
		AllocationService:  allocationService,
		StatsService:       statsService,
	}, nil
}
