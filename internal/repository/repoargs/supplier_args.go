package repoargs

import "github.com/shopspring/decimal"

type BeneficiaryCreate struct {
	Name       string
	Commission decimal.Decimal
}

type SupplierCreate struct {
	Name         string
	DayRate      decimal.Decimal
	USDTQuantity decimal.Decimal
}

// SupplierUpdate скалярные поля поставщика. Список бенефициаров идет отдельным
// аргументом сервиса: замена набора выполняется как delete-all + insert.
type SupplierUpdate struct {
	ID           int64
	Name         string
	DayRate      decimal.Decimal
	USDTQuantity decimal.Decimal
}
