package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

// QuantityScale количество знаков после запятой для всех величин, выраженных в USDT.
const QuantityScale = 3

type Transaction struct {
	ID         int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	AmountFCFA decimal.Decimal
	// Rate согласованный курс FCFA за 1 USDT. Не путать с дневным курсом поставщика.
	Rate       decimal.Decimal
	AmountUSDT decimal.Decimal
}

type Supplier struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	// DayRate курс дня поставщика, FCFA за 1 USDT.
	DayRate      decimal.Decimal
	USDTQuantity decimal.Decimal

	Beneficiaries []Beneficiary
}

type Beneficiary struct {
	ID         int64
	SupplierID int64
	Name       string
	// Commission интерпретация зависит от политики расчета: ставка FCFA за единицу объема
	// либо процент от прибыли поставщика.
	Commission decimal.Decimal
}

// TransactionSupplier связь N:M между транзакцией и поставщиком. Дополнительных атрибутов нет.
type TransactionSupplier struct {
	TransactionID int64
	SupplierID    int64
}

// DeriveUSDT вычисляет объем USDT по сумме FCFA и согласованному курсу.
// Результат округляется до QuantityScale знаков.
func DeriveUSDT(amountFCFA, rate decimal.Decimal) decimal.Decimal {
	return amountFCFA.DivRound(rate, QuantityScale)
}
