package repoargs

import "github.com/shopspring/decimal"

type TransactionCreate struct {
	AmountFCFA decimal.Decimal
	Rate       decimal.Decimal
	AmountUSDT decimal.Decimal
}

type TransactionUpdate struct {
	ID         int64
	AmountFCFA decimal.Decimal
	Rate       decimal.Decimal
	AmountUSDT decimal.Decimal
}

// ProfitRow строка соединения transaction x supplier для глобальной суммы прибыли:
// курс транзакции и параметры поставщика. Сама арифметика остается за пакетом allocation.
type ProfitRow struct {
	Rate         decimal.Decimal
	DayRate      decimal.Decimal
	USDTQuantity decimal.Decimal
}
