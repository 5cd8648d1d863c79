// Package allocation считает распределение прибыли по цепочке
// транзакция -> поставщики -> бенефициары. Пакет чистый: никакого I/O,
// вся арифметика на decimal без двоичной плавающей точки.
package allocation

import (
	"cmp"
	"slices"

	"github.com/fsdevblog/fxdesk/internal/domain"
	"github.com/shopspring/decimal"
)

// Policy политика расчета доли бенефициара. Исторически существуют обе,
// выбор за вызывающей стороной.
type Policy string

const (
	// PolicyLinear комиссия трактуется как ставка FCFA за единицу объема:
	// доля = commission * usdt_quantity поставщика.
	PolicyLinear Policy = "linear"
	// PolicyPercent комиссия трактуется как процент от прибыли поставщика:
	// доля = profit * commission / 100, нераспределенный остаток отражается как есть.
	PolicyPercent Policy = "percent"
)

// ParsePolicy разбирает политику из параметра запроса.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyLinear, PolicyPercent:
		return Policy(s), nil
	default:
		return "", domain.NewValidationError("unknown allocation policy %q, expected linear or percent", s)
	}
}

type SupplierBreakdown struct {
	SupplierID    int64
	Name          string
	MarginPerUnit decimal.Decimal
	Profit        decimal.Decimal
	// Remainder прибыль поставщика за вычетом всех долей. Заполняется только
	// для PolicyPercent. Может быть отрицательным при суммарной комиссии свыше 100%
	// и никогда не обнуляется.
	Remainder decimal.Decimal
}

type BeneficiaryShare struct {
	Name  string
	Share decimal.Decimal
}

type Breakdown struct {
	Policy    Policy
	Suppliers []SupplierBreakdown
	// Beneficiaries доли, агрегированные по имени бенефициара в порядке первого
	// появления. Ключ именно имя, а не id: два разных бенефициара с одинаковым
	// именем у разных поставщиков в агрегате неразличимы.
	Beneficiaries  []BeneficiaryShare
	TotalProfit    decimal.Decimal
	TotalRemainder decimal.Decimal
}

// Margin маржа с единицы объема: согласованный курс минус курс дня поставщика.
func Margin(rate, dayRate decimal.Decimal) decimal.Decimal {
	return rate.Sub(dayRate)
}

// SupplierProfit валовая прибыль FCFA от проведения объема через поставщика.
func SupplierProfit(rate decimal.Decimal, s domain.Supplier) decimal.Decimal {
	return Margin(rate, s.DayRate).Mul(s.USDTQuantity)
}

// Compute строит полную раскладку прибыли транзакции по поставщикам и бенефициарам.
// Поставщики в результате идут по возрастанию id. Если к транзакции не привязан
// ни один поставщик, возвращается domain.ErrNoLinkedSuppliers.
func Compute(tx domain.Transaction, suppliers []domain.Supplier, policy Policy) (*Breakdown, error) {
	if policy != PolicyLinear && policy != PolicyPercent {
		return nil, domain.NewValidationError("unknown allocation policy %q", string(policy))
	}
	if len(suppliers) == 0 {
		return nil, domain.ErrNoLinkedSuppliers
	}

	ordered := make([]domain.Supplier, len(suppliers))
	copy(ordered, suppliers)
	slices.SortFunc(ordered, func(a, b domain.Supplier) int {
		return cmp.Compare(a.ID, b.ID)
	})

	b := &Breakdown{
		Policy:    policy,
		Suppliers: make([]SupplierBreakdown, 0, len(ordered)),
	}
	shareIdx := make(map[string]int)

	for _, s := range ordered {
		margin := Margin(tx.Rate, s.DayRate)
		profit := margin.Mul(s.USDTQuantity)
		b.TotalProfit = b.TotalProfit.Add(profit)

		allocated := decimal.Zero
		for _, benef := range s.Beneficiaries {
			share := beneficiaryShare(policy, profit, benef.Commission, s.USDTQuantity)
			allocated = allocated.Add(share)

			if i, ok := shareIdx[benef.Name]; ok {
				b.Beneficiaries[i].Share = b.Beneficiaries[i].Share.Add(share)
			} else {
				shareIdx[benef.Name] = len(b.Beneficiaries)
				b.Beneficiaries = append(b.Beneficiaries, BeneficiaryShare{Name: benef.Name, Share: share})
			}
		}

		sb := SupplierBreakdown{
			SupplierID:    s.ID,
			Name:          s.Name,
			MarginPerUnit: margin,
			Profit:        profit,
		}
		if policy == PolicyPercent {
			sb.Remainder = profit.Sub(allocated)
			b.TotalRemainder = b.TotalRemainder.Add(sb.Remainder)
		}
		b.Suppliers = append(b.Suppliers, sb)
	}

	return b, nil
}

func beneficiaryShare(policy Policy, profit, commission, quantity decimal.Decimal) decimal.Decimal {
	if policy == PolicyLinear {
		return commission.Mul(quantity)
	}
	// Shift(-2) вместо деления на 100: сдвиг экспоненты точен всегда,
	// Div ограничен DivisionPrecision.
	return profit.Mul(commission.Shift(-2))
}

// TruncateFCFA усекает значение до целых FCFA. Только для витринных полей ответа,
// сами расчеты никогда не усекаются.
func TruncateFCFA(d decimal.Decimal) int64 {
	return d.Truncate(0).IntPart()
}
