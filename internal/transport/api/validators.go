package api

import (
	"reflect"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"

	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators учит gin-овский валидатор работать с decimal полями:
// decimal.Decimal подменяется своим float64 представлением, после чего
// числовые теги (gt, gte и прочие) применимы к нему напрямую. Сами расчеты
// через float не идут, конвертация нужна только проверкам границ.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.InexactFloat64()
			}
			return nil
		}, decimal.Decimal{})
	})
}
