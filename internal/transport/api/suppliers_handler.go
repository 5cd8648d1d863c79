package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/fxdesk/internal/domain"
	"github.com/fsdevblog/fxdesk/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type SuppliersHandler struct {
	svs SupplierServicer
}

func NewSuppliersHandler(svs SupplierServicer) *SuppliersHandler {
	return &SuppliersHandler{
		svs: svs,
	}
}

type BeneficiaryParams struct {
	Name       string          `json:"name"       binding:"required"`
	Commission decimal.Decimal `json:"commission" binding:"gte=0"`
}

type SupplierParams struct {
	Name         string          `json:"name"          binding:"required"`
	DayRate      decimal.Decimal `json:"day_rate"      binding:"gt=0"`
	USDTQuantity decimal.Decimal `json:"usdt_quantity" binding:"gt=0"`
	// Beneficiaries на обновлении поле можно опустить, тогда текущий набор
	// остается нетронутым. Непустой список полностью заменяет набор.
	Beneficiaries []BeneficiaryParams `json:"beneficiaries"`
}

type BeneficiaryResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Commission decimal.Decimal `json:"commission"`
}

type SupplierResponse struct {
	ID            int64                 `json:"id"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
	Name          string                `json:"name"`
	DayRate       decimal.Decimal       `json:"day_rate"`
	USDTQuantity  decimal.Decimal       `json:"usdt_quantity"`
	Beneficiaries []BeneficiaryResponse `json:"beneficiaries"`
}

func newSupplierResponse(s domain.Supplier) SupplierResponse {
	beneficiaries := make([]BeneficiaryResponse, len(s.Beneficiaries))
	for i, b := range s.Beneficiaries {
		beneficiaries[i] = BeneficiaryResponse{
			ID:         b.ID,
			Name:       b.Name,
			Commission: b.Commission,
		}
	}
	return SupplierResponse{
		ID:            s.ID,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		Name:          s.Name,
		DayRate:       s.DayRate,
		USDTQuantity:  s.USDTQuantity,
		Beneficiaries: beneficiaries,
	}
}

func benefServiceArgs(params []BeneficiaryParams) []service.BeneficiaryArgs {
	if params == nil {
		return nil
	}
	args := make([]service.BeneficiaryArgs, len(params))
	for i, p := range params {
		args[i] = service.BeneficiaryArgs{
			Name:       p.Name,
			Commission: p.Commission,
		}
	}
	return args
}

// Create POST RouteGroup + SuppliersRoute. Поставщик и его бенефициары
// сохраняются одной транзакцией, частичной записи не бывает.
func (h *SuppliersHandler) Create(c *gin.Context) {
	var params SupplierParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	supplier, err := h.svs.Create(reqCtx, service.CreateSupplierArgs{
		Name:          params.Name,
		DayRate:       params.DayRate,
		USDTQuantity:  params.USDTQuantity,
		Beneficiaries: benefServiceArgs(params.Beneficiaries),
	})
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, newSupplierResponse(*supplier))
}

// Index GET RouteGroup + SuppliersRoute.
func (h *SuppliersHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	suppliers, err := h.svs.GetAll(reqCtx)
	if err != nil {
		abortDomainErr(c, err)
		return
	}

	response := make([]SupplierResponse, len(suppliers))
	for i, supplier := range suppliers {
		response[i] = newSupplierResponse(supplier)
	}
	c.JSON(http.StatusOK, response)
}

// Show GET RouteGroup + SupplierRoute.
func (h *SuppliersHandler) Show(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	supplier, err := h.svs.GetByID(reqCtx, id)
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, newSupplierResponse(*supplier))
}

// Update PUT RouteGroup + SupplierRoute.
func (h *SuppliersHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var params SupplierParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	supplier, err := h.svs.Update(reqCtx, id, service.UpdateSupplierArgs{
		Name:          params.Name,
		DayRate:       params.DayRate,
		USDTQuantity:  params.USDTQuantity,
		Beneficiaries: benefServiceArgs(params.Beneficiaries),
	})
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, newSupplierResponse(*supplier))
}

// Delete DELETE RouteGroup + SupplierRoute.
func (h *SuppliersHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.Delete(reqCtx, id); err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "supplier deleted"})
}
