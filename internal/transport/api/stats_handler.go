package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/fxdesk/internal/allocation"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type StatsHandler struct {
	svs StatsServicer
}

func NewStatsHandler(svs StatsServicer) *StatsHandler {
	return &StatsHandler{
		svs: svs,
	}
}

type TotalsResponse struct {
	Suppliers          int64           `json:"suppliers"`
	Transactions       int64           `json:"transactions"`
	Beneficiaries      int64           `json:"beneficiaries"`
	TotalProfit        decimal.Decimal `json:"total_profit"`
	TotalProfitFCFAInt int64           `json:"total_profit_fcfa_int"`
}

// Totals GET RouteGroup + StatsTotalsRoute.
func (h *StatsHandler) Totals(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	totals, err := h.svs.Totals(reqCtx)
	if err != nil {
		abortDomainErr(c, err)
		return
	}

	c.JSON(http.StatusOK, TotalsResponse{
		Suppliers:          totals.Suppliers,
		Transactions:       totals.Transactions,
		Beneficiaries:      totals.Beneficiaries,
		TotalProfit:        totals.TotalProfit,
		TotalProfitFCFAInt: allocation.TruncateFCFA(totals.TotalProfit),
	})
}
