package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/fxdesk/internal/allocation"
	"github.com/fsdevblog/fxdesk/internal/domain"
	"github.com/fsdevblog/fxdesk/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TransactionsHandler struct {
	txSvs    TransactionServicer
	allocSvs AllocationServicer
}

func NewTransactionsHandler(txSvs TransactionServicer, allocSvs AllocationServicer) *TransactionsHandler {
	return &TransactionsHandler{
		txSvs:    txSvs,
		allocSvs: allocSvs,
	}
}

type CreateTransactionParams struct {
	AmountFCFA  decimal.Decimal `json:"amount_fcfa" binding:"gt=0"`
	Rate        decimal.Decimal `json:"rate"        binding:"gt=0"`
	SupplierIDs []int64         `json:"supplier_ids"`
}

type UpdateTransactionParams struct {
	AmountFCFA decimal.Decimal `json:"amount_fcfa" binding:"gt=0"`
	Rate       decimal.Decimal `json:"rate"        binding:"gt=0"`
}

// TransactionResponse денежные поля сериализуются строками, точность
// не теряется на пути через JSON.
type TransactionResponse struct {
	ID         int64           `json:"id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	AmountFCFA decimal.Decimal `json:"amount_fcfa"`
	Rate       decimal.Decimal `json:"rate"`
	AmountUSDT decimal.Decimal `json:"amount_usdt"`
}

func newTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         t.ID,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
		AmountFCFA: t.AmountFCFA,
		Rate:       t.Rate,
		AmountUSDT: t.AmountUSDT,
	}
}

// Create POST RouteGroup + TransactionsRoute.
func (t *TransactionsHandler) Create(c *gin.Context) {
	var params CreateTransactionParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := t.txSvs.Create(reqCtx, service.CreateTransactionArgs{
		AmountFCFA:  params.AmountFCFA,
		Rate:        params.Rate,
		SupplierIDs: params.SupplierIDs,
	})
	if err != nil {
		abortDomainErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTransactionResponse(*transaction))
}

// Index GET RouteGroup + TransactionsRoute. Необязательный параметр period
// сужает выборку до day|week|month|year.
func (t *TransactionsHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	var transactions []domain.Transaction
	var err error

	if periodParam := c.Query("period"); periodParam != "" {
		period, parseErr := domain.ParsePeriod(periodParam)
		if parseErr != nil {
			abortDomainErr(c, parseErr)
			return
		}
		transactions, err = t.txSvs.ListByPeriod(reqCtx, period)
	} else {
		transactions, err = t.txSvs.List(reqCtx)
	}
	if err != nil {
		abortDomainErr(c, err)
		return
	}

	response := make([]TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		response[i] = newTransactionResponse(transaction)
	}
	c.JSON(http.StatusOK, response)
}

// Show GET RouteGroup + TransactionRoute.
func (t *TransactionsHandler) Show(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := t.txSvs.GetByID(reqCtx, id)
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, newTransactionResponse(*transaction))
}

// Update PUT RouteGroup + TransactionRoute.
func (t *TransactionsHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var params UpdateTransactionParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := t.txSvs.Update(reqCtx, id, service.UpdateTransactionArgs{
		AmountFCFA: params.AmountFCFA,
		Rate:       params.Rate,
	})
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, newTransactionResponse(*transaction))
}

// Delete DELETE RouteGroup + TransactionRoute.
func (t *TransactionsHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := t.txSvs.Delete(reqCtx, id); err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
}

type RecentTransactionResponse struct {
	TransactionResponse
	SupplierNames string `json:"supplier_names"`
}

// Recent GET RouteGroup + RecentTransactionsRoute. Последние записи в
// хронологическом порядке, имена поставщиков одной строкой.
func (t *TransactionsHandler) Recent(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	recent, err := t.txSvs.Recent(reqCtx, service.RecentLimit)
	if err != nil {
		abortDomainErr(c, err)
		return
	}

	response := make([]RecentTransactionResponse, len(recent))
	for i, item := range recent {
		response[i] = RecentTransactionResponse{
			TransactionResponse: newTransactionResponse(item.Transaction),
			SupplierNames:       item.SupplierNames,
		}
	}
	c.JSON(http.StatusOK, response)
}

type AllocationSupplierResponse struct {
	SupplierID    int64           `json:"supplier_id"`
	Name          string          `json:"name"`
	MarginPerUnit decimal.Decimal `json:"margin_per_unit"`
	Profit        decimal.Decimal `json:"profit"`
	ProfitFCFAInt int64           `json:"profit_fcfa_int"`
	// Remainder отдается только для политики percent и тогда отражается как есть,
	// включая отрицательные значения.
	Remainder *decimal.Decimal `json:"remainder,omitempty"`
}

type BeneficiaryShareResponse struct {
	Name         string          `json:"name"`
	Share        decimal.Decimal `json:"share"`
	ShareFCFAInt int64           `json:"share_fcfa_int"`
}

type AllocationResponse struct {
	Policy             string                       `json:"policy"`
	Suppliers          []AllocationSupplierResponse `json:"suppliers"`
	Beneficiaries      []BeneficiaryShareResponse   `json:"beneficiaries"`
	TotalProfit        decimal.Decimal              `json:"total_profit"`
	TotalProfitFCFAInt int64                        `json:"total_profit_fcfa_int"`
	TotalRemainder     *decimal.Decimal             `json:"total_remainder,omitempty"`
}

func newAllocationResponse(breakdown *allocation.Breakdown) AllocationResponse {
	response := AllocationResponse{
		Policy:             string(breakdown.Policy),
		Suppliers:          make([]AllocationSupplierResponse, len(breakdown.Suppliers)),
		Beneficiaries:      make([]BeneficiaryShareResponse, len(breakdown.Beneficiaries)),
		TotalProfit:        breakdown.TotalProfit,
		TotalProfitFCFAInt: allocation.TruncateFCFA(breakdown.TotalProfit),
	}
	for i, s := range breakdown.Suppliers {
		item := AllocationSupplierResponse{
			SupplierID:    s.SupplierID,
			Name:          s.Name,
			MarginPerUnit: s.MarginPerUnit,
			Profit:        s.Profit,
			ProfitFCFAInt: allocation.TruncateFCFA(s.Profit),
		}
		if breakdown.Policy == allocation.PolicyPercent {
			remainder := s.Remainder
			item.Remainder = &remainder
		}
		response.Suppliers[i] = item
	}
	for i, b := range breakdown.Beneficiaries {
		response.Beneficiaries[i] = BeneficiaryShareResponse{
			Name:         b.Name,
			Share:        b.Share,
			ShareFCFAInt: allocation.TruncateFCFA(b.Share),
		}
	}
	if breakdown.Policy == allocation.PolicyPercent {
		totalRemainder := breakdown.TotalRemainder
		response.TotalRemainder = &totalRemainder
	}
	return response
}

// Allocation GET RouteGroup + TransactionAllocationRoute. Параметр policy
// выбирает трактовку комиссии, по умолчанию linear.
func (t *TransactionsHandler) Allocation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	policy, policyErr := allocation.ParsePolicy(c.DefaultQuery("policy", string(allocation.PolicyLinear)))
	if policyErr != nil {
		abortDomainErr(c, policyErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	breakdown, err := t.allocSvs.Breakdown(reqCtx, id, policy)
	if err != nil {
		abortDomainErr(c, err)
		return
	}

	c.JSON(http.StatusOK, newAllocationResponse(breakdown))
}

type HistoryItemResponse struct {
	TransactionID int64           `json:"transaction_id"`
	CreatedAt     time.Time       `json:"created_at"`
	AmountFCFA    decimal.Decimal `json:"amount_fcfa"`
	Rate          decimal.Decimal `json:"rate"`
	AmountUSDT    decimal.Decimal `json:"amount_usdt"`
	// NoSuppliers транзакции без поставщиков остаются в сводке с явной
	// пометкой вместо раскладки.
	NoSuppliers bool                `json:"no_suppliers,omitempty"`
	Allocation  *AllocationResponse `json:"allocation,omitempty"`
}

// History GET RouteGroup + TransactionAllocationsRoute. Раскладка прибыли по
// всем транзакциям, параметр policy такой же, как у Allocation.
func (t *TransactionsHandler) History(c *gin.Context) {
	policy, policyErr := allocation.ParsePolicy(c.DefaultQuery("policy", string(allocation.PolicyLinear)))
	if policyErr != nil {
		abortDomainErr(c, policyErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	items, err := t.allocSvs.History(reqCtx, policy)
	if err != nil {
		abortDomainErr(c, err)
		return
	}

	response := make([]HistoryItemResponse, len(items))
	for i, item := range items {
		entry := HistoryItemResponse{
			TransactionID: item.Transaction.ID,
			CreatedAt:     item.Transaction.CreatedAt,
			AmountFCFA:    item.Transaction.AmountFCFA,
			Rate:          item.Transaction.Rate,
			AmountUSDT:    item.Transaction.AmountUSDT,
		}
		if item.Breakdown == nil {
			entry.NoSuppliers = true
		} else {
			alloc := newAllocationResponse(item.Breakdown)
			entry.Allocation = &alloc
		}
		response[i] = entry
	}
	c.JSON(http.StatusOK, response)
}
