package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/fxdesk/internal/allocation"
	"github.com/fsdevblog/fxdesk/internal/domain"
	"github.com/fsdevblog/fxdesk/internal/logger"
	"github.com/fsdevblog/fxdesk/internal/service"
	"github.com/fsdevblog/fxdesk/internal/transport/api/mocks"
	"github.com/fsdevblog/fxdesk/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type TransactionsHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockTxService    *mocks.MockTransactionServicer
	mockAllocService *mocks.MockAllocationServicer
}

func TestTransactionsHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionsHandlerTestSuite))
}

func (s *TransactionsHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockTxService = mocks.NewMockTransactionServicer(mockCtrl)
	s.mockAllocService = mocks.NewMockAllocationServicer(mockCtrl)

	s.router = New(RouterArgs{
		Logger:             logger.New(os.Stdout),
		TransactionService: s.mockTxService,
		AllocationService:  s.mockAllocService,
		JWTSecretKey:       []byte("super secret key"),
	})
}

func (s *TransactionsHandlerTestSuite) makeJSONRequest(method, url string, payload any) *http.Response {
	var body *bytes.Buffer
	if payload != nil {
		raw, marshalErr := json.Marshal(payload)
		s.Require().NoError(marshalErr)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
		Body:   body,
	}, testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)
	return resp
}

func (s *TransactionsHandlerTestSuite) TestCreate() {
	created := domain.Transaction{
		ID:         1,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
		AmountFCFA: decimal.RequireFromString("150000"),
		Rate:       decimal.RequireFromString("950"),
		AmountUSDT: decimal.RequireFromString("157.895"),
	}

	s.mockTxService.EXPECT().
		Create(gomock.Any(), service.CreateTransactionArgs{
			AmountFCFA:  decimal.RequireFromString("150000"),
			Rate:        decimal.RequireFromString("950"),
			SupplierIDs: []int64{1, 2},
		}).
		Return(&created, nil)

	resp := s.makeJSONRequest(http.MethodPost, RouteGroup+TransactionsRoute, gin.H{
		"amount_fcfa":  "150000",
		"rate":         "950",
		"supplier_ids": []int64{1, 2},
	})
	defer resp.Body.Close()

	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var body TransactionResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal(int64(1), body.ID)
	// точность проходит сквозь JSON без потерь, поле сериализуется строкой.
	s.True(body.AmountUSDT.Equal(decimal.RequireFromString("157.895")))
}

func (s *TransactionsHandlerTestSuite) TestCreateBindValidation() {
	// До сервиса дело не доходит: границы значений ловит binding.
	cases := []struct {
		name    string
		payload gin.H
	}{
		{
			name:    "zero amount",
			payload: gin.H{"amount_fcfa": "0", "rate": "950", "supplier_ids": []int64{1}},
		},
		{
			name:    "negative rate",
			payload: gin.H{"amount_fcfa": "1000", "rate": "-950", "supplier_ids": []int64{1}},
		},
		{
			name:    "missing rate",
			payload: gin.H{"amount_fcfa": "1000", "supplier_ids": []int64{1}},
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			resp := s.makeJSONRequest(http.MethodPost, RouteGroup+TransactionsRoute, t.payload)
			defer resp.Body.Close()

			s.Require().Equal(http.StatusBadRequest, resp.StatusCode)

			var body map[string]any
			s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
			s.Contains(body, "message")
		})
	}
}

func (s *TransactionsHandlerTestSuite) TestCreateUnknownSupplier() {
	s.mockTxService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrRecordNotFound)

	resp := s.makeJSONRequest(http.MethodPost, RouteGroup+TransactionsRoute, gin.H{
		"amount_fcfa":  "1000",
		"rate":         "950",
		"supplier_ids": []int64{99},
	})
	defer resp.Body.Close()

	s.Require().Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *TransactionsHandlerTestSuite) TestIndexPeriod() {
	s.mockTxService.EXPECT().
		ListByPeriod(gomock.Any(), domain.PeriodWeek).
		Return([]domain.Transaction{{ID: 1}, {ID: 2}}, nil)

	resp := s.makeJSONRequest(http.MethodGet, RouteGroup+TransactionsRoute+"?period=week", nil)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body []TransactionResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Len(body, 2)
}

func (s *TransactionsHandlerTestSuite) TestIndexInvalidPeriod() {
	resp := s.makeJSONRequest(http.MethodGet, RouteGroup+TransactionsRoute+"?period=decade", nil)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *TransactionsHandlerTestSuite) TestShowNotFound() {
	s.mockTxService.EXPECT().
		GetByID(gomock.Any(), int64(404)).
		Return(nil, domain.ErrRecordNotFound)

	resp := s.makeJSONRequest(http.MethodGet, RouteGroup+"/transactions/404", nil)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusNotFound, resp.StatusCode)

	var body map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Contains(body, "message")
}

func (s *TransactionsHandlerTestSuite) TestUpdate() {
	updated := domain.Transaction{
		ID:         5,
		AmountFCFA: decimal.RequireFromString("200000"),
		Rate:       decimal.RequireFromString("800"),
		AmountUSDT: decimal.RequireFromString("250"),
	}

	s.mockTxService.EXPECT().
		Update(gomock.Any(), int64(5), service.UpdateTransactionArgs{
			AmountFCFA: decimal.RequireFromString("200000"),
			Rate:       decimal.RequireFromString("800"),
		}).
		Return(&updated, nil)

	resp := s.makeJSONRequest(http.MethodPut, RouteGroup+"/transactions/5", gin.H{
		"amount_fcfa": "200000",
		"rate":        "800",
	})
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body TransactionResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.True(body.AmountUSDT.Equal(decimal.RequireFromString("250")))
}

func (s *TransactionsHandlerTestSuite) TestDelete() {
	s.mockTxService.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)

	resp := s.makeJSONRequest(http.MethodDelete, RouteGroup+"/transactions/5", nil)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)
}

func (s *TransactionsHandlerTestSuite) TestDeleteInvalidID() {
	resp := s.makeJSONRequest(http.MethodDelete, RouteGroup+"/transactions/abc", nil)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *TransactionsHandlerTestSuite) TestRecent() {
	recent := []service.RecentTransaction{
		{
			Transaction:   domain.Transaction{ID: 1, AmountUSDT: decimal.RequireFromString("100")},
			SupplierNames: "Kofi, Ama",
		},
	}

	s.mockTxService.EXPECT().Recent(gomock.Any(), service.RecentLimit).Return(recent, nil)

	resp := s.makeJSONRequest(http.MethodGet, RouteGroup+RecentTransactionsRoute, nil)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body []RecentTransactionResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Require().Len(body, 1)
	s.Equal("Kofi, Ama", body[0].SupplierNames)
}

func (s *TransactionsHandlerTestSuite) TestAllocationDefaultPolicy() {
	breakdown := allocation.Breakdown{
		Policy: allocation.PolicyLinear,
		Suppliers: []allocation.SupplierBreakdown{
			{
				SupplierID:    1,
				Name:          "Kofi",
				MarginPerUnit: decimal.RequireFromString("50"),
				Profit:        decimal.RequireFromString("5000.75"),
			},
		},
		Beneficiaries: []allocation.BeneficiaryShare{
			{Name: "alice", Share: decimal.RequireFromString("250")},
		},
		TotalProfit: decimal.RequireFromString("5000.75"),
	}

	// без параметра policy применяется linear.
	s.mockAllocService.EXPECT().
		Breakdown(gomock.Any(), int64(5), allocation.PolicyLinear).
		Return(&breakdown, nil)

	resp := s.makeJSONRequest(http.MethodGet, RouteGroup+"/transactions/5/allocation", nil)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body AllocationResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("linear", body.Policy)
	s.Require().Len(body.Suppliers, 1)
	// витринное поле усечено до целых FCFA, точное значение не трогается.
	s.Equal(int64(5000), body.Suppliers[0].ProfitFCFAInt)
	s.True(body.Suppliers[0].Profit.Equal(decimal.RequireFromString("5000.75")))
	s.Nil(body.Suppliers[0].Remainder)
	s.Nil(body.TotalRemainder)
}

func (s *TransactionsHandlerTestSuite) TestAllocationPercentPolicy() {
	remainder := decimal.RequireFromString("4500")
	breakdown := allocation.Breakdown{
		Policy: allocation.PolicyPercent,
		Suppliers: []allocation.SupplierBreakdown{
			{
				SupplierID:    1,
				Name:          "Kofi",
				MarginPerUnit: decimal.RequireFromString("50"),
				Profit:        decimal.RequireFromString("5000"),
				Remainder:     remainder,
			},
		},
		Beneficiaries: []allocation.BeneficiaryShare{
			{Name: "alice", Share: decimal.RequireFromString("500")},
		},
		TotalProfit:    decimal.RequireFromString("5000"),
		TotalRemainder: remainder,
	}

	s.mockAllocService.EXPECT().
		Breakdown(gomock.Any(), int64(5), allocation.PolicyPercent).
		Return(&breakdown, nil)

	resp := s.makeJSONRequest(http.MethodGet, RouteGroup+"/transactions/5/allocation?policy=percent", nil)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body AllocationResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("percent", body.Policy)
	s.Require().NotNil(body.TotalRemainder)
	s.True(body.TotalRemainder.Equal(remainder))
	s.Require().Len(body.Suppliers, 1)
	s.Require().NotNil(body.Suppliers[0].Remainder)
	s.True(body.Suppliers[0].Remainder.Equal(remainder))
}

func (s *TransactionsHandlerTestSuite) TestAllocationUnknownPolicy() {
	resp := s.makeJSONRequest(http.MethodGet, RouteGroup+"/transactions/5/allocation?policy=quadratic", nil)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *TransactionsHandlerTestSuite) TestHistory() {
	breakdown := &allocation.Breakdown{
		Policy: allocation.PolicyLinear,
		Suppliers: []allocation.SupplierBreakdown{
			{
				SupplierID:    1,
				Name:          "Kofi",
				MarginPerUnit: decimal.RequireFromString("50"),
				Profit:        decimal.RequireFromString("5000"),
			},
		},
		Beneficiaries: []allocation.BeneficiaryShare{
			{Name: "alice", Share: decimal.RequireFromString("500")},
		},
		TotalProfit: decimal.RequireFromString("5000"),
	}
	items := []service.TransactionAllocation{
		{
			Transaction: domain.Transaction{
				ID:         1,
				AmountFCFA: decimal.RequireFromString("150000"),
				Rate:       decimal.RequireFromString("950"),
				AmountUSDT: decimal.RequireFromString("157.895"),
			},
			Breakdown: breakdown,
		},
		{
			// сиротская транзакция: обязана присутствовать в ответе с пометкой.
			Transaction: domain.Transaction{
				ID:         2,
				AmountFCFA: decimal.RequireFromString("50000"),
				Rate:       decimal.RequireFromString("1000"),
				AmountUSDT: decimal.RequireFromString("50"),
			},
		},
	}

	s.mockAllocService.EXPECT().
		History(gomock.Any(), allocation.PolicyLinear).
		Return(items, nil)

	resp := s.makeJSONRequest(http.MethodGet, RouteGroup+TransactionAllocationsRoute, nil)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body []HistoryItemResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Require().Len(body, 2)

	s.Equal(int64(1), body[0].TransactionID)
	s.False(body[0].NoSuppliers)
	s.Require().NotNil(body[0].Allocation)
	s.Equal(int64(5000), body[0].Allocation.TotalProfitFCFAInt)

	s.Equal(int64(2), body[1].TransactionID)
	s.True(body[1].NoSuppliers)
	s.Nil(body[1].Allocation)
}

func (s *TransactionsHandlerTestSuite) TestHistoryPercentPolicy() {
	s.mockAllocService.EXPECT().
		History(gomock.Any(), allocation.PolicyPercent).
		Return([]service.TransactionAllocation{}, nil)

	resp := s.makeJSONRequest(http.MethodGet, RouteGroup+TransactionAllocationsRoute+"?policy=percent", nil)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)
}

func (s *TransactionsHandlerTestSuite) TestHistoryUnknownPolicy() {
	resp := s.makeJSONRequest(http.MethodGet, RouteGroup+TransactionAllocationsRoute+"?policy=median", nil)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *TransactionsHandlerTestSuite) TestAllocationNoSuppliers() {
	s.mockAllocService.EXPECT().
		Breakdown(gomock.Any(), int64(5), allocation.PolicyLinear).
		Return(nil, domain.ErrNoLinkedSuppliers)

	resp := s.makeJSONRequest(http.MethodGet, RouteGroup+"/transactions/5/allocation", nil)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusNotFound, resp.StatusCode)

	var body map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Contains(body["message"], "no suppliers")
}
