package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/fxdesk/internal/repository/repoargs"
	"github.com/fsdevblog/fxdesk/internal/service/mocks"
	"github.com/fsdevblog/fxdesk/pkg/uow"
	uowmocks "github.com/fsdevblog/fxdesk/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StatsServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockUOW             *uowmocks.MockUOW
	mockStatsRepo       *mocks.MockStatsRepository
	mockTransactionRepo *mocks.MockTransactionRepository
	statsService        *StatsService
}

func TestStatsServiceSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}

func (s *StatsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockStatsRepo = mocks.NewMockStatsRepository(s.mockCtrl)
	s.mockTransactionRepo = mocks.NewMockTransactionRepository(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.StatsRepoName)).
		Return(s.mockStatsRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()

	statsService, servErr := NewStatsService(s.mockUOW)
	s.Require().NoError(servErr)
	s.statsService = statsService
}

func (s *StatsServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *StatsServiceTestSuite) TestTotals() {
	s.mockStatsRepo.EXPECT().CountSuppliers(gomock.Any()).Return(int64(2), nil)
	s.mockStatsRepo.EXPECT().CountTransactions(gomock.Any()).Return(int64(5), nil)
	s.mockStatsRepo.EXPECT().CountBeneficiaries(gomock.Any()).Return(int64(3), nil)

	// Две связи: (950-900)*100 = 5000 и (950-1000)*50 = -2500. Отрицательная
	// прибыль входит в сумму как есть.
	rows := []repoargs.ProfitRow{
		{
			Rate:         decimal.RequireFromString("950"),
			DayRate:      decimal.RequireFromString("900"),
			USDTQuantity: decimal.RequireFromString("100"),
		},
		{
			Rate:         decimal.RequireFromString("950"),
			DayRate:      decimal.RequireFromString("1000"),
			USDTQuantity: decimal.RequireFromString("50"),
		},
	}
	s.mockTransactionRepo.EXPECT().AllProfitRows(gomock.Any()).Return(rows, nil)

	totals, err := s.statsService.Totals(context.Background())

	s.Require().NoError(err)
	s.Equal(int64(2), totals.Suppliers)
	s.Equal(int64(5), totals.Transactions)
	s.Equal(int64(3), totals.Beneficiaries)
	s.True(totals.TotalProfit.Equal(decimal.RequireFromString("2500")),
		"got %s", totals.TotalProfit)
}

func (s *StatsServiceTestSuite) TestTotalsEmpty() {
	s.mockStatsRepo.EXPECT().CountSuppliers(gomock.Any()).Return(int64(0), nil)
	s.mockStatsRepo.EXPECT().CountTransactions(gomock.Any()).Return(int64(0), nil)
	s.mockStatsRepo.EXPECT().CountBeneficiaries(gomock.Any()).Return(int64(0), nil)
	s.mockTransactionRepo.EXPECT().AllProfitRows(gomock.Any()).Return(nil, nil)

	totals, err := s.statsService.Totals(context.Background())

	s.Require().NoError(err)
	s.True(totals.TotalProfit.IsZero())
}
