package service

import (
	"context"
	"testing"
	"time"

	"github.com/fsdevblog/fxdesk/internal/repository/repoargs"
	"github.com/fsdevblog/fxdesk/internal/service/mocks"

	"github.com/fsdevblog/fxdesk/pkg/uow"
	uowmocks "github.com/fsdevblog/fxdesk/pkg/uow/mocks"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/fxdesk/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockUOW             *uowmocks.MockUOW
	mockTX              *uowmocks.MockTX
	mockTransactionRepo *mocks.MockTransactionRepository
	mockSupplierRepo    *mocks.MockSupplierRepository
	transactionService  *TransactionService
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockTransactionRepo = mocks.NewMockTransactionRepository(s.mockCtrl)
	s.mockSupplierRepo = mocks.NewMockSupplierRepository(s.mockCtrl)

	// Мок получения репозиториев из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.SupplierRepoName)).
		Return(s.mockSupplierRepo, nil).AnyTimes()

	transactionService, servErr := NewTransactionService(s.mockUOW)
	s.Require().NoError(servErr)
	s.transactionService = transactionService
}

func (s *TransactionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *TransactionServiceTestSuite) expectUOWDo() {
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).MinTimes(1)
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).MinTimes(1)
}

func (s *TransactionServiceTestSuite) TestCreate() {
	args := CreateTransactionArgs{
		AmountFCFA: decimal.RequireFromString("150000"),
		Rate:       decimal.RequireFromString("950"),
		// дубль id схлопывается до одной связи.
		SupplierIDs: []int64{1, 2, 2},
	}

	created := domain.Transaction{
		ID:         5,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
		AmountFCFA: decimal.RequireFromString("150000"),
		Rate:       decimal.RequireFromString("950"),
		AmountUSDT: decimal.RequireFromString("157.895"),
	}

	s.mockSupplierRepo.EXPECT().
		ExistingIDs(gomock.Any(), []int64{1, 2}).
		Return([]int64{1, 2}, nil)

	s.expectUOWDo()

	s.mockTransactionRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, createArgs repoargs.TransactionCreate) (*domain.Transaction, error) {
			// объем USDT выводится из суммы и курса, со стороны вызова не принимается.
			s.True(createArgs.AmountUSDT.Equal(decimal.RequireFromString("157.895")),
				"got %s", createArgs.AmountUSDT)
			return &created, nil
		})

	s.mockTransactionRepo.EXPECT().
		Link(gomock.Any(), int64(5), []int64{1, 2}).
		Return(nil)

	transaction, err := s.transactionService.Create(context.Background(), args)

	s.Require().NoError(err)
	s.Equal(int64(5), transaction.ID)
}

func (s *TransactionServiceTestSuite) TestCreateValidation() {
	cases := []struct {
		name string
		args CreateTransactionArgs
	}{
		{
			name: "zero amount",
			args: CreateTransactionArgs{
				AmountFCFA:  decimal.Zero,
				Rate:        decimal.RequireFromString("950"),
				SupplierIDs: []int64{1},
			},
		},
		{
			name: "negative rate",
			args: CreateTransactionArgs{
				AmountFCFA:  decimal.RequireFromString("1000"),
				Rate:        decimal.RequireFromString("-950"),
				SupplierIDs: []int64{1},
			},
		},
		{
			name: "no suppliers",
			args: CreateTransactionArgs{
				AmountFCFA: decimal.RequireFromString("1000"),
				Rate:       decimal.RequireFromString("950"),
			},
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			transaction, err := s.transactionService.Create(s.T().Context(), t.args)

			s.Require().Error(err)
			var vErr *domain.ValidationError
			s.Require().ErrorAs(err, &vErr)
			s.Nil(transaction)
		})
	}
}

func (s *TransactionServiceTestSuite) TestCreateUnknownSupplier() {
	args := CreateTransactionArgs{
		AmountFCFA:  decimal.RequireFromString("1000"),
		Rate:        decimal.RequireFromString("950"),
		SupplierIDs: []int64{1, 99},
	}

	// Запись не начинается: проверка существования id идет до транзакции БД,
	// поэтому uow.Do не ожидается.
	s.mockSupplierRepo.EXPECT().
		ExistingIDs(gomock.Any(), []int64{1, 99}).
		Return([]int64{1}, nil)

	transaction, err := s.transactionService.Create(context.Background(), args)

	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
	s.Require().ErrorContains(err, "99")
	s.Nil(transaction)
}

func (s *TransactionServiceTestSuite) TestUpdate() {
	args := UpdateTransactionArgs{
		AmountFCFA: decimal.RequireFromString("200000"),
		Rate:       decimal.RequireFromString("800"),
	}

	updated := domain.Transaction{
		ID:         5,
		AmountFCFA: decimal.RequireFromString("200000"),
		Rate:       decimal.RequireFromString("800"),
		AmountUSDT: decimal.RequireFromString("250"),
	}

	s.mockTransactionRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updArgs repoargs.TransactionUpdate) (*domain.Transaction, error) {
			s.Equal(int64(5), updArgs.ID)
			// объем USDT пересчитан по новым сумме и курсу.
			s.True(updArgs.AmountUSDT.Equal(decimal.RequireFromString("250")),
				"got %s", updArgs.AmountUSDT)
			return &updated, nil
		})

	transaction, err := s.transactionService.Update(context.Background(), 5, args)

	s.Require().NoError(err)
	s.True(transaction.AmountUSDT.Equal(decimal.RequireFromString("250")))
}

func (s *TransactionServiceTestSuite) TestDelete() {
	s.expectUOWDo()

	// Сначала связи, потом сама транзакция.
	gomock.InOrder(
		s.mockTransactionRepo.EXPECT().
			UnlinkByTransaction(gomock.Any(), int64(5)).
			Return(nil),
		s.mockTransactionRepo.EXPECT().
			Delete(gomock.Any(), int64(5)).
			Return(nil),
	)

	s.Require().NoError(s.transactionService.Delete(context.Background(), 5))
}

func (s *TransactionServiceTestSuite) TestDeleteNotFound() {
	s.expectUOWDo()

	s.mockTransactionRepo.EXPECT().
		UnlinkByTransaction(gomock.Any(), int64(404)).
		Return(nil)
	s.mockTransactionRepo.EXPECT().
		Delete(gomock.Any(), int64(404)).
		Return(domain.ErrRecordNotFound)

	s.Require().ErrorIs(s.transactionService.Delete(context.Background(), 404), domain.ErrRecordNotFound)
}

func (s *TransactionServiceTestSuite) TestListByPeriod() {
	transactions := []domain.Transaction{{ID: 1}, {ID: 2}}

	s.mockTransactionRepo.EXPECT().
		GetSince(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, since time.Time) ([]domain.Transaction, error) {
			// нижняя граница недели: полночь семью днями ранее.
			want := time.Now().AddDate(0, 0, -7)
			want = time.Date(want.Year(), want.Month(), want.Day(), 0, 0, 0, 0, want.Location())
			s.True(want.Equal(since))
			return transactions, nil
		})

	result, err := s.transactionService.ListByPeriod(context.Background(), domain.PeriodWeek)

	s.Require().NoError(err)
	s.Len(result, 2)
}

func (s *TransactionServiceTestSuite) TestRecent() {
	// Репозиторий отдает от новых к старым.
	fromRepo := []domain.Transaction{{ID: 3}, {ID: 2}, {ID: 1}}
	names := map[int64][]string{
		1: {"Kofi"},
		2: {"Kofi", "Ama"},
	}

	s.mockTransactionRepo.EXPECT().
		GetRecent(gomock.Any(), RecentLimit).
		Return(fromRepo, nil)
	s.mockTransactionRepo.EXPECT().
		GetLinkedSupplierNames(gomock.Any(), []int64{1, 2, 3}).
		Return(names, nil)

	recent, err := s.transactionService.Recent(context.Background(), RecentLimit)

	s.Require().NoError(err)
	s.Require().Len(recent, 3)
	// Витрина в хронологическом порядке.
	s.Equal(int64(1), recent[0].Transaction.ID)
	s.Equal(int64(3), recent[2].Transaction.ID)
	s.Equal("Kofi", recent[0].SupplierNames)
	s.Equal("Kofi, Ama", recent[1].SupplierNames)
	s.Equal("", recent[2].SupplierNames)
}
