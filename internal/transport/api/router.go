package api

import (
	"time"

	"github.com/fsdevblog/fxdesk/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup                  = "/api"
	TransactionsRoute           = "/transactions"
	RecentTransactionsRoute     = "/transactions/recent"
	TransactionAllocationsRoute = "/transactions/allocations"
	TransactionRoute            = "/transactions/:id"
	TransactionAllocationRoute  = "/transactions/:id/allocation"
	SuppliersRoute              = "/suppliers"
	SupplierRoute               = "/suppliers/:id"
	StatsTotalsRoute            = "/stats/totals"
	SessionRoute                = "/session"
)

type RouterArgs struct {
	Logger             *logrus.Logger
	SupplierService    SupplierServicer
	TransactionService TransactionServicer
	AllocationService  AllocationServicer
	StatsService       StatsServicer
	JWTSecretKey       []byte
}

func New(args RouterArgs) *gin.Engine {
	registerValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	transactionsHandler := NewTransactionsHandler(args.TransactionService, args.AllocationService)
	suppliersHandler := NewSuppliersHandler(args.SupplierService)
	statsHandler := NewStatsHandler(args.StatsService)
	sessionHandler := NewSessionHandler()

	api := r.Group(RouteGroup)

	api.POST(TransactionsRoute, transactionsHandler.Create)
	api.GET(TransactionsRoute, transactionsHandler.Index)
	api.GET(RecentTransactionsRoute, transactionsHandler.Recent)
	api.GET(TransactionAllocationsRoute, transactionsHandler.History)
	api.GET(TransactionRoute, transactionsHandler.Show)
	api.PUT(TransactionRoute, transactionsHandler.Update)
	api.DELETE(TransactionRoute, transactionsHandler.Delete)
	api.GET(TransactionAllocationRoute, transactionsHandler.Allocation)

	api.POST(SuppliersRoute, suppliersHandler.Create)
	api.GET(SuppliersRoute, suppliersHandler.Index)
	api.GET(SupplierRoute, suppliersHandler.Show)
	api.PUT(SupplierRoute, suppliersHandler.Update)
	api.DELETE(SupplierRoute, suppliersHandler.Delete)

	api.GET(StatsTotalsRoute, statsHandler.Totals)

	// Идентичность запроса приходит извне в виде JWT, своего выпуска токенов нет.
	api.GET(SessionRoute, middlewares.AuthRequired(args.JWTSecretKey), sessionHandler.Show)

	return r
}
