package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/publibudget/go-commitment-engine/internal/common/graceful"
	commonhttp "github.com/publibudget/go-commitment-engine/internal/common/http"
	"github.com/publibudget/go-commitment-engine/internal/common/log"
	"github.com/publibudget/go-commitment-engine/internal/config"
	"github.com/publibudget/go-commitment-engine/internal/deliveries/http/health"
	"github.com/publibudget/go-commitment-engine/internal/services"

	v1accountingrule "github.com/publibudget/go-commitment-engine/internal/deliveries/http/v1/accountingrule"
	v1budgetline "github.com/publibudget/go-commitment-engine/internal/deliveries/http/v1/budgetline"
	v1document "github.com/publibudget/go-commitment-engine/internal/deliveries/http/v1/document"
	v1engagement "github.com/publibudget/go-commitment-engine/internal/deliveries/http/v1/engagement"
	v1expense "github.com/publibudget/go-commitment-engine/internal/deliveries/http/v1/expense"
	v1invoice "github.com/publibudget/go-commitment-engine/internal/deliveries/http/v1/invoice"
	v1payment "github.com/publibudget/go-commitment-engine/internal/deliveries/http/v1/payment"
	v1purchaseorder "github.com/publibudget/go-commitment-engine/internal/deliveries/http/v1/purchaseorder"
	v1reservation "github.com/publibudget/go-commitment-engine/internal/deliveries/http/v1/reservation"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			log.Error(ctx, "[SHUTDOWN] HTTP server error", log.Err(err))
		} else {
			log.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	budgetLineService services.BudgetLineService,
	documentService services.DocumentService,
	reservationService services.ReservationService,
	engagementService services.EngagementService,
	purchaseOrderService services.PurchaseOrderService,
	invoiceService services.InvoiceService,
	expenseService services.ExpenseService,
	paymentService services.PaymentService,
	ruleService services.AccountingRuleService,
) *svc {
	app := echo.New()

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())

	// pprof
	// Endpoint debug/pprof/
	env := config.StringToEnvironment(conf.App.Env)
	if env != config.PROD_ENV {
		pprof.Register(app)
	}

	// prometheus metrics
	app.Use(echoprometheus.NewMiddleware(conf.App.Name))
	app.GET("/metrics", echoprometheus.NewHandler())

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup)

	// v1Group
	v1Group := apiGroup.Group("/v1")
	// v1Group register api
	v1budgetline.New(v1Group, budgetLineService)
	v1document.New(v1Group, documentService)
	v1reservation.New(v1Group, reservationService)
	v1engagement.New(v1Group, engagementService)
	v1purchaseorder.New(v1Group, purchaseOrderService)
	v1invoice.New(v1Group, invoiceService)
	v1expense.New(v1Group, expenseService)
	v1payment.New(v1Group, paymentService)
	v1accountingrule.New(v1Group, ruleService)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return svc
}
