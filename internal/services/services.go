package services

import (
	"github.com/publibudget/go-commitment-engine/internal/common/idgenerator"
	"github.com/publibudget/go-commitment-engine/internal/common/metrics"
	"github.com/publibudget/go-commitment-engine/internal/common/publisher"
	"github.com/publibudget/go-commitment-engine/internal/common/retry"
	"github.com/publibudget/go-commitment-engine/internal/config"
	"github.com/publibudget/go-commitment-engine/internal/models"
	"github.com/publibudget/go-commitment-engine/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo repositories.SQLRepository

	balancePub publisher.Publisher
	postingPub publisher.Publisher

	idgenerator idgenerator.Generator
	clock       Clock
	retryer     retry.Retryer
	metrics     metrics.Metrics

	fieldTypes models.FieldTypeTable

	common service

	BudgetLine    *budgetLine
	Document      *document
	Reservation   *reservation
	Engagement    *engagement
	PurchaseOrder *purchaseOrder
	Invoice       *invoice
	Expense       *expense
	Payment       *payment
	Rule          *accountingRule
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	balancePub publisher.Publisher,
	postingPub publisher.Publisher,
	idgenerator idgenerator.Generator,
	clock Clock,
	retryer retry.Retryer,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:        conf,
		sqlRepo:     sqlRepo,
		balancePub:  balancePub,
		postingPub:  postingPub,
		idgenerator: idgenerator,
		clock:       clock,
		retryer:     retryer,
		metrics:     metrics,
		fieldTypes:  models.DefaultFieldTypeTable(),
	}
	srv.common.srv = srv
	srv.BudgetLine = (*budgetLine)(&srv.common)
	srv.Document = (*document)(&srv.common)
	srv.Reservation = (*reservation)(&srv.common)
	srv.Engagement = (*engagement)(&srv.common)
	srv.PurchaseOrder = (*purchaseOrder)(&srv.common)
	srv.Invoice = (*invoice)(&srv.common)
	srv.Expense = (*expense)(&srv.common)
	srv.Payment = (*payment)(&srv.common)
	srv.Rule = (*accountingRule)(&srv.common)

	return srv
}
