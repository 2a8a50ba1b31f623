package main

import (
	"context"
	"sync"
	"time"

	"github.com/publibudget/go-commitment-engine/cmd/setup"
	"github.com/publibudget/go-commitment-engine/internal/common/graceful"
	"github.com/publibudget/go-commitment-engine/internal/common/log"
	"github.com/publibudget/go-commitment-engine/internal/deliveries/http"
)

func main() {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	s, stopperContract, err := setup.Init("api")
	if err != nil {
		timeout := 5 * time.Second
		if s != nil && s.Config.App.GracefulTimeout != 0 {
			timeout = s.Config.App.GracefulTimeout
		}

		graceful.StopProcess(timeout, stopperContract...)

		log.Fatalf(ctx, "failed to setup app: %v", err)
	}

	httpServer := http.NewHTTPServer(ctx, s.Config,
		s.Service.BudgetLine,
		s.Service.Document,
		s.Service.Reservation,
		s.Service.Engagement,
		s.Service.PurchaseOrder,
		s.Service.Invoice,
		s.Service.Expense,
		s.Service.Payment,
		s.Service.Rule,
	)

	starters = append(starters, httpServer.Start())
	stoppers = append(stoppers, httpServer.Stop())
	stoppers = append(stoppers, stopperContract...)

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go func() {
		graceful.StartProcessAtBackground(starters...)
		graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, stoppers...)
		wg.Done()
	}()
	wg.Wait()
	log.Info(ctx, "http server stopped!")
}
