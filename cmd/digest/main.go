// Comando digest: lê as coleções de uma API imobi rodando e imprime as
// pendências de hoje de um tenant.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xavierca1/imobi/internal/config"
	"github.com/xavierca1/imobi/internal/dashboard"
	"github.com/xavierca1/imobi/internal/entity"
	"github.com/xavierca1/imobi/internal/infra/integration/imobi"
)

func main() {
	tenantID := flag.String("tenant", os.Getenv("IMOBI_TENANT_ID"), "tenant a consultar")
	timeout := flag.Duration("timeout", 30*time.Second, "tempo máximo da consulta")
	flag.Parse()

	// DATABASE_URL não é usada aqui.
	cfg, _ := config.Load()

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("❌ erro ao criar logger: %v", err)
	}
	defer logger.Sync()

	if *tenantID == "" {
		logger.Fatal("❌ informe o tenant com -tenant ou IMOBI_TENANT_ID")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	client, err := imobi.NewClient(cfg.APIURL, cfg.SessionCookie, logger)
	if err != nil {
		logger.Fatal("❌ erro ao criar cliente", zap.Error(err))
	}

	fetcher := imobi.NewFollowUpFetcher(client, *tenantID, logger)
	fetcher.Start(ctx)
	defer fetcher.Stop()

	var snapshot dashboard.Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snapshot.Leads, err = client.ListLeads(gctx, *tenantID)
		return err
	})
	g.Go(func() (err error) {
		snapshot.Visits, err = client.ListVisits(gctx, *tenantID)
		return err
	})
	g.Go(func() (err error) {
		snapshot.Contracts, err = client.ListContracts(gctx, *tenantID)
		return err
	})
	g.Go(func() (err error) {
		snapshot.Properties, err = client.ListProperties(gctx, *tenantID)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Fatal("❌ erro ao carregar coleções", zap.Error(err))
	}

	fetcher.Wait()
	state := fetcher.State()
	snapshot.FollowUps = state.Items

	view := dashboard.Build(snapshot, time.Now())
	if state.Err != nil {
		view.FollowUpsError = state.Err.Error()
	}

	printPendencies(os.Stdout, view)
}

func printPendencies(w io.Writer, view dashboard.View) {
	p := view.Pendencies

	fmt.Fprintf(w, "Pendências de %s\n", view.GeneratedAt.Format("02/01/2006 15:04"))
	fmt.Fprintf(w, "Total urgente: %d\n\n", p.TotalUrgent)

	if view.FollowUpsError != "" {
		fmt.Fprintf(w, "⚠️  %s\n\n", view.FollowUpsError)
	}

	fmt.Fprintf(w, "Lembretes atrasados (%d)\n", len(p.OverdueFollowUps))
	for _, f := range p.OverdueFollowUps {
		fmt.Fprintf(w, "  - %s  %s  %s\n", f.DueAt.Format("02/01 15:04"), f.Type, leadName(f.Lead))
	}

	fmt.Fprintf(w, "Lembretes de hoje (%d)\n", len(p.TodayFollowUps))
	for _, f := range p.TodayFollowUps {
		fmt.Fprintf(w, "  - %s  %s  %s\n", f.DueAt.Format("15:04"), f.Type, leadName(f.Lead))
	}

	fmt.Fprintf(w, "Visitas de hoje (%d)\n", len(p.TodayVisitsList))
	for _, v := range p.TodayVisitsList {
		title := "imóvel removido"
		if v.Property != nil {
			title = v.Property.Title
		}
		fmt.Fprintf(w, "  - %s  %s  %s\n", v.ScheduledFor.Format("15:04"), title, leadName(v.Lead))
	}

	fmt.Fprintf(w, "Leads sem contato (%d)\n", len(p.LeadsWithoutContact))
	for _, l := range p.LeadsWithoutContact {
		fmt.Fprintf(w, "  - %s (%s)\n", l.Name, l.Status)
	}
}

func leadName(l *entity.Lead) string {
	if l == nil {
		return "lead removido"
	}
	return l.Name
}
