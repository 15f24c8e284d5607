package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	config "github.com/anjiri1684/gradebook/configs"
	"github.com/anjiri1684/gradebook/database"
	"github.com/anjiri1684/gradebook/handlers"
	"github.com/anjiri1684/gradebook/jobs"
	"github.com/anjiri1684/gradebook/metrics"
	"github.com/anjiri1684/gradebook/routes"
	"github.com/anjiri1684/gradebook/services"
	"github.com/anjiri1684/gradebook/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg := config.Load()

	store := database.New()
	log.Println("✅ In-memory gradebook ready")

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg, store)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := websocket.NewHub(cfg.FeedBuffer)
	go hub.Run(ctx)

	c := cron.New()
	if cfg.DigestSchedule != "" {
		if _, err := c.AddFunc(cfg.DigestSchedule, jobs.StatsDigest(services.NewStatsService(store), m)); err != nil {
			log.Fatalf("🔥 Invalid DIGEST_SCHEDULE %q: %v", cfg.DigestSchedule, err)
		}
		c.Start()
		log.Println("✅ Cron job for stats digest scheduled successfully.")
	}

	app := routes.NewApp(cfg, handlers.New(store, hub, m), reg)

	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		<-c.Stop().Done()
		if err := app.Shutdown(); err != nil {
			log.Printf("🔥 Shutdown error: %v", err)
		}
	}()

	log.Printf("✅ Server is running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
