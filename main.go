package main

import (
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"projecttracker/pkg/api"
	"projecttracker/pkg/config"
	"projecttracker/pkg/store"
	"projecttracker/pkg/tracker"

	log "github.com/sirupsen/logrus"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose logging")
	configFile := flag.String("config", "config.toml", "Path to the config file")
	demo := flag.Bool("demo", false, "Serve sample data from an in-memory sheet")

	flag.Parse()
	if *verbose {
		// Set the log level to debug
		log.SetLevel(log.DebugLevel)
	}
	// Set the log format to include a leading timestamp in ISO8601 format
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	st, err := buildStore(cfg, *demo)
	if err != nil {
		log.Fatalf("Failed to set up the backing store: %v", err)
	}

	router := api.GetRouter(st)
	if router != nil {
		go startServer(router, cfg.ListenAddress)
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

mainloop:
	// In all cases, just exit and let the container restart from scratch.
	// There's less to get wrong doing it this way.
	for {
		select {
		case <-signalChan:
			log.Info("Signalled, breaking main loop")
			break mainloop
		}
	}
}

func buildStore(cfg *config.Config, demo bool) (store.RowStore, error) {
	if demo {
		log.Info("Using in-memory demo data")
		return demoStore(cfg.SheetName), nil
	}
	return store.FromConfig(cfg, tracker.DefaultHeaderRow)
}

func demoStore(sheetName string) store.RowStore {
	return store.NewMemory(sheetName, tracker.DefaultHeaderRow,
		[]interface{}{"Platform migration", "Infrastructure", "Active", "Dana Suzuki", "Robin Hale", "Large", "No", "1/15/2024", "6/30/2024", ""},
		[]interface{}{"Quarterly metrics review", "Reporting", "At Risk", "Sam Porter", "Robin Hale", "Small", "Yes", "2/1/2024", "2/28/2024", "Blocked on data export"},
		[]interface{}{"Onboarding refresh", "Enablement", "Complete", "Dana Suzuki", "Lee Moran", "Medium", "No", "1/2/2024", "1/31/2024", ""},
	)
}

func startServer(router http.Handler, listenAddress string) {
	server := http.Server{
		Addr:              listenAddress,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
	}
	log.Infof("listening for HTTP on: %s", server.Addr)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal("ListenAndServeError", err)
	}
}
