package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"projecttracker/pkg/config"
	"projecttracker/pkg/store"
	"projecttracker/pkg/tracker"

	log "github.com/sirupsen/logrus"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose logging")
	configFile := flag.String("config", "config.toml", "Path to the config file")
	initConfig := flag.Bool("init", false, "Write a default config file and exit")
	stats := flag.Bool("stats", false, "Print summary statistics")
	month := flag.Int("month", 0, "Month to list projects for (1-12, requires -year)")
	year := flag.Int("year", 0, "Year to list projects for")

	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	if *initConfig {
		cfg := &config.Config{
			ListenAddress: ":8080",
			Backend:       config.BackendWorkbook,
			WorkbookPath:  "tracker.xlsx",
			SheetName:     "Project Tracker",
		}
		if err := cfg.Save(*configFile); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		log.Infof("Wrote default config to %s", *configFile)
		return
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	st, err := store.FromConfig(cfg, tracker.DefaultHeaderRow)
	if err != nil {
		log.Fatalf("Failed to set up the backing store: %v", err)
	}

	switch {
	case *stats:
		s, err := tracker.SummaryStats(st)
		if err != nil {
			log.Fatalf("Failed to read statistics: %v", err)
		}
		printJSON(s)
	case *month != 0:
		if *year == 0 {
			log.Error("You must specify -year together with -month")
			flag.Usage()
			os.Exit(1)
		}
		records, err := tracker.ProjectsByMonth(st, *month, *year)
		if err != nil {
			log.Fatalf("Failed to list projects: %v", err)
		}
		printJSON(records)
	default:
		log.Error("Specify -stats or -month with -year")
		flag.Usage()
		os.Exit(1)
	}
}

func printJSON(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
	fmt.Println(string(b))
}
