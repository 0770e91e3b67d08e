package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/natevvv/ski-routing/internal/config"
	"github.com/natevvv/ski-routing/pkg/repository"
	server "github.com/natevvv/ski-routing/pkg/server/openapi_server"
)

func main() {
	configFile := flag.String("config", "", "YAML configuration file")
	port := flag.Int("port", 0, "Port of the http server (overrides the configuration)")
	dataDirectory := flag.String("data", "", "Directory of the trail data (overrides the configuration)")
	debugLevel := flag.Int("debug", -1, "Debug level of the request logging (overrides the configuration)")
	refresh := flag.Bool("refresh", false, "Fetch the remote data files before starting")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			log.Fatal(err)
		}
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *dataDirectory != "" {
		cfg.Data.Directory = *dataDirectory
	}
	if *debugLevel >= 0 {
		cfg.Server.DebugLevel = *debugLevel
	}
	if *refresh {
		cfg.Data.RefreshOnStart = true
	}

	maxRating, err := cfg.MaxRating()
	if err != nil {
		log.Fatal(err)
	}

	load := func(ctx context.Context, fetch bool) (*repository.Data, error) {
		if fetch {
			fetchCtx, cancel := context.WithTimeout(ctx, cfg.Data.FetchTimeout)
			defer cancel()
			repository.Refresh(fetchCtx, &http.Client{}, cfg.Data.Directory, cfg.Files(), cfg.URLs())
		}
		return repository.Load(cfg.Data.Directory, cfg.Files())
	}

	start := time.Now()
	data, err := load(context.Background(), cfg.Data.RefreshOnStart)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("[TIME-Import] = %s\n", time.Since(start))
	log.Printf("Loaded %v nodes, %v trails, %v closed trails\n", len(data.Coordinates), len(data.Records), len(data.Closed))

	var loader server.Loader
	if cfg.Server.EnableReload {
		loader = func(ctx context.Context) (*repository.Data, error) { return load(ctx, true) }
	}

	server.SetDebugLevel(cfg.Server.DebugLevel)
	service := server.NewDefaultApiService(data, server.RouteDefaults{MaxRating: maxRating, ExcludeClosed: cfg.Routing.ExcludeClosed, Verify: cfg.Routing.Verify}, loader)
	service.SetDebugLevel(cfg.Routing.DebugLevel)
	controller := server.NewDefaultApiController(service, server.WithDefaultApiAllowedOrigin(cfg.Server.CorsOrigin))
	router := server.NewRouter(controller, server.NewMetricsController())

	address := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Starting server on %s\n", address)
	log.Fatal(http.ListenAndServe(address, router))
}
