package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/cheddup/internal/adapter"
	"github.com/MKhiriev/cheddup/internal/config"
	myHTTP "github.com/MKhiriev/cheddup/internal/handler/http"
	"github.com/MKhiriev/cheddup/internal/logger"
	"github.com/MKhiriev/cheddup/internal/server"
	"github.com/MKhiriev/cheddup/internal/service"
	"github.com/MKhiriev/cheddup/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("cheddup-web")
	cfg, err := config.GetWebConfig()
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	services, err := service.NewClientServices(backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	handler, err := myHTTP.NewHandler(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create http handler")
	}

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}
