package main

import (
	"fmt"
	"log"
	"net/http"
	"runtime"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/mdouchement/topbrands/internal/discovery"
	"github.com/mdouchement/topbrands/internal/edge"
	"github.com/mdouchement/topbrands/internal/logger"
	"github.com/mdouchement/topbrands/internal/server"
	"github.com/mdouchement/topbrands/pkg/libcatalog"
	"github.com/muesli/coral"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const envprefix = "EDGESERVICE_"

var (
	version  = "dev"
	revision = "none"
	date     = "unknown"

	cfg string
)

func main() {
	c := &coral.Command{
		Use:     "edgeservice",
		Short:   "Top brands edge service in front of the item catalog",
		Version: fmt.Sprintf("%s - build %.7s @ %s - %s", version, revision, date, runtime.Version()),
		Args:    coral.ExactArgs(0),
	}
	serverCmd.Flags().StringVarP(&cfg, "config", "c", "", "Configuration file")
	c.AddCommand(serverCmd)

	if err := c.Execute(); err != nil {
		log.Fatalf("%+v", err)
	}
}

func load() (*koanf.Koanf, error) {
	konf := koanf.New(".")

	defaults := map[string]interface{}{
		"address":                       "localhost:8081",
		"services.item-catalog-service": "http://localhost:8080",
		"catalog.timeout":               "0s",
		"log.level":                     "info",
	}
	if err := konf.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, "could not load defaults")
	}

	if cfg != "" {
		if err := konf.Load(file.Provider(cfg), yaml.Parser()); err != nil {
			return nil, errors.Wrap(err, "could not load configuration file")
		}
	}

	err := konf.Load(env.Provider(envprefix, ".", envKey), nil)
	return konf, errors.Wrap(err, "could not load environment")
}

// envKey maps an environment variable to a configuration key.
// `__` separates levels and, under `services`, `_` stands for `-` so
// EDGESERVICE_SERVICES__ITEM_CATALOG_SERVICE sets services.item-catalog-service.
func envKey(s string) string {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envprefix)), "__", ".")
	if name := strings.TrimPrefix(key, "services."); name != key {
		key = "services." + strings.ReplaceAll(name, "_", "-")
	}
	return key
}

var serverCmd = &coral.Command{
	Use:   "server",
	Short: "Start server",
	Args:  coral.ExactArgs(0),
	RunE: func(_ *coral.Command, _ []string) error {
		konf, err := load()
		if err != nil {
			return err
		}

		logr, err := logger.New(logger.Config{
			Level:      konf.String("log.level"),
			File:       konf.String("log.file"),
			MaxSize:    konf.Int("log.max_size"),
			MaxBackups: konf.Int("log.max_backups"),
			MaxAge:     konf.Int("log.max_age"),
		})
		if err != nil {
			return err
		}

		registry := discovery.Static(konf.StringMap("services"))
		endpoint, err := registry.Resolve(discovery.CatalogService)
		if err != nil {
			return errors.Wrap(err, "could not resolve catalog")
		}
		logr.WithField("endpoint", endpoint).Infof("Resolved %s", discovery.CatalogService)

		client, err := libcatalog.NewClient(&http.Client{}, endpoint)
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics, err := edge.NewMetrics(reg)
		if err != nil {
			return errors.Wrap(err, "could not register metrics")
		}

		engine := edge.EchoEngine(edge.IOC{
			Version:  version,
			Adapter:  edge.NewAdapter(client, logr, metrics, konf.Duration("catalog.timeout")),
			Gatherer: reg,
			Logger:   logr,
		})
		server.PrintRoutes(engine)

		address := konf.String("address")
		logr.Infof("Server listening on %s", address)
		return errors.Wrap(engine.Start(address), "could not run server")
	},
}
