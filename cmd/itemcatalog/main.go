package main

import (
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/mdouchement/topbrands/internal/catalog"
	"github.com/mdouchement/topbrands/internal/database"
	"github.com/mdouchement/topbrands/internal/logger"
	"github.com/mdouchement/topbrands/internal/server"
	"github.com/muesli/coral"
	"github.com/pkg/errors"
)

const (
	dbname    = "itemcatalog.db"
	envprefix = "ITEMCATALOG_"
)

var (
	version  = "dev"
	revision = "none"
	date     = "unknown"

	cfg string
)

func main() {
	c := &coral.Command{
		Use:     "itemcatalog",
		Short:   "Item catalog service",
		Version: fmt.Sprintf("%s - build %.7s @ %s - %s", version, revision, date, runtime.Version()),
		Args:    coral.ExactArgs(0),
	}
	initCmd.Flags().StringVarP(&cfg, "config", "c", "", "Configuration file")
	c.AddCommand(initCmd)

	reindexCmd.Flags().StringVarP(&cfg, "config", "c", "", "Configuration file")
	c.AddCommand(reindexCmd)

	serverCmd.Flags().StringVarP(&cfg, "config", "c", "", "Configuration file")
	c.AddCommand(serverCmd)

	if err := c.Execute(); err != nil {
		log.Fatalf("%+v", err)
	}
}

func load() (*koanf.Koanf, error) {
	konf := koanf.New(".")

	defaults := map[string]interface{}{
		"address":       "localhost:8080",
		"database_path": "",
		"seed":          true,
		"log.level":     "info",
	}
	if err := konf.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, "could not load defaults")
	}

	if cfg != "" {
		if err := konf.Load(file.Provider(cfg), yaml.Parser()); err != nil {
			return nil, errors.Wrap(err, "could not load configuration file")
		}
	}

	err := konf.Load(env.Provider(envprefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envprefix)), "__", ".")
	}), nil)
	return konf, errors.Wrap(err, "could not load environment")
}

func dbnameWithPath(path string) string {
	if len(path) == 0 {
		return dbname
	}
	return filepath.Join(path, dbname)
}

var (
	initCmd = &coral.Command{
		Use:   "init",
		Short: "Init the database",
		Args:  coral.ExactArgs(0),
		RunE: func(_ *coral.Command, _ []string) error {
			konf, err := load()
			if err != nil {
				return err
			}

			return database.StormInit(dbnameWithPath(konf.String("database_path")))
		},
	}

	//
	reindexCmd = &coral.Command{
		Use:   "reindex",
		Short: "Reindex the database",
		Args:  coral.ExactArgs(0),
		RunE: func(_ *coral.Command, _ []string) error {
			konf, err := load()
			if err != nil {
				return err
			}

			return database.StormReIndex(dbnameWithPath(konf.String("database_path")))
		},
	}

	//
	//
	serverCmd = &coral.Command{
		Use:   "server",
		Short: "Seed the catalog and start server",
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

			db, err := database.StormOpen(dbnameWithPath(konf.String("database_path")))
			if err != nil {
				return errors.Wrap(err, "could not open database")
			}
			defer db.Close()

			// Brands are inserted again on every start, even when the database already holds them.
			if konf.Bool("seed") {
				if _, err = catalog.Seed(db, logr); err != nil {
					return errors.Wrap(err, "could not seed database")
				}
			}

			engine := server.EchoEngine(server.IOC{
				Version:  version,
				Database: db,
				Logger:   logr,
			})
			server.PrintRoutes(engine)

			address := konf.String("address")
			message := "could not run server"
			logr.Infof("Server listening on %s", address)
			parts := strings.Split(address, ":")
			if len(parts) == 2 && parts[0] == "unix" {
				socketFile := parts[1]
				if _, err := os.Stat(socketFile); err == nil {
					logr.Infof("Removing existing %s", socketFile)
					os.Remove(socketFile)
				}
				defer os.Remove(socketFile)
				listener, err := net.Listen(parts[0], socketFile)
				if err != nil {
					return err
				}
				return errors.Wrap(engine.Server.Serve(listener), message)
			}
			return errors.Wrap(engine.Start(address), message)
		},
	}
)
