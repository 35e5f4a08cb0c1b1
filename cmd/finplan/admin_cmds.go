package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/businessthis/finplan/internal/api"
	"github.com/businessthis/finplan/internal/cache"
	"github.com/businessthis/finplan/internal/config"
	"github.com/businessthis/finplan/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func newRulesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the active planning rules as YAML",
		Long:  "Prints the active planning rules. Edit the output and pass it back with --rules to change tax brackets, caps or return assumptions.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.outFile != "" {
				if err := config.NewRulesParser().SaveToFile(a.rules, a.outFile); err != nil {
					return err
				}
				fmt.Fprintf(a.errOut, "Rules written to %s\n", a.outFile)
				return nil
			}
			data, err := yaml.Marshal(a.rules)
			if err != nil {
				return fmt.Errorf("failed to marshal rules: %w", err)
			}
			_, err = a.out.Write(data)
			return err
		},
	}
}

func newExampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print an example plan file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(config.NewInputParser().CreateExamplePlanInput())
			if err != nil {
				return fmt.Errorf("failed to marshal example plan: %w", err)
			}
			_, err = a.out.Write(data)
			return err
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planning engine over HTTP",
		Long:  "Serves the JSON API. Settings come from the environment (FINPLAN_ADDR, LOG_LEVEL, FINPLAN_RULES, FINPLAN_CACHE_SIZE, FINPLAN_CACHE_TTL) and an optional .env file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}
			if addr != "" {
				settings.Addr = addr
			}

			logger := logging.New(a.errOut, settings.LogLevel, logging.FormatJSON)
			a.engine.SetLogger(logging.ForEngine(logger))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			responses := cache.NewLRUCache[[]byte](settings.CacheSize, settings.CacheTTL)
			handler := api.NewHandler(a.engine, responses, logger)
			handler.StartJanitor(ctx, settings.CacheTTL)

			logger.WithFields(logrus.Fields{
				"rules_version": a.rules.Version,
				"rules_file":    settings.RulesFile,
				"cache_size":    settings.CacheSize,
				"cache_ttl":     settings.CacheTTL.String(),
			}).Info("Planning engine loaded")

			srv := api.NewServer(settings.Addr, api.NewRouter(handler, logger), settings.ReadTimeout, settings.WriteTimeout)
			return api.Run(ctx, srv, logger, shutdownTimeout)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides FINPLAN_ADDR)")
	return cmd
}
