package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"wallgrab/pkg/cli"
	"wallgrab/pkg/config"
	"wallgrab/pkg/logger"
	"wallgrab/pkg/pacer"
	"wallgrab/pkg/runner"
	"wallgrab/pkg/scraper"
	"wallgrab/pkg/storage"
	"wallgrab/pkg/ui"
)

func runScrape(cmd *cobra.Command, args []string) error {
	opts, err := cli.Resolve(args)
	if err != nil {
		return err
	}
	if opts.Help {
		return cmd.Help()
	}

	cfg, err := config.Load(opts.ConfigPath, opts.ConfigFlags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.InitializeWithWriter(&cfg.Logging, cmd.ErrOrStderr()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.GetLogger()
	log.WithFields(map[string]interface{}{
		"version": versionString(),
		"range":   opts.Range.String(),
		"site":    cfg.BaseURL(),
	}).Info("wallgrab starting")

	store, err := storage.NewManager(cfg.Output.Directory)
	if err != nil {
		return fmt.Errorf("failed to prepare output directory: %w", err)
	}

	console := ui.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr())

	s, err := scraper.New(cfg, store, console)
	if err != nil {
		return fmt.Errorf("failed to initialize scraper: %w", err)
	}

	r := runner.New(s, pacer.NewFixed(cfg.Crawl.PageDelay), console, store.GetOutputDir(), log)
	result, err := r.Run(cmd.Context(), opts.Range)
	if err != nil {
		return err
	}

	log.WithFields(map[string]interface{}{
		"total":      result.Total,
		"downloaded": result.Downloaded,
		"saved":      store.SavedCount(),
	}).Info("wallgrab finished")

	return nil
}
