package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/template-classifier/internal/common"
	"github.com/Veraticus/template-classifier/internal/tui"
	"github.com/Veraticus/template-classifier/internal/tui/themes"
	"github.com/spf13/cobra"
)

func uiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive terminal UI",
		Long: `Open the interactive classifier. Paste or type a template, press ctrl+s to
classify it, then r to rewrite it as Utility.

Logs are written to logging.file while the UI is open.`,
		RunE: runUI,
	}
}

func runUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level, err := common.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	restore, err := common.RedirectToFile(cfg.Logging.File, level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("failed to redirect logs: %w", err)
	}
	defer restore()

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	slog.Info("Starting terminal UI", "base_url", client.BaseURL(), "rewrite", cfg.Features.Rewrite)

	return tui.Run(cmd.Context(),
		tui.WithClassifier(client),
		tui.WithTheme(themes.GetTheme(cfg.UI.Theme)),
		tui.WithRewrite(cfg.Features.Rewrite),
		tui.WithBaseURL(client.BaseURL()),
		tui.WithAltScreen(cfg.UI.AltScreen),
	)
}
