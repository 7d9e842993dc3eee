package main

import (
	"errors"
	"fmt"

	"github.com/Veraticus/template-classifier/internal/cli"
	"github.com/Veraticus/template-classifier/internal/common"
	"github.com/Veraticus/template-classifier/internal/tui/components"
	"github.com/Veraticus/template-classifier/internal/tui/themes"
	"github.com/spf13/cobra"
)

var errRewriteDisabled = errors.New("rewrite is disabled (features.rewrite=false)")

func rewriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rewrite [message]",
		Short: "Rewrite a message template as Utility",
		Long: `Ask the service to rewrite a template so it classifies as Utility, and
print the original next to the rewrite.

The message is read from the arguments, or from stdin when none are given.`,
		RunE: runRewrite,
	}
}

func runRewrite(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.Features.Rewrite {
		return errRewriteDisabled
	}

	message, err := cli.ReadMessage(ctx, args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	spinner := cli.StartSpinner(cmd.ErrOrStderr(), "Rewriting message...")
	result, err := client.RewriteAsUtility(ctx, message)
	spinner.Stop()
	if err != nil {
		common.LogError(err, "Error rewriting message", common.Fields{"length": len(message)})
		fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatError(common.RewriteFailedMessage))
		return fmt.Errorf("rewrite failed: %w", err)
	}

	card := components.NewRewriteModel(message, result.Rewritten, themes.GetTheme(cfg.UI.Theme))
	card.Resize(cardWidth)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), card.View())
	return err
}
