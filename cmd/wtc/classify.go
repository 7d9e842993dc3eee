package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Veraticus/template-classifier/internal/cli"
	"github.com/Veraticus/template-classifier/internal/common"
	"github.com/Veraticus/template-classifier/internal/tui/components"
	"github.com/Veraticus/template-classifier/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	"github.com/spf13/cobra"
)

// cardWidth is the width of result cards printed by the non-interactive
// commands.
const cardWidth = 72

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [message]",
		Short: "Classify a message template",
		Long: `Classify a WhatsApp message template and print the result.

The message is read from the arguments, or from stdin when none are given.

Examples:
  wtc classify "Your order #123 has shipped"
  cat template.txt | wtc classify
  wtc classify --json "Use code 482913 to sign in"`,
		RunE: runClassify,
	}

	cmd.Flags().Bool("json", false, "Print the raw result as JSON")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	asJSON, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	message, err := cli.ReadMessage(ctx, args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	spinner := cli.StartSpinner(cmd.ErrOrStderr(), "Classifying message...")
	result, err := client.Classify(ctx, message)
	spinner.Stop()
	if err != nil {
		common.LogError(err, "Error classifying message", common.Fields{"length": len(message)})
		fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatError(common.ClassifyFailedMessage))
		return fmt.Errorf("classify failed: %w", err)
	}

	slog.Debug("Classified message", "category", result.Category)

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	card := components.NewResultModel(*result, message, themes.GetTheme(cfg.UI.Theme), key.Binding{}, false)
	card.Resize(cardWidth)
	_, err = fmt.Fprintln(out, card.View())
	return err
}
