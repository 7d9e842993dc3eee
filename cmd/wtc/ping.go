package main

import (
	"fmt"

	"github.com/Veraticus/template-classifier/internal/cli"
	"github.com/spf13/cobra"
)

func pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the classification service is reachable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client, err := newClient(cfg)
			if err != nil {
				return err
			}

			spinner := cli.StartSpinner(cmd.ErrOrStderr(), "Contacting service...")
			banner, err := client.Health(cmd.Context())
			spinner.Stop()
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatError("Service unreachable at "+client.BaseURL()))
				return fmt.Errorf("ping failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatInfo("Base URL: "+client.BaseURL()))
			fmt.Fprintln(out, cli.RenderBox("Service", banner))
			_, err = fmt.Fprintln(out, cli.FormatSuccess("Service is reachable"))
			return err
		},
	}
}
