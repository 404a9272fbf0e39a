package cmd

import (
	"fmt"
	"log/slog"

	"github.com/llamacodes/postdata/internal/app"
	"github.com/llamacodes/postdata/internal/config"
	"github.com/spf13/cobra"
)

func PublishCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:          "publish",
		Short:        "Build, then upload the generated files to the configured S3 bucket",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(cfg)
			if err != nil {
				return err
			}

			publisher, err := a.Publisher(cmd.Context())
			if err != nil {
				return err
			}

			result, err := publisher.Publish(cmd.Context())
			if err != nil {
				slog.Error("publish failed", "error", err)
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "success (%d files published)\n", len(result.Artifacts))
			return nil
		},
	}
}
