package cmd

import (
	"fmt"
	"log/slog"

	"github.com/llamacodes/postdata/internal/app"
	"github.com/llamacodes/postdata/internal/config"
	"github.com/spf13/cobra"
)

// BuildCmd is the root command. Run without arguments it builds the metadata
// index, feed, sitemap and short links from the content directory.
func BuildCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:          "postdata",
		Short:        "Generate metadata.json, rss.xml, sitemap.xml and short links from site content",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(cfg)
			if err != nil {
				return err
			}

			if _, err := a.BuildService.Build(cmd.Context()); err != nil {
				slog.Error("build failed", "error", err)
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "success")
			return nil
		},
	}
}
