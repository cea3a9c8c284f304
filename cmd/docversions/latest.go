package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// newLatestCmd creates the `latest` command.
// Usage: docversions latest [--range "<2.0.0"]
func newLatestCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "latest",
		Short: "Print the latest release tag",
		Long: `Prints the highest release tag by semantic version. With --range, only tags
satisfying the range are considered; nothing is printed when none do.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rangeExpr, _ := cmd.Flags().GetString("range")

			res, err := a.resolver()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			tag, err := res.LatestRelease(ctx, rangeExpr)
			if err != nil {
				return err
			}
			if tag == nil {
				log.Info().Str("range", rangeExpr).Msg("no release satisfies the range")
				return nil
			}

			log.Debug().Str("tag", tag.Name).Str("commit", tag.Commit).Msg("latest release")
			fmt.Fprintln(cmd.OutOrStdout(), tag.Name)
			return nil
		},
	}

	cmd.Flags().String("range", "", `Semver range the release must satisfy, e.g. "<2.0.0"`)
	return cmd
}
