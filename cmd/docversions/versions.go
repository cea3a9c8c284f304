package main

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/docs-version-resolver/pkg/reporter"
)

// newVersionsCmd creates the `versions` command.
// Usage: docversions versions [--output script|json|table] [--write [--dir generated]]
func newVersionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "versions",
		Short: "List published documentation versions, newest first",
		Long: `Lists the documentation branches named like a version, newest first.
With --write the version selector script is written to <dir>/scripts/doc-versions.js
instead of being printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.resolver()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			docVersions, err := res.DocVersions(ctx)
			if err != nil {
				return err
			}
			log.Info().Msgf("The following versions found: %s", strings.Join(docVersions, ", "))

			if write, _ := cmd.Flags().GetBool("write"); write {
				path, err := reporter.WriteScript(a.cfg.Output.Dir, docVersions)
				if err != nil {
					return err
				}
				log.Info().Str("path", path).Int("count", len(docVersions)).Msg("wrote version script")
				return nil
			}

			return reporter.New(a.cfg.Output.Format).Report(cmd.OutOrStdout(), docVersions)
		},
	}

	cmd.Flags().String("output", "", "Output format: script | json | table (default from config, script)")
	cmd.Flags().Bool("write", false, "Write the version script into the generated site")
	cmd.Flags().String("dir", "", "Generated site directory (default from config, generated)")
	return cmd
}
