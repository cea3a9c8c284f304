package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/docs-version-resolver/pkg/buildquery"
	"github.com/docs-version-resolver/pkg/pkgjson"
)

var defaultPackagePath = filepath.Join("src", "handsontable-pro", "package.json")

// newQueryCmd creates the `query` command.
// Usage: docversions query [--package path/to/package.json] [--pro-version 1.9.0|latest]
func newQueryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Print the documentation generator query string",
		Long: `Prints "latestVersion=<tag>&version=<version>" for the documentation generator.
By default version comes from package.json and latestVersion from the latest
release tag. --pro-version pins both to the given version ("latest" means master).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var params buildquery.Params

			if proVersion, _ := cmd.Flags().GetString("pro-version"); proVersion != "" {
				params = buildquery.ForProVersion(proVersion)
			} else {
				pkgPath, _ := cmd.Flags().GetString("package")
				manifest, err := pkgjson.Load(pkgPath)
				if err != nil {
					return fmt.Errorf("read package version: %w", err)
				}
				log.Debug().Str("package", manifest.Name).Str("version", manifest.Version).Msg("read package manifest")

				res, err := a.resolver()
				if err != nil {
					return err
				}

				ctx, cancel := commandContext(cmd)
				defer cancel()

				tag, err := res.LatestRelease(ctx, "")
				if err != nil {
					return err
				}
				if tag == nil {
					return errors.New("no release tag is a valid version")
				}
				params = buildquery.Params{Version: manifest.Version, LatestVersion: tag.Name}
			}

			q, err := buildquery.Encode(params)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), q)
			return nil
		},
	}

	cmd.Flags().String("package", defaultPackagePath, "package.json providing the documented version")
	cmd.Flags().String("pro-version", "", `Document this version instead ("latest" for master)`)
	return cmd
}

// newCompatibleCmd creates the `compatible` command.
// Usage: docversions compatible [--package path/to/package.json]
func newCompatibleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compatible",
		Short: "Print the Handsontable version the Pro package is built against",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pkgPath, _ := cmd.Flags().GetString("package")
			manifest, err := pkgjson.Load(pkgPath)
			if err != nil {
				return err
			}
			log.Debug().Str("package", manifest.Name).Str("compatible", manifest.CompatibleHotVersion).Msg("read package manifest")
			if manifest.CompatibleHotVersion == "" {
				return fmt.Errorf("%s does not declare compatibleHotVersion", pkgPath)
			}
			fmt.Fprintln(cmd.OutOrStdout(), manifest.CompatibleHotVersion)
			return nil
		},
	}

	cmd.Flags().String("package", defaultPackagePath, "Pro package.json")
	return cmd
}
