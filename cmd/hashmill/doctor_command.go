package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"hashmill/internal/preflight"
	"hashmill/internal/textutil"
)

func newDoctorCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and environment health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			for _, line := range renderSectionHeader("Configuration", colorize) {
				fmt.Fprintln(out, line)
			}
			path, fromFile := cctx.configSource()
			detail := path
			if !fromFile {
				detail += " (not found; defaults in use)"
			}
			fmt.Fprintln(out, renderStatusLine("Config file", textutil.Ternary(fromFile, statusOK, statusInfo), detail, colorize))
			if !cfg.Catalog.Enabled {
				fmt.Fprintln(out, renderStatusLine("Catalog", statusInfo, "recording disabled", colorize))
			}

			fmt.Fprintln(out)
			for _, line := range renderSectionHeader("Checks", colorize) {
				fmt.Fprintln(out, line)
			}
			results := preflight.RunAll(cfg)
			for _, result := range results {
				kind := textutil.Ternary(result.Passed, statusOK, statusError)
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}

			if !preflight.Healthy(results) {
				return errors.New("one or more checks failed")
			}
			return nil
		},
	}
}
