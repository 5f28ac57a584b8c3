package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag)
	opts := &runOptions{}

	rootCmd := &cobra.Command{
		Use:           "hashmill [flags] <path>...",
		Short:         "Parallel file fingerprinting",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Usage()
				return errors.New("no input paths provided")
			}
			return runFingerprint(cmd, ctx, opts, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override log level (debug, info, warn, error)")

	rootCmd.Flags().IntVar(&opts.threads, "threads", 0, "Worker count (raised to the pool floor of 8)")
	rootCmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "", "Digest algorithm (md5, sha1, sha256, sha512, blake2b)")
	rootCmd.Flags().BoolVar(&opts.catalog, "catalog", false, "Record this run in the catalog")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newRunsCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))

	return rootCmd
}
