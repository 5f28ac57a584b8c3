package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"hashmill/internal/catalog"
	"hashmill/internal/textutil"
)

func newRunsCommand(cctx *commandContext) *cobra.Command {
	var limit int

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect recorded fingerprint runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRuns(cmd, cctx, limit)
		},
	}
	runsCmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs to list")

	runsCmd.AddCommand(newRunsListCommand(cctx))
	runsCmd.AddCommand(newRunsShowCommand(cctx))
	runsCmd.AddCommand(newRunsPruneCommand(cctx))
	runsCmd.AddCommand(newRunsClearCommand(cctx))

	return runsCmd
}

func newRunsListCommand(cctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRuns(cmd, cctx, limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs to list")
	return cmd
}

func listRuns(cmd *cobra.Command, cctx *commandContext, limit int) error {
	return cctx.withCatalog(func(store *catalog.Store) error {
		runs, err := store.ListRuns(cmd.Context(), limit)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(out, "No runs recorded")
			return nil
		}

		rows := make([][]string, 0, len(runs))
		for _, run := range runs {
			rows = append(rows, []string{
				shortRunID(run.ID),
				run.StartedAt.Local().Format("2006-01-02 15:04:05"),
				run.Duration().Round(time.Millisecond).String(),
				run.Algorithm,
				textutil.FormatCount(int64(run.FileCount)),
				textutil.FormatCount(int64(run.Succeeded)),
				textutil.FormatCount(int64(run.Failed)),
				textutil.FormatBytes(run.TotalBytes),
			})
		}
		renderTable(out,
			[]string{"ID", "Started", "Duration", "Algorithm", "Files", "OK", "Failed", "Size"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignRight, alignRight, alignRight, alignRight})
		return nil
	})
}

func newRunsShowCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one run with its per-file results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withCatalog(func(store *catalog.Store) error {
				run, err := store.FindRunByPrefix(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if run == nil {
					return fmt.Errorf("no run matches %q", args[0])
				}
				files, err := store.RunFiles(cmd.Context(), run.ID)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Run:       %s\n", run.ID)
				fmt.Fprintf(out, "Started:   %s\n", run.StartedAt.Local().Format(time.RFC3339))
				fmt.Fprintf(out, "Duration:  %s\n", run.Duration().Round(time.Millisecond))
				fmt.Fprintf(out, "Algorithm: %s\n", run.Algorithm)
				fmt.Fprintf(out, "Workers:   %d\n", run.Workers)
				fmt.Fprintf(out, "Files:     %s (%s failed, %s)\n",
					textutil.FormatCount(int64(run.FileCount)),
					textutil.FormatCount(int64(run.Failed)),
					textutil.FormatBytes(run.TotalBytes))

				if len(files) == 0 {
					return nil
				}
				rows := make([][]string, 0, len(files))
				for _, file := range files {
					result := file.Digest
					if !file.OK() {
						result = "ERROR: " + file.Error
					}
					rows = append(rows, []string{strconv.Itoa(file.Index), file.Path, result})
				}
				fmt.Fprintln(out)
				renderTable(out,
					[]string{"#", "File", "Result"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft})
				return nil
			})
		},
	}
}

func newRunsPruneCommand(cctx *commandContext) *cobra.Command {
	var keep int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete all but the most recent runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withCatalog(func(store *catalog.Store) error {
				removed, err := store.Prune(cmd.Context(), keep)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d runs (kept the %d most recent)\n", removed, keep)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&keep, "keep", 10, "Number of recent runs to keep")
	return cmd
}

func newRunsClearCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withCatalog(func(store *catalog.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d runs\n", removed)
				return nil
			})
		},
	}
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
