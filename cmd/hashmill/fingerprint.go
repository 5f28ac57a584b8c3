package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"hashmill/internal/catalog"
	"hashmill/internal/config"
	"hashmill/internal/digest"
	"hashmill/internal/logging"
	"hashmill/internal/runner"
	"hashmill/internal/scan"
)

type runOptions struct {
	threads   int
	algorithm string
	catalog   bool
}

// runFingerprint drives one fingerprint run: discover files, hash them on the
// worker pool, stream result lines to stdout, and optionally record the run.
// Per-file failures surface as ERROR lines and never fail the command.
func runFingerprint(cmd *cobra.Command, cctx *commandContext, opts *runOptions, args []string) error {
	cfg, err := cctx.ensureConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("threads") {
		cfg.Hash.Threads = opts.threads
	}
	if flags.Changed("algorithm") {
		cfg.Hash.Algorithm = strings.ToLower(strings.TrimSpace(opts.algorithm))
	}
	if flags.Changed("catalog") {
		cfg.Catalog.Enabled = opts.catalog
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	hasher, err := digest.New(cfg.Hash.Algorithm, cfg.Hash.ChunkKiB<<10)
	if err != nil {
		return err
	}

	discovery := scan.Discover(args, logger)
	if len(discovery.Files) == 0 {
		return scan.ErrNoFiles
	}

	run, err := runner.New(runner.Config{
		Workers:     cfg.Hash.Threads,
		Fingerprint: hasher.Sum,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	var records []catalog.FileRecord
	if cfg.Catalog.Enabled {
		records = make([]catalog.FileRecord, 0, len(discovery.Files))
	}

	started := time.Now()
	summary := run.Run(discovery.Files, runner.SinkFunc(func(o runner.Outcome) {
		writeResultLine(out, o)
		if records != nil {
			records = append(records, catalog.FileRecord{
				Index:  o.Index,
				Path:   o.Path,
				Digest: o.Result.Digest,
				Error:  o.Result.Err,
			})
		}
	}))
	if err := out.Flush(); err != nil {
		return fmt.Errorf("flush results: %w", err)
	}

	log := logging.NewComponentLogger(logger, "cli")
	log.Info("run complete",
		logging.Int("files", summary.Files),
		logging.Int("succeeded", summary.Succeeded),
		logging.Int("failed", summary.Failed),
		logging.Int("workers", summary.Workers),
		logging.String("algorithm", cfg.Hash.Algorithm),
		logging.Duration("elapsed", summary.Elapsed),
	)

	if cfg.Catalog.Enabled {
		recordRun(log, cfg, catalog.Run{
			ID:         uuid.NewString(),
			StartedAt:  started.UTC(),
			FinishedAt: time.Now().UTC(),
			Algorithm:  cfg.Hash.Algorithm,
			Workers:    summary.Workers,
			FileCount:  summary.Files,
			Succeeded:  summary.Succeeded,
			Failed:     summary.Failed,
			TotalBytes: discovery.TotalBytes,
		}, records)
	}
	return nil
}

// writeResultLine emits the base-name line for one outcome: either
// "name<TAB>DIGEST" or "name<TAB>ERROR: reason".
func writeResultLine(out io.Writer, o runner.Outcome) {
	base := filepath.Base(o.Path)
	if o.Result.OK {
		fmt.Fprintf(out, "%s\t%s\n", base, o.Result.Digest)
		return
	}
	fmt.Fprintf(out, "%s\tERROR: %s\n", base, o.Result.Err)
}

// recordRun persists a completed run. Recording problems are warnings; the
// run itself already succeeded.
func recordRun(log *slog.Logger, cfg *config.Config, run catalog.Run, files []catalog.FileRecord) {
	store, err := catalog.Open(cfg)
	if err != nil {
		log.Warn("catalog recording skipped", logging.Error(err))
		return
	}
	defer store.Close()

	for i := range files {
		files[i].RunID = run.ID
	}
	if err := store.RecordRun(context.Background(), run, files); err != nil {
		log.Warn("catalog recording failed", logging.Error(err))
		return
	}
	log.Info("run recorded", logging.String(logging.FieldRunID, run.ID))
}
