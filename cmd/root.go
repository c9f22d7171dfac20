package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"exoplayerlcevc/config"
	"exoplayerlcevc/internal/lcevc"
	"exoplayerlcevc/internal/logger"
	"exoplayerlcevc/internal/pipeline"
	"exoplayerlcevc/internal/releases"
	"exoplayerlcevc/tui"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	exoPlayerVersion string
	location         string
)

// runPipeline is replaced in tests.
var runPipeline = run

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exoplayer-lcevc",
		Short: "Clone an ExoPlayer release and add the LCEVC decoder extension to it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags parsed fine; anything from here on is not a usage problem
			// and is reported by the logger.
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true

			s := config.Current()
			logger.Setup(cmd.ErrOrStderr(), s.LogLevel)

			opts := pipeline.Options{
				Version:        exoPlayerVersion,
				Location:       location,
				RemoteURL:      s.RemoteURL,
				TagPrefix:      s.TagPrefix,
				DecoderSource:  s.DecoderSource,
				DecoderExclude: s.DecoderExclude,
			}
			if err := runPipeline(cmd.Context(), s, opts); err != nil {
				logger.Log.Error("patch exoplayer", "err", err)
				return err
			}

			logger.Log.Info("ExoPlayer patched with LCEVC", "version", opts.Version, "location", opts.Location)
			return nil
		},
	}

	cmd.Flags().StringVar(&exoPlayerVersion, "exoPlayerVersion", "", "ExoPlayer release to clone, e.g. 2.18.1 (required)")
	cmd.Flags().StringVar(&location, "location", "", "existing directory to clone into (required)")

	_ = cmd.MarkFlagRequired("exoPlayerVersion")
	_ = cmd.MarkFlagRequired("location")

	return cmd
}

func run(ctx context.Context, s config.Settings, opts pipeline.Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if s.RemoteTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.RemoteTimeout)
		defer cancel()
	}

	showProgress := useProgressView(s.Progress, os.Stderr)

	// git's own progress output would tear the progress view.
	var gitProgress io.Writer = os.Stderr
	if showProgress {
		gitProgress = nil
	}
	src, err := releases.NewSource(s.GitBackend, gitProgress)
	if err != nil {
		return fmt.Errorf("select git backend: %w", err)
	}
	rules := lcevc.Substitutions()

	if showProgress {
		title := fmt.Sprintf("ExoPlayer %s -> %s", opts.Version, opts.Location)
		return tui.Run(ctx, title, os.Stderr, func(ctx context.Context, notify pipeline.Notifier) error {
			return pipeline.New(src, rules, notify).Run(ctx, opts)
		})
	}
	return pipeline.New(src, rules, pipeline.LogEvents(logger.Log)).Run(ctx, opts)
}

func useProgressView(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}

func Execute() {
	config.Init()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
