package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/maheshsawant8949-bot/Remotion/internal/config"
	"github.com/maheshsawant8949-bot/Remotion/internal/worker"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool

	offsetSec float64
	pauseGap  float64
	noProbe   bool
)

var rootCmd = &cobra.Command{
	Use:   "align <audio-file> <transcript-json> <output-json>",
	Short: "Validate and repair word-level timestamps from a WhisperX transcript",
	Long: `Align post-processes word-level timestamps produced by WhisperX: it repairs
overlapping word boundaries, drops zero-duration words, and writes a normalized
alignment JSON. The audio file is accepted for a future forced-alignment step
and is only probed for diagnostics, never decoded.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 3 {
			fmt.Fprintf(cmd.OutOrStdout(), "Usage: %s\n", cmd.UseLine())
			return fmt.Errorf("expected 3 arguments, got %d", len(args))
		}
		return nil
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	RunE:          runAlign,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func runAlign(cmd *cobra.Command, args []string) error {
	audioPath, transcriptPath, outputPath := args[0], args[1], args[2]

	if _, err := os.Stat(transcriptPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", transcriptPath)
	}

	// Setup signal handling for graceful cancellation.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := worker.Options{
		AudioPath:      audioPath,
		TranscriptPath: transcriptPath,
		OutputPath:     outputPath,
		OffsetSec:      offsetSec,
		ProbeAudio:     !noProbe,
		Settings: &config.AlignSettings{
			PauseGapSec: pauseGap,
		},
	}

	if err := worker.Run(ctx, opts); err != nil {
		return err
	}

	if !quiet {
		slog.Info("done")
	}
	return nil
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	defaults := config.Default()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.Flags().Float64Var(&offsetSec, "offset", 0, "seconds added to all word timestamps before validation")
	rootCmd.Flags().Float64Var(&pauseGap, "pause-gap", defaults.PauseGapSec, "gap in seconds treated as a pause between words")
	rootCmd.Flags().BoolVar(&noProbe, "no-probe", false, "skip the ffprobe audio duration check")
}
