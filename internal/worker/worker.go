package worker

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"

	"github.com/maheshsawant8949-bot/Remotion/internal/align"
	"github.com/maheshsawant8949-bot/Remotion/internal/config"
	"github.com/maheshsawant8949-bot/Remotion/internal/ffmpeg"
	"github.com/maheshsawant8949-bot/Remotion/internal/transcript"

	"golang.org/x/sync/errgroup"
)

// applyTimeOffset adds an offset (in seconds) to all word timestamps, rounding to millisecond precision.
func applyTimeOffset(words []transcript.Word, offsetSec float64) {
	for i := range words {
		words[i].Start = math.Round((words[i].Start+offsetSec)*1000) / 1000
		words[i].End = math.Round((words[i].End+offsetSec)*1000) / 1000
	}
}

// Options configures one alignment run.
type Options struct {
	AudioPath      string
	TranscriptPath string
	OutputPath     string
	OffsetSec      float64
	ProbeAudio     bool
	Settings       *config.AlignSettings
}

// Run is the top-level orchestrator for one validation pass: load the
// transcript (probing the audio file in parallel when ffprobe is available),
// validate the word timestamps, and write the normalized result.
func Run(ctx context.Context, opts Options) error {
	slog.Info("processing transcript", "input", filepath.Base(opts.TranscriptPath))

	var (
		trans *transcript.Transcript
		audio *ffmpeg.AudioInfo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := transcript.Load(opts.TranscriptPath)
		if err != nil {
			return err
		}
		trans = t
		return nil
	})
	if opts.ProbeAudio && ffmpeg.Available() {
		// The probe is diagnostics only; it never fails the run.
		g.Go(func() error {
			info, err := ffmpeg.Probe(gctx, opts.AudioPath)
			if err != nil {
				slog.Warn("audio probe failed", "file", filepath.Base(opts.AudioPath), "err", err)
				return nil
			}
			audio = info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("using WhisperX timestamps", "words", len(trans.Words), "language", trans.Language)
	if audio != nil {
		slog.Info("audio probed",
			"duration_sec", fmt.Sprintf("%.2f", audio.Duration),
			"codec", audio.Codec)
	}

	if opts.OffsetSec != 0 {
		applyTimeOffset(trans.Words, opts.OffsetSec)
	}

	settings := opts.Settings
	if settings == nil {
		settings = &config.Default().AlignSettings
	}

	result, stats := align.Validate(trans, settings)

	if audio != nil && audio.Duration > 0 && len(result.Words) > 0 {
		if last := result.Words[len(result.Words)-1].End; last > audio.Duration {
			slog.Warn("transcript extends past audio duration",
				"last_word_end", last, "audio_duration", audio.Duration)
		}
	}

	if err := result.Save(opts.OutputPath); err != nil {
		return err
	}

	slog.Info("alignment saved",
		"path", opts.OutputPath,
		"validated", stats.Kept,
		"clamped", stats.Clamped,
		"dropped", stats.Dropped,
		"pauses", stats.Pauses)
	return nil
}
