package align

import (
	"log/slog"

	"github.com/maheshsawant8949-bot/Remotion/internal/config"
	"github.com/maheshsawant8949-bot/Remotion/internal/transcript"
)

// Method tags results whose timestamps were passed through from the upstream
// aligner rather than recomputed by a forced-alignment pass.
const Method = "whisperx"

// Stats counts the repairs made during one validation pass.
type Stats struct {
	Total   int
	Kept    int
	Clamped int
	Dropped int
	Pauses  int
}

// Validate repairs chronological consistency of a word sequence in a single
// forward pass: an overlap with the previously accepted word clamps the start
// time, a word left with non-positive duration is dropped, and a gap longer
// than settings.PauseGapSec is observed as a pause without touching any
// timestamp. It never fails; malformed timestamps are repaired or filtered.
func Validate(t *transcript.Transcript, settings *config.AlignSettings) (*transcript.AlignmentResult, Stats) {
	stats := Stats{Total: len(t.Words)}
	validated := make([]transcript.Word, 0, len(t.Words))

	for _, w := range t.Words {
		if len(validated) > 0 {
			prevEnd := validated[len(validated)-1].End
			gap := w.Start - prevEnd
			switch {
			case gap < 0:
				// Overlap with the previous accepted word.
				w.Start = prevEnd
				stats.Clamped++
			case gap > settings.PauseGapSec:
				stats.Pauses++
				slog.Debug("pause before word", "word", w.Word, "gap_sec", gap)
			}
		}

		// A dropped word does not advance the accepted end time, so the gap
		// for the next word is still computed against the last kept word.
		if w.Duration() <= 0 {
			stats.Dropped++
			slog.Info("skipping zero-duration word", "word", w.Word, "start", w.Start)
			continue
		}

		validated = append(validated, w)
	}
	stats.Kept = len(validated)

	return &transcript.AlignmentResult{
		Text:            t.Text,
		Language:        t.Language,
		Words:           validated,
		AlignmentMethod: Method,
	}, stats
}
