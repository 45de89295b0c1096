package transcript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Word is a single word with start/end times in seconds, as emitted by the
// WhisperX word-level aligner.
type Word struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Duration returns the word length in seconds.
func (w Word) Duration() float64 {
	return w.End - w.Start
}

// Transcript is the top-level input JSON structure from WhisperX.
type Transcript struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Words    []Word `json:"words"`
}

// AlignmentResult is the normalized output artifact. AlignmentMethod records
// which aligner produced the timestamps.
type AlignmentResult struct {
	Text            string `json:"text"`
	Language        string `json:"language"`
	Words           []Word `json:"words"`
	AlignmentMethod string `json:"alignment_method"`
}

// Load reads and parses a transcript JSON file. Language defaults to "en"
// when the input omits it.
func Load(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	var t Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse transcript: %w", err)
	}

	if t.Language == "" {
		t.Language = "en"
	}
	return &t, nil
}

// Save writes the result as pretty-printed JSON. Non-ASCII characters are
// written literally rather than as \u escapes.
func (r *AlignmentResult) Save(path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
