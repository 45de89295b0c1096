package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
)

// AudioInfo holds stream metadata reported by ffprobe.
type AudioInfo struct {
	Duration   float64
	Codec      string
	SampleRate int
}

// Available returns true if ffprobe is on the PATH.
func Available() bool {
	_, err := exec.LookPath("ffprobe")
	return err == nil
}

// probeOutput mirrors ffprobe JSON structure.
type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecName  string `json:"codec_name"`
		SampleRate string `json:"sample_rate"`
	} `json:"streams"`
}

// Probe uses ffprobe to get the duration, codec and sample rate of the first
// audio stream. The file is never decoded.
func Probe(ctx context.Context, path string) (*AudioInfo, error) {
	cmd := exec.CommandContext(ctx,
		"ffprobe",
		"-v", "error",
		"-select_streams", "a:0",
		"-show_entries", "stream=codec_name,sample_rate:format=duration",
		"-of", "json",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	var probe probeOutput
	if err := json.Unmarshal(out, &probe); err != nil {
		return nil, fmt.Errorf("ffprobe JSON parse error: %w", err)
	}

	dur, _ := strconv.ParseFloat(probe.Format.Duration, 64)

	info := &AudioInfo{Duration: dur, Codec: "N/A"}
	if len(probe.Streams) > 0 {
		if probe.Streams[0].CodecName != "" {
			info.Codec = probe.Streams[0].CodecName
		}
		info.SampleRate, _ = strconv.Atoi(probe.Streams[0].SampleRate)
	}
	return info, nil
}
