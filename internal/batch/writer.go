package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatJSONL   = "jsonl"
	FormatSummary = "summary"
)

// Summary aggregates a batch run.
type Summary struct {
	Total           int                   `json:"total"`
	Succeeded       int                   `json:"succeeded"`
	Failed          int                   `json:"failed"`
	AverageDuration string                `json:"average_duration"`
	Rounds          map[string]RoundStats `json:"rounds"`
	FailedIDs       []string              `json:"failed_ids,omitempty"`
}

type RoundStats struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

type Writer struct {
	out      io.Writer
	format   string
	encoder  *json.Encoder
	summary  Summary
	duration time.Duration
	logger   *zerolog.Logger
}

func NewWriter(out io.Writer, format string, logger *zerolog.Logger) (*Writer, error) {
	if format != FormatJSONL && format != FormatSummary {
		return nil, fmt.Errorf("unsupported format %q (expected %s or %s)", format, FormatJSONL, FormatSummary)
	}

	return &Writer{
		out:     out,
		format:  format,
		encoder: json.NewEncoder(out),
		summary: Summary{Rounds: map[string]RoundStats{}},
		logger:  logger,
	}, nil
}

// Write records a result. JSONL output is written immediately; summary
// output is written on Close.
func (w *Writer) Write(result Result) error {
	w.track(result)

	if w.format == FormatJSONL {
		if err := w.encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to write result %s: %w", result.ID, err)
		}
	}
	return nil
}

func (w *Writer) Summary() Summary {
	s := w.summary
	if s.Succeeded > 0 {
		s.AverageDuration = (w.duration / time.Duration(s.Succeeded)).String()
	} else {
		s.AverageDuration = "0s"
	}
	sort.Strings(s.FailedIDs)
	return s
}

func (w *Writer) Close() error {
	if w.format != FormatSummary {
		return nil
	}

	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(w.Summary()); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

func (w *Writer) track(result Result) {
	w.summary.Total++
	stats := w.summary.Rounds[result.Round]

	if result.Failed() {
		w.summary.Failed++
		w.summary.FailedIDs = append(w.summary.FailedIDs, result.ID)
		stats.Failed++
	} else {
		w.summary.Succeeded++
		w.duration += result.Duration
		stats.Succeeded++
	}

	w.summary.Rounds[result.Round] = stats
}
