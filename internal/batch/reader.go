package batch

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

const maxLineSize = 1024 * 1024

type Reader struct {
	source io.Reader
	logger *zerolog.Logger
}

func NewReader(source io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{
		source: source,
		logger: logger,
	}
}

// ReadAll streams parsed records. Blank lines are skipped; lines that do not
// decode are emitted with Error set. The channel closes at EOF or when ctx
// is cancelled.
func (r *Reader) ReadAll(ctx context.Context) <-chan InputRecord {
	out := make(chan InputRecord)

	go func() {
		defer close(out)

		scanner := bufio.NewScanner(r.source)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

		lineNumber := 0
		for scanner.Scan() {
			lineNumber++

			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}

			record := InputRecord{LineNumber: lineNumber}
			if err := json.Unmarshal(line, &record.Request); err != nil {
				record.Error = fmt.Errorf("line %d: invalid JSON: %w", lineNumber, err)
			}
			// every record, parsed or not, correlates to its input line
			if record.Request.ID == "" {
				record.Request.ID = lineID(lineNumber)
			}

			select {
			case out <- record:
			case <-ctx.Done():
				r.logger.Debug().Int("line", lineNumber).Msg("reader cancelled")
				return
			}
		}

		if err := scanner.Err(); err != nil {
			r.logger.Error().Err(err).Int("line", lineNumber).Msg("failed to read input")
			select {
			case out <- InputRecord{
				LineNumber: lineNumber + 1,
				Request:    RoundRecord{ID: lineID(lineNumber + 1)},
				Error:      fmt.Errorf("read input: %w", err),
			}:
			case <-ctx.Done():
			}
		}
	}()

	return out
}

func lineID(lineNumber int) string {
	return fmt.Sprintf("line-%d", lineNumber)
}
