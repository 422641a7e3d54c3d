// Package dataset provides batch sources for offline evaluation.
package dataset

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kiln-ml/kiln/internal/inference"
	"github.com/kiln-ml/kiln/internal/tensor"
)

// JSONLSource reads pre-fetched evaluation batches from a JSONL file: one
// JSON object per line, mapping tensor names to value vectors. Every vector
// is delivered as a rank-1 tensor, whatever its length: a final batch of
// one sample must still look like a vector to vector-consuming
// accumulators, and a single-element vector already satisfies scalar
// consumers.
type JSONLSource struct {
	path    string
	file    *os.File
	scanner *bufio.Scanner
	line    int
}

// OpenJSONL opens a JSONL batch file.
func OpenJSONL(path string) (*JSONLSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	s := &JSONLSource{path: path, file: f}
	s.scanner = bufio.NewScanner(f)
	return s, nil
}

// NextBatch decodes the next line into a batch, or returns io.EOF at the
// end of the file.
func (s *JSONLSource) NextBatch(ctx context.Context) (inference.Batch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for s.scanner.Scan() {
		s.line++
		raw := s.scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var decoded map[string][]float64
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", s.path, s.line, err)
		}

		batch := make(inference.Batch, len(decoded))
		for name, values := range decoded {
			t, err := tensor.Vector(values)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: tensor %q: %w", s.path, s.line, name, err)
			}
			batch[name] = t
		}
		return batch, nil
	}
	if err := s.scanner.Err(); err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	return nil, io.EOF
}

// Rewind seeks back to the start of the file for the next epoch.
func (s *JSONLSource) Rewind() error {
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind batch file: %w", err)
	}
	s.scanner = bufio.NewScanner(s.file)
	s.line = 0
	return nil
}

// Close releases the underlying file.
func (s *JSONLSource) Close() error {
	return s.file.Close()
}
