package source

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ScottSyms/RustAISe/internal/nmea"
	"github.com/ScottSyms/RustAISe/internal/ports"
)

// Satellite feeds occasionally carry very long lines; the scanner buffer is
// sized well past anything a sane sentence needs.
const maxLineBytes = 1 << 20

// FileSource reads a newline-delimited capture file and streams every line
// containing the AIS payload marker. Lines without the marker are dropped
// before they reach the tagger.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string { return "file:" + s.path }

func (s *FileSource) Stream(ctx context.Context, out chan<- string) error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, nmea.Marker) {
			continue
		}
		select {
		case out <- line:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

var _ ports.LineSource = (*FileSource)(nil)
