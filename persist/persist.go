// Package persist reads and writes enumeration runs as JSON documents:
//
//	{
//	  "center": 1,
//	  "count": 24,
//	  "generated": "2026-10-19T12:00:00Z",
//	  "coronas": ["1|2^0|2^0|2^0|2^0", ...]
//	}
//
// Coronas are stored in compact notation, in enumeration order.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/coronas/compact"
	"github.com/katalvlaran/coronas/corona"
	"github.com/katalvlaran/coronas/enumerate"
)

var (
	// ErrCountMismatch indicates "count" disagrees with the number of coronas.
	ErrCountMismatch = errors.New("persist: count does not match corona list")
	// ErrNoCenter indicates a document without a positive center.
	ErrNoCenter = errors.New("persist: missing or non-positive center")
)

// Run is one persisted enumeration.
type Run struct {
	Center    int       `json:"center"`
	Count     int       `json:"count"`
	Generated time.Time `json:"generated"`
	Coronas   []string  `json:"coronas"`
}

// NewRun builds a Run from coronas, formatting each in compact notation.
// generated is stored in UTC, truncated to seconds.
func NewRun(center int, coronas []corona.Corona, generated time.Time) Run {
	forms := make([]string, len(coronas))
	for i, c := range coronas {
		forms[i] = compact.Format(c)
	}

	return Run{
		Center:    center,
		Count:     len(forms),
		Generated: generated.UTC().Truncate(time.Second),
		Coronas:   forms,
	}
}

// FromResult builds a Run from an enumeration result.
func FromResult(res *enumerate.Result, generated time.Time) Run {
	return NewRun(res.Center, res.Coronas, generated)
}

// Parse decodes the stored compact forms back into coronas.
func (r Run) Parse() ([]corona.Corona, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	out := make([]corona.Corona, 0, len(r.Coronas))
	for i, text := range r.Coronas {
		c, err := compact.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("persist: corona %d: %w", i, err)
		}
		out = append(out, c)
	}

	return out, nil
}

func (r Run) check() error {
	if r.Center < 1 {
		return ErrNoCenter
	}
	if r.Count != len(r.Coronas) {
		return fmt.Errorf("%w: count=%d, coronas=%d", ErrCountMismatch, r.Count, len(r.Coronas))
	}

	return nil
}

// FileName returns the conventional file name for a run of center.
func FileName(center int) string {
	return fmt.Sprintf("coronas-center-%d.json", center)
}

// Write encodes run as indented JSON.
func Write(w io.Writer, run Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(run); err != nil {
		return fmt.Errorf("persist: encode: %w", err)
	}

	return nil
}

// Read decodes and checks a run document.
func Read(r io.Reader) (Run, error) {
	var run Run
	if err := json.NewDecoder(r).Decode(&run); err != nil {
		return Run{}, fmt.Errorf("persist: decode: %w", err)
	}
	if err := run.check(); err != nil {
		return Run{}, err
	}

	return run, nil
}

// Save writes run to path, creating parent directories as needed.
func Save(path string, run Run) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("persist: mkdir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("persist: create: %w", err)
	}
	if err := Write(f, run); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Load reads a run from path.
func Load(path string) (Run, error) {
	f, err := os.Open(path)
	if err != nil {
		return Run{}, fmt.Errorf("persist: open: %w", err)
	}
	defer f.Close()

	return Read(f)
}
