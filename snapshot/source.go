package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/unitfx/unitfx/label"
	"golang.org/x/text/encoding"
)

// Source yields rate snapshots from somewhere: a file, a database, a test
// double. Implementations take care of reading and decoding and hand back
// ready snapshots.
//
//go:generate mockgen -source source.go -destination mock_source.go -package snapshot
type Source interface {
	Load(ctx context.Context) ([]Snapshot, error)
}

var _ Source = (*FileSource)(nil)

type FileOption func(*FileSource)

// WithBase sets the base currency assumed for CSV files, which do not
// carry it in-band. Default is EUR.
func WithBase(sym label.Symbol) FileOption {
	return func(f *FileSource) {
		f.base = sym
	}
}

// WithEncoding transcodes the file from a legacy single-byte charset
// before decoding, e.g. charmap.Windows1251 for some central bank exports.
func WithEncoding(enc encoding.Encoding) FileOption {
	return func(f *FileSource) {
		f.encoding = enc
	}
}

// NewFileSource returns a Source reading one snapshot file; the format is
// picked by extension (.json or .csv).
func NewFileSource(path string, opts ...FileOption) *FileSource {
	f := &FileSource{path: path, base: label.EUR}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

type FileSource struct {
	path     string
	base     label.Symbol
	encoding encoding.Encoding
}

func (f *FileSource) Load(ctx context.Context) ([]Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ctx cancelled: %w", err)
	}

	b, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", f.path, err)
	}

	if f.encoding != nil {
		if b, err = f.encoding.NewDecoder().Bytes(b); err != nil {
			return nil, fmt.Errorf("transcode %s: %w", f.path, err)
		}
	}

	var d decodeFunc

	switch strings.ToLower(filepath.Ext(f.path)) {
	case ".json":
		d = decodeJSON()
	case ".csv":
		d = decodeCSV(f.base)
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownFormat, f.path)
	}

	var list []Snapshot

	if err := d(b, func(s Snapshot) error {
		list = append(list, s)

		return nil
	}); err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.path, err)
	}

	return list, nil
}
