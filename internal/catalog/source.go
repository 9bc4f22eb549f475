package catalog

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
)

// BrotliExt marks a brotli compressed source.
const BrotliExt = ".br"

type readCloser struct {
	io.Reader
	close func() error
}

func (r readCloser) Close() error { return r.close() }

// resolve joins relative source names onto baseDir.
func resolve(baseDir, source string) string {
	if baseDir == "" || filepath.IsAbs(source) {
		return source
	}
	return filepath.Join(baseDir, source)
}

// openSource opens a catalog file, decoding brotli when the name ends in .br.
func openSource(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(filepath.Ext(path), BrotliExt) {
		return f, nil
	}
	return readCloser{Reader: brotli.NewReader(f), close: f.Close}, nil
}
