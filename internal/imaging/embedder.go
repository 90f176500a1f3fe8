package imaging

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"go-catalog-ws/internal/repository"
)

const dataURLPrefix = "data:image/png;base64,"

// Result summarizes one embedding run.
type Result struct {
	Updated int
	Missing []string
	Failed  []string
	Written bool
}

// Embedder rewrites imageUrl of mapped products to inline PNG data URLs.
type Embedder struct {
	Store    repository.RecordStore
	ImageDir string
	Mapping  Mapping
}

// Run updates every mapped product whose image differs and writes the
// collection at most once. Per-product problems are logged and skipped; only
// an unreadable image directory or a failed write abort the run.
func (e *Embedder) Run() (*Result, error) {
	files, err := listPNG(e.ImageDir)
	if err != nil {
		return nil, err
	}
	zap.S().Infow("scanning images", "dir", e.ImageDir, "png_files", len(files))

	products := e.Store.LoadAll()
	res := &Result{}

	for i := range products {
		p := &products[i]
		entry, ok := e.Mapping.Lookup(p.ID)
		if !ok {
			continue
		}

		file, ok := firstWithPrefix(files, entry.Prefix)
		if !ok {
			zap.S().Warnw("missing image file", "id", p.ID, "prefix", entry.Prefix)
			res.Missing = append(res.Missing, p.ID)
			continue
		}

		data, err := os.ReadFile(filepath.Join(e.ImageDir, file))
		if err != nil {
			zap.S().Errorw("error reading image", "id", p.ID, "file", file, "error", err)
			res.Failed = append(res.Failed, p.ID)
			continue
		}

		dataURL := dataURLPrefix + base64.StdEncoding.EncodeToString(data)
		if p.ImageURL != dataURL {
			p.ImageURL = dataURL
			res.Updated++
			zap.S().Infow("mapped image", "id", p.ID, "file", file)
		}
	}

	if res.Updated == 0 {
		zap.S().Info("no updates needed")
		return res, nil
	}

	if err := e.Store.ReplaceAll(products); err != nil {
		return res, errors.Wrap(err, "write products")
	}
	res.Written = true
	zap.S().Infow("updated products", "count", res.Updated)
	return res, nil
}

// listPNG returns the .png names in dir in lexical order.
func listPNG(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read image dir %s", dir)
	}

	var files []string
	for _, ent := range entries {
		if !ent.IsDir() && strings.HasSuffix(ent.Name(), ".png") {
			files = append(files, ent.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

func firstWithPrefix(files []string, prefix string) (string, bool) {
	for _, f := range files {
		if strings.HasPrefix(f, prefix) {
			return f, true
		}
	}
	return "", false
}
