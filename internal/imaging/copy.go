package imaging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CopyImages copies the first PNG matching each mapping prefix from src to
// <dst>/<name>.png, creating dst when needed. It returns the number copied.
func CopyImages(src, dst string, mapping Mapping) (int, error) {
	files, err := listPNG(src)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(dst, 0o755); err != nil {
		return 0, errors.Wrapf(err, "create target dir %s", dst)
	}

	count := 0
	for _, entry := range mapping {
		file, ok := firstWithPrefix(files, entry.Prefix)
		if !ok {
			zap.S().Warnw("missing image file", "id", entry.ID, "prefix", entry.Prefix)
			continue
		}

		target := entry.Name + ".png"
		if err := copyFile(filepath.Join(src, file), filepath.Join(dst, target)); err != nil {
			zap.S().Errorw("error copying image", "file", file, "error", err)
			continue
		}
		zap.S().Infow("copied image", "file", file, "target", target)
		count++
	}
	return count, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
