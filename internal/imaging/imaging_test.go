package imaging

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-catalog-ws/internal/model"
	"go-catalog-ws/internal/repository"
)

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func catalog() []model.Product {
	return []model.Product{
		{ID: "1", Name: "GPU", ImageURL: "/products/gpu.png"},
		{ID: "5", Name: "CPU", ImageURL: "/products/cpu.png"},
		{ID: "42", Name: "Unmapped", ImageURL: "/products/x.png"},
	}
}

func TestParseMapping(t *testing.T) {
	m, err := ParseMapping([]byte(`
- id: 1
  prefix: gpu_product
  name: gpu
- id: "7"
  prefix: ssd_product
`))
	require.NoError(t, err)

	assert.Equal(t, Mapping{
		{ID: "1", Prefix: "gpu_product", Name: "gpu"},
		{ID: "7", Prefix: "ssd_product", Name: "ssd_product"},
	}, m)

	_, err = ParseMapping([]byte(`- name: nope`))
	assert.Error(t, err)
}

func TestLoadMappingDefault(t *testing.T) {
	m, err := LoadMapping("")
	require.NoError(t, err)

	require.Len(t, m, 10)
	e, ok := m.Lookup("10")
	require.True(t, ok)
	assert.Equal(t, "mouse_product", e.Prefix)
	_, ok = m.Lookup("11")
	assert.False(t, ok)
}

func TestEmbedderRun(t *testing.T) {
	dir := t.TempDir()
	gpu := []byte("gpu-bytes")
	writeFile(t, dir, "gpu_product_1766685631184.png", gpu)
	writeFile(t, dir, "gpu_product_1766685631999.png", []byte("later"))
	writeFile(t, dir, "notes.txt", []byte("ignored"))

	store := repository.NewMemoryStore(catalog()...)
	e := &Embedder{Store: store, ImageDir: dir, Mapping: DefaultMapping()}

	res, err := e.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, []string{"5"}, res.Missing)
	assert.True(t, res.Written)
	assert.Equal(t, 1, store.Writes())

	all := store.LoadAll()
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(gpu), all[0].ImageURL)
	assert.Equal(t, "/products/cpu.png", all[1].ImageURL)
	assert.Equal(t, "/products/x.png", all[2].ImageURL)

	// same inputs again: nothing changes, nothing written
	res, err = e.Run()
	require.NoError(t, err)
	assert.Equal(t, 0, res.Updated)
	assert.False(t, res.Written)
	assert.Equal(t, 1, store.Writes())
}

func TestEmbedderNumericIDsInFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cpu_product_1.png", []byte("cpu"))
	dataFile := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(dataFile, []byte(`[{"id":5,"name":"CPU","imageUrl":""}]`), 0o644))

	e := &Embedder{Store: repository.NewFileStore(dataFile), ImageDir: dir, Mapping: DefaultMapping()}
	res, err := e.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)

	raw, err := os.ReadFile(dataFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"id": "5"`)
}

func TestEmbedderUnreadableImageSkipsRecord(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone.png"), filepath.Join(dir, "gpu_product_x.png")))
	writeFile(t, dir, "cpu_product_1.png", []byte("cpu"))

	store := repository.NewMemoryStore(catalog()...)
	e := &Embedder{Store: store, ImageDir: dir, Mapping: DefaultMapping()}

	res, err := e.Run()
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, res.Failed)
	assert.Empty(t, res.Missing)
	assert.Equal(t, 1, res.Updated)
	assert.True(t, res.Written)

	all := store.LoadAll()
	assert.Equal(t, "/products/gpu.png", all[0].ImageURL)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString([]byte("cpu")), all[1].ImageURL)
}

func TestEmbedderMissingDirAborts(t *testing.T) {
	store := repository.NewMemoryStore(catalog()...)
	e := &Embedder{Store: store, ImageDir: filepath.Join(t.TempDir(), "nope"), Mapping: DefaultMapping()}

	_, err := e.Run()

	assert.Error(t, err)
	assert.Equal(t, 0, store.Writes())
}

func TestCopyImages(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "public", "products")
	writeFile(t, src, "cpu_product_1766685631184.png", []byte("cpu"))
	writeFile(t, src, "mouse_product_1.png", []byte("mouse"))
	writeFile(t, src, "random.png", []byte("x"))

	n, err := CopyImages(src, dst, DefaultMapping())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(filepath.Join(dst, "cpu.png"))
	require.NoError(t, err)
	assert.Equal(t, "cpu", string(data))
	assert.FileExists(t, filepath.Join(dst, "mouse.png"))
	assert.NoFileExists(t, filepath.Join(dst, "random.png"))
}
