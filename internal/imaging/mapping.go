package imaging

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"go-catalog-ws/internal/model"
)

// Entry ties a product id to an image file prefix. Name is the base name used
// when copying the image into the public directory.
type Entry struct {
	ID     string
	Prefix string
	Name   string
}

type entryYAML struct {
	ID     interface{} `yaml:"id"`
	Prefix string      `yaml:"prefix"`
	Name   string      `yaml:"name"`
}

type Mapping []Entry

// Lookup returns the entry for a product id, comparing normalized ids.
func (m Mapping) Lookup(id string) (Entry, bool) {
	for _, e := range m {
		if model.SameID(e.ID, id) {
			return e, true
		}
	}
	return Entry{}, false
}

// DefaultMapping covers the ten PC-part products of the catalog.
func DefaultMapping() Mapping {
	return Mapping{
		{ID: "1", Prefix: "gpu_product", Name: "gpu"},
		{ID: "2", Prefix: "psu_product", Name: "psu"},
		{ID: "3", Prefix: "ram_product", Name: "ram"},
		{ID: "4", Prefix: "motherboard_product", Name: "motherboard"},
		{ID: "5", Prefix: "cpu_product", Name: "cpu"},
		{ID: "6", Prefix: "case_product", Name: "case"},
		{ID: "7", Prefix: "ssd_product", Name: "ssd"},
		{ID: "8", Prefix: "cooler_product", Name: "cooler"},
		{ID: "9", Prefix: "keyboard_product", Name: "keyboard"},
		{ID: "10", Prefix: "mouse_product", Name: "mouse"},
	}
}

// LoadMapping reads a YAML list of {id, prefix, name}. An empty path yields
// DefaultMapping. Ids may be written as numbers or strings.
func LoadMapping(path string) (Mapping, error) {
	if path == "" {
		return DefaultMapping(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read mapping %s", path)
	}
	return ParseMapping(data)
}

func ParseMapping(data []byte) (Mapping, error) {
	var raw []entryYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "parse mapping")
	}

	m := make(Mapping, 0, len(raw))
	for i, r := range raw {
		id := model.NormalizeID(r.ID)
		if id == "" || r.Prefix == "" {
			return nil, errors.Errorf("mapping entry %d: id and prefix are required", i)
		}
		name := r.Name
		if name == "" {
			name = r.Prefix
		}
		m = append(m, Entry{ID: id, Prefix: r.Prefix, Name: name})
	}
	return m, nil
}
