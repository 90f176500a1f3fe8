package model

import (
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Product is the single catalog record. Field names follow the persisted JSON layout.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"imageUrl"`
	CreatedAt   string  `json:"createdAt"`
}

// UnmarshalJSON accepts both numeric and string ids, which coexist in older
// data files. price and stock are coerced per record so one off-type value
// does not make the whole collection unreadable.
func (p *Product) UnmarshalJSON(data []byte) error {
	type alias Product
	aux := struct {
		ID    interface{} `json:"id"`
		Price interface{} `json:"price"`
		Stock interface{} `json:"stock"`
		*alias
	}{alias: (*alias)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.ID = NormalizeID(aux.ID)
	p.Price = coercePrice(p.ID, aux.Price)
	p.Stock = coerceStock(p.ID, aux.Stock)
	return nil
}

// coercePrice returns a finite price >= 0.
func coercePrice(id string, raw interface{}) float64 {
	f, ok := toNumber(id, "price", raw)
	if !ok {
		return 0
	}
	if f < 0 {
		zap.S().Warnw("clamping negative stored price", "id", id, "value", f)
		return 0
	}
	return f
}

// coerceStock returns a whole stock count in [0, MaxInt32].
func coerceStock(id string, raw interface{}) int {
	f, ok := toNumber(id, "stock", raw)
	if !ok {
		return 0
	}
	clamped := math.Min(math.Max(math.Trunc(f), 0), math.MaxInt32)
	if clamped != f {
		zap.S().Warnw("clamping stored stock", "id", id, "value", f, "stock", clamped)
	}
	return int(clamped)
}

func toNumber(id, field string, raw interface{}) (float64, bool) {
	if raw == nil {
		return 0, false
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		zap.S().Warnw("ignoring unreadable stored value", "id", id, "field", field, "value", raw)
		return 0, false
	}
	return f, true
}

// NormalizeID renders an identifier in its canonical decimal-string form so
// that 5, 5.0 and "5" all compare equal.
func NormalizeID(id interface{}) string {
	switch v := id.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	}
	return strings.TrimSpace(cast.ToString(id))
}

// SameID reports whether two identifiers are equal after normalization.
func SameID(a, b interface{}) bool {
	return NormalizeID(a) == NormalizeID(b)
}

// ProductInput holds validated create/update fields.
type ProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Stock       *int     `json:"stock" validate:"required,gte=0"`
	ImageURL    string   `json:"imageUrl"`
}

// ApplyTo merges the input over p. id and createdAt are never touched, and an
// empty imageUrl keeps the existing one.
func (in *ProductInput) ApplyTo(p *Product) {
	p.Name = in.Name
	p.Category = in.Category
	p.Description = in.Description
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.ImageURL != "" {
		p.ImageURL = in.ImageURL
	}
}
