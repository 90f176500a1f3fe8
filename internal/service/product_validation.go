package service

import (
	"math"

	"go-catalog-ws/internal/model"
	"go-catalog-ws/pkg/validator"
)

var productMessages = map[string]string{
	"name.required":        "Product name is required",
	"name.type":            "Product name must be a string",
	"price.required":       "Price is required",
	"price.type":           "Price must be a number",
	"price.gte":            "Price must be positive",
	"category.required":    "Category is required",
	"category.type":        "Category must be a string",
	"description.required": "Description is required",
	"description.type":     "Description must be a string",
	"stock.required":       "Stock is required",
	"stock.type":           "Stock must be a number",
	"stock.integer":        "Stock must be a whole number",
	"stock.gte":            "Stock must be positive",
	"imageUrl.type":        "Image URL must be a string",
}

// ValidateProduct checks a decoded JSON object against the product schema.
// JSON types are checked here; presence and ranges come from the validate
// tags on model.ProductInput. All fields are checked independently.
func ValidateProduct(payload map[string]interface{}) (*model.ProductInput, validator.FieldErrors) {
	input := &model.ProductInput{}
	fieldErrs := validator.FieldErrors{}

	typeError := func(field string) {
		fieldErrs[field] = productMessages[field+".type"]
	}

	stringField := func(field string, dst *string) {
		raw, ok := payload[field]
		if !ok || raw == nil {
			return
		}
		s, ok := raw.(string)
		if !ok {
			typeError(field)
			return
		}
		*dst = s
	}

	stringField("name", &input.Name)
	stringField("category", &input.Category)
	stringField("description", &input.Description)
	stringField("imageUrl", &input.ImageURL)

	if raw, ok := payload["price"]; ok && raw != nil {
		if f, ok := raw.(float64); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
			input.Price = &f
		} else {
			typeError("price")
		}
	}

	if raw, ok := payload["stock"]; ok && raw != nil {
		f, ok := raw.(float64)
		switch {
		case !ok || math.IsNaN(f) || math.IsInf(f, 0):
			typeError("stock")
		case f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32:
			fieldErrs["stock"] = productMessages["stock.integer"]
		default:
			n := int(f)
			input.Stock = &n
		}
	}

	for field, msg := range validator.Translate(validator.ValidateStruct(input), productMessages) {
		if _, typed := fieldErrs[field]; !typed {
			fieldErrs[field] = msg
		}
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	return input, nil
}
