package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title string `json:"title" validate:"required"`
	Count *int   `json:"count" validate:"required,gte=0"`
	Note  string `json:"note"`
}

func TestValidateStructUsesJSONNames(t *testing.T) {
	negative := -1
	errs := ValidateStruct(&sample{Count: &negative})

	require.Len(t, errs, 2)
	assert.Equal(t, "title", errs[0].FailedField)
	assert.Equal(t, "required", errs[0].Tag)
	assert.Equal(t, "count", errs[1].FailedField)
	assert.Equal(t, "gte", errs[1].Tag)
	assert.Equal(t, "0", errs[1].Value)
}

func TestValidateStructMissingPointer(t *testing.T) {
	errs := ValidateStruct(&sample{Title: "ok"})

	require.Len(t, errs, 1)
	assert.Equal(t, "count", errs[0].FailedField)
	assert.Equal(t, "required", errs[0].Tag)
}

func TestValidateStructValid(t *testing.T) {
	zero := 0
	assert.Empty(t, ValidateStruct(&sample{Title: "ok", Count: &zero}))
}

func TestTranslate(t *testing.T) {
	errs := []*ErrorResponse{
		{FailedField: "title", Tag: "required"},
		{FailedField: "count", Tag: "gte", Value: "0"},
		{FailedField: "count", Tag: "required"},
	}

	got := Translate(errs, map[string]string{
		"title.required": "Title is required",
	})

	assert.Equal(t, FieldErrors{
		"title": "Title is required",
		"count": "count is invalid",
	}, got)
	assert.Equal(t, "validation failed: count: count is invalid; title: Title is required", got.Error())
	assert.Nil(t, Translate(nil, nil))
}
