// internal/common/validation/schema.go
package validation

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"

	stderrors "fitting-engine/internal/common/errors"
)

// Schemas for externally supplied catalog documents. A document failing its
// schema is a non-retryable data-integrity error; the engine never repairs
// malformed catalog data.

var sizeChartSchema = map[string]interface{}{
	"type": "array",
	"items": map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"name", "chest_min", "chest_max", "waist_min", "waist_max"},
		"properties": map[string]interface{}{
			"name":      map[string]interface{}{"type": "string", "minLength": 1},
			"chest_min": map[string]interface{}{"type": "number", "minimum": 0},
			"chest_max": map[string]interface{}{"type": "number", "minimum": 0},
			"waist_min": map[string]interface{}{"type": "number", "minimum": 0},
			"waist_max": map[string]interface{}{"type": "number", "minimum": 0},
		},
	},
}

var productCatalogSchema = map[string]interface{}{
	"type": "array",
	"items": map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"id", "name", "category", "gender", "fit_type"},
		"properties": map[string]interface{}{
			"id":       map[string]interface{}{"type": "string", "minLength": 1},
			"name":     map[string]interface{}{"type": "string", "minLength": 1},
			"category": map[string]interface{}{"type": "string", "minLength": 1},
			"gender": map[string]interface{}{
				"type": "string",
				"enum": []interface{}{"men", "women", "unisex"},
			},
			"fit_type": map[string]interface{}{
				"type": "string",
				"enum": []interface{}{"slim", "regular", "oversize"},
			},
		},
	},
}

// ValidateSizeChart validates a size-chart JSON document (e.g. a chart import
// payload) before it reaches the catalog store.
func ValidateSizeChart(doc []byte) error {
	return validate(sizeChartSchema, doc, stderrors.NewSizeChartInvalidError)
}

// ValidateProductCatalog validates a product catalog JSON document.
func ValidateProductCatalog(doc []byte) error {
	return validate(productCatalogSchema, doc, stderrors.NewCatalogDataInvalidError)
}

func validate(schema map[string]interface{}, doc []byte, wrap func(string) *stderrors.StandardError) error {
	schemaLoader := gojsonschema.NewGoLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return wrap(err.Error())
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return wrap(strings.Join(errs, "; "))
	}

	return nil
}
