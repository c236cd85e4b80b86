// Package contracts is the property schema registry: it owns the mapping from
// a property type to the attribute set of its variant, coerces raw attribute
// bags into typed variants and validates them against the embedded JSON
// Schemas.
package contracts

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strconv"
	"strings"

	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/schemas"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var variantByDir = map[string]domain.PropertyType{
	"land":          domain.TypeLand,
	"field":         domain.TypeField,
	"apartment":     domain.TypeApartment,
	"commercial":    domain.TypeCommercial,
	"shared-parcel": domain.TypeSharedParcel,
}

var compiledSchemas = make(map[domain.PropertyType]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	err := fs.WalkDir(schemas.SchemasFS, "properties", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		file, err := schemas.SchemasFS.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		return compiler.AddResource(path, file)
	})
	if err != nil {
		log.Fatalf("error walking and adding schema resources: %v", err)
	}

	err = fs.WalkDir(schemas.SchemasFS, "properties", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		kind, ok := variantByDir[variantDirFromPath(path)]
		if !ok {
			log.Printf("WARNING: no property variant for schema %s. Skipping.", path)
			return nil
		}
		schema, err := compiler.Compile(path)
		if err != nil {
			return fmt.Errorf("could not compile schema %s: %w", path, err)
		}
		compiledSchemas[kind] = schema
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and compiling schemas: %v", err)
	}
}

// variantDirFromPath turns "properties/shared-parcel/v1.json" into "shared-parcel".
func variantDirFromPath(path string) string {
	trimmed := strings.TrimPrefix(path, "properties/")
	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 {
		return ""
	}
	return parts[0]
}

// AttributesFor returns the attribute names the given variant owns, in
// declaration order.
func AttributesFor(kind domain.PropertyType) []string {
	specs, ok := variantFields[kind]
	if !ok {
		return nil
	}
	names := make([]string, len(specs))
	for i, spec := range specs {
		names[i] = spec.name
	}
	return names
}

// Coerce turns a raw attribute bag into the typed variant selected by kind:
// fields outside the variant's set are dropped, numeric-looking strings become
// numbers, known labels of the closed enumerations become ordinals and unknown
// string values pass through untouched. The result is validated against the
// variant's JSON Schema and its derived pricing is recomputed.
func Coerce(kind domain.PropertyType, raw map[string]any) (domain.VariantAttributes, error) {
	specs, ok := variantFields[kind]
	if !ok {
		return nil, fmt.Errorf("unknown property type %d", kind)
	}

	coerced := make(map[string]any, len(specs))
	for _, spec := range specs {
		value, present := raw[spec.name]
		if !present || value == nil {
			continue
		}
		if v, keep := coerceValue(spec, value); keep {
			coerced[spec.name] = v
		}
	}

	if schema, ok := compiledSchemas[kind]; ok {
		if err := schema.Validate(coerced); err != nil {
			return nil, fmt.Errorf("attribute validation failed for %s: %w", kind, err)
		}
	}

	encoded, err := json.Marshal(coerced)
	if err != nil {
		return nil, fmt.Errorf("re-encoding coerced attributes: %w", err)
	}
	variant := domain.NewVariant(kind)
	if err := json.Unmarshal(encoded, variant); err != nil {
		return nil, fmt.Errorf("decoding coerced attributes: %w", err)
	}

	domain.RecomputeDerived(variant)
	return variant, nil
}

// ValidateVariant checks an already-typed variant against its JSON Schema.
func ValidateVariant(v domain.VariantAttributes) error {
	if v == nil {
		return fmt.Errorf("missing type-specific attributes")
	}
	schema, ok := compiledSchemas[v.Kind()]
	if !ok {
		return nil
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var bag map[string]any
	if err := json.Unmarshal(encoded, &bag); err != nil {
		return err
	}
	if err := schema.Validate(bag); err != nil {
		return fmt.Errorf("attribute validation failed for %s: %w", v.Kind(), err)
	}
	return nil
}

func coerceValue(spec fieldSpec, value any) (any, bool) {
	switch spec.kind {
	case fieldText:
		switch v := value.(type) {
		case string:
			return v, true
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), true
		}
		return nil, false

	case fieldNumber:
		switch v := value.(type) {
		case float64:
			return v, true
		case int:
			return float64(v), true
		case json.Number:
			if f, err := v.Float64(); err == nil {
				return f, true
			}
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return f, true
			}
		}
		// numeric fields must be numeric after coercion; anything else is dropped
		return nil, false

	case fieldFlag:
		switch v := value.(type) {
		case bool:
			return v, true
		case string:
			if b, err := strconv.ParseBool(v); err == nil {
				return b, true
			}
		}
		return nil, false

	case fieldEnum:
		switch v := value.(type) {
		case float64:
			return v, true
		case int:
			return float64(v), true
		case string:
			if ordinal, found := spec.labels[v]; found {
				return float64(ordinal), true
			}
			if n, err := strconv.Atoi(v); err == nil {
				return float64(n), true
			}
			// forward compatibility: keep server-added labels as-is
			return v, true
		}
		return nil, false
	}
	return nil, false
}
