// Package schemas embeds the JSON Schema documents for the five property
// variants. Each variant owns a disjoint attribute set; additionalProperties
// is closed so a record can never carry fields of another variant.
package schemas

import "embed"

//go:embed properties
var SchemasFS embed.FS
