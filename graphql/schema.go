// Package graphql holds the storefront GraphQL contract and the per-request
// store view.
package graphql

import (
	"strings"
	"sync"

	_ "embed"
)

// schemaBase declares products, facets, categories, product and _extension.
//
//go:embed schema.graphqls
var schemaBase string

var (
	schemaMu         sync.Mutex
	schemaExtensions []string
)

// RegisterSchemaExtension appends SDL to the storefront schema, typically the
// types a custom _extension resolver returns. Blank input is ignored.
// Call from init(); the schema is parsed once when the server starts.
func RegisterSchemaExtension(sdl string) {
	sdl = strings.TrimSpace(sdl)
	if sdl == "" {
		return
	}
	schemaMu.Lock()
	defer schemaMu.Unlock()
	schemaExtensions = append(schemaExtensions, sdl)
}

// Schema returns the embedded SDL followed by registered extensions.
func Schema() string {
	schemaMu.Lock()
	defer schemaMu.Unlock()
	if len(schemaExtensions) == 0 {
		return schemaBase
	}
	var b strings.Builder
	b.WriteString(strings.TrimRight(schemaBase, "\n"))
	for _, ext := range schemaExtensions {
		b.WriteString("\n\n")
		b.WriteString(ext)
	}
	b.WriteString("\n")
	return b.String()
}
