package gen

import (
	"fmt"
	"strings"

	"github.com/moogiio/openapi-apiclient/internal/spec"
)

// Transform runs the full generation pass over an ordered document: compute
// the common root across all declared paths, then synthesize one wrapper
// function per (path, method) pair. Paths and methods are visited strictly in
// document declaration order so output stays diff-stable across regenerations
// of an unchanged document.
//
// The unit opens with the dispatch-helper import and the client construction;
// baseURL is baked in as a constructor argument at generation time.
func Transform(doc *spec.Document, baseURL string) *GeneratedUnit {
	prefix := CommonPrefix(doc.PathKeys())

	unit := &GeneratedUnit{}
	unit.Append(
		"import { Client } from './client';",
		"",
		fmt.Sprintf("const api = new Client(%s);", tsString(baseURL)),
	)

	for _, item := range doc.Paths {
		rel := strings.TrimPrefix(item.Path, prefix)
		ident := PathIdentifier(rel)
		for _, entry := range item.Operations {
			unit.Append("", SynthesizeFunction(entry.Method, rel, ident, entry.Operation))
		}
	}

	return unit
}

// tsString renders a single-quoted TypeScript string literal.
func tsString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return "'" + s + "'"
}
