package tsemitter

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// renderTypesTS renders components/schemas as TypeScript declarations, one
// per schema name in sorted order. Object schemas become interfaces; enums
// become literal unions; everything else becomes a type alias.
func renderTypesTS(doc *openapi3.T) string {
	var b strings.Builder
	b.WriteString("// Data shapes generated from the API description.\n")

	if doc == nil || doc.Components == nil || len(doc.Components.Schemas) == 0 {
		b.WriteString("\nexport {};\n")
		return b.String()
	}

	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		b.WriteString("\n")
		b.WriteString(renderSchemaDecl(name, doc.Components.Schemas[name]))
	}
	return b.String()
}

func renderSchemaDecl(name string, ref *openapi3.SchemaRef) string {
	if ref == nil || (ref.Ref == "" && ref.Value == nil) {
		return fmt.Sprintf("export type %s = unknown;\n", name)
	}
	if ref.Ref != "" {
		return fmt.Sprintf("export type %s = %s;\n", name, refName(ref.Ref))
	}
	s := ref.Value
	if len(s.Enum) > 0 {
		return fmt.Sprintf("export type %s = %s;\n", name, enumUnion(s.Enum))
	}
	if s.Type == "object" || len(s.Properties) > 0 {
		return renderInterface(name, s)
	}
	return fmt.Sprintf("export type %s = %s;\n", name, tsType(ref))
}

func renderInterface(name string, s *openapi3.Schema) string {
	required := make(map[string]struct{}, len(s.Required))
	for _, r := range s.Required {
		required[r] = struct{}{}
	}

	props := make([]string, 0, len(s.Properties))
	for prop := range s.Properties {
		props = append(props, prop)
	}
	sort.Strings(props)

	var b strings.Builder
	fmt.Fprintf(&b, "export interface %s {\n", name)
	for _, prop := range props {
		optional := "?"
		if _, ok := required[prop]; ok {
			optional = ""
		}
		fmt.Fprintf(&b, "  %s%s: %s;\n", propertyKey(prop), optional, tsType(s.Properties[prop]))
	}
	b.WriteString("}\n")
	return b.String()
}

// tsType maps a schema reference to a TypeScript type expression.
func tsType(ref *openapi3.SchemaRef) string {
	if ref == nil {
		return "unknown"
	}
	if ref.Ref != "" {
		return refName(ref.Ref)
	}
	s := ref.Value
	if s == nil {
		return "unknown"
	}
	if len(s.Enum) > 0 {
		return enumUnion(s.Enum)
	}
	switch s.Type {
	case "string":
		return "string"
	case "integer", "number":
		return "number"
	case "boolean":
		return "boolean"
	case "array":
		elem := tsType(s.Items)
		if strings.ContainsAny(elem, " |") {
			return "(" + elem + ")[]"
		}
		return elem + "[]"
	case "object":
		return "Record<string, unknown>"
	default:
		return "unknown"
	}
}

func enumUnion(values []any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		switch val := v.(type) {
		case string:
			parts = append(parts, "'"+strings.ReplaceAll(val, "'", `\'`)+"'")
		case nil:
			parts = append(parts, "null")
		default:
			parts = append(parts, fmt.Sprintf("%v", val))
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, " | ")
}

func refName(ref string) string {
	parts := strings.Split(ref, "/")
	return parts[len(parts)-1]
}

var identRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

func propertyKey(name string) string {
	if identRe.MatchString(name) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", `\'`) + "'"
}
