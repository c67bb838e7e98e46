package gen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/moogiio/openapi-apiclient/internal/spec"
)

var pathParamRe = regexp.MustCompile(`\{([^{}]+)\}`)

// SynthesizeFunction renders one exported TypeScript wrapper function for a
// single (method, path) operation. The function name is the lowercased HTTP
// method concatenated with the identifier fragment; formals are the declared
// path parameters in declaration order (names used verbatim), followed by a
// trailing payload parameter when the operation carries a request body. The
// body is a single delegation to the dispatch helper's verb-named accessor.
//
// The method string is not validated against the helper's accessor set: an
// unrecognized method still synthesizes a call to a same-named accessor that
// does not exist on the helper.
func SynthesizeFunction(method, relPath, ident string, op spec.Operation) string {
	verb := strings.ToLower(method)

	var formals []string
	for _, p := range op.Parameters {
		if p.In != "path" {
			continue
		}
		formals = append(formals, p.Name+": string")
	}
	if op.HasRequestBody {
		formals = append(formals, "payload: unknown")
	}

	args := []string{pathExpression(relPath)}
	if op.HasRequestBody {
		args = append(args, "payload")
	}

	return fmt.Sprintf("export function %s%s(%s): Promise<unknown> {\n  return api.%s(%s);\n}",
		verb, ident, strings.Join(formals, ", "), verb, strings.Join(args, ", "))
}

// pathExpression emits the call-site path: a plain single-quoted literal when
// the relative path has no placeholders, otherwise a template literal with
// each {name} rewritten to ${name}.
func pathExpression(relPath string) string {
	if !strings.Contains(relPath, "{") {
		return "'" + relPath + "'"
	}
	interpolated := pathParamRe.ReplaceAllString(relPath, "${$1}")
	return "`" + interpolated + "`"
}
