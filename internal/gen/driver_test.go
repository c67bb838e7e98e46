package gen

import (
	"strings"
	"testing"

	"github.com/moogiio/openapi-apiclient/internal/spec"
)

func sampleDocument() *spec.Document {
	return &spec.Document{Paths: []spec.PathItem{
		{
			Path: "/api/users",
			Operations: []spec.OperationEntry{
				{Method: "get", Operation: spec.Operation{}},
			},
		},
		{
			Path: "/api/users/{id}",
			Operations: []spec.OperationEntry{
				{Method: "get", Operation: spec.Operation{
					Parameters: []spec.Parameter{{In: "path", Name: "id"}},
				}},
			},
		},
	}}
}

func TestTransform_CommonPrefixStripped(t *testing.T) {
	t.Parallel()
	out := Transform(sampleDocument(), "https://example.com").String()

	if !strings.Contains(out, "export function getUsers(): Promise<unknown> {\n  return api.get('/users');\n}") {
		t.Fatalf("missing getUsers with prefix-stripped literal path:\n%s", out)
	}
	if !strings.Contains(out, "export function getUsersId(id: string): Promise<unknown> {\n  return api.get(`/users/${id}`);\n}") {
		t.Fatalf("missing getUsersId with interpolated path:\n%s", out)
	}
	if strings.Contains(out, "'/api/users'") {
		t.Fatalf("common prefix not stripped:\n%s", out)
	}
}

func TestTransform_Header(t *testing.T) {
	t.Parallel()
	out := Transform(sampleDocument(), "https://example.com/v1").String()
	if !strings.HasPrefix(out, "import { Client } from './client';\n") {
		t.Fatalf("missing dispatch-helper import:\n%s", out)
	}
	if !strings.Contains(out, "const api = new Client('https://example.com/v1');") {
		t.Fatalf("base URL not passed to constructor:\n%s", out)
	}
}

func TestTransform_DeclarationOrderPreserved(t *testing.T) {
	t.Parallel()
	doc := &spec.Document{Paths: []spec.PathItem{
		{Path: "/api/zebras", Operations: []spec.OperationEntry{{Method: "get"}}},
		{Path: "/api/ants", Operations: []spec.OperationEntry{{Method: "get"}}},
	}}
	out := Transform(doc, "").String()
	zi := strings.Index(out, "getZebras")
	ai := strings.Index(out, "getAnts")
	if zi < 0 || ai < 0 || zi > ai {
		t.Fatalf("declaration order not preserved (zebras=%d ants=%d):\n%s", zi, ai, out)
	}
}

func TestTransform_MethodOrderWithinPath(t *testing.T) {
	t.Parallel()
	doc := &spec.Document{Paths: []spec.PathItem{
		{Path: "/api/users", Operations: []spec.OperationEntry{
			{Method: "post", Operation: spec.Operation{HasRequestBody: true}},
			{Method: "get"},
		}},
	}}
	out := Transform(doc, "").String()
	pi := strings.Index(out, "postUsers")
	gi := strings.Index(out, "getUsers(")
	if pi < 0 || gi < 0 || pi > gi {
		t.Fatalf("method declaration order not preserved:\n%s", out)
	}
	if !strings.Contains(out, "postUsers(payload: unknown)") {
		t.Fatalf("payload formal missing:\n%s", out)
	}
}

func TestTransform_SinglePathStripsItself(t *testing.T) {
	t.Parallel()
	// A single-element document keeps its full path as the common prefix, so
	// the relative path collapses to the empty string.
	doc := &spec.Document{Paths: []spec.PathItem{
		{Path: "/only", Operations: []spec.OperationEntry{{Method: "get"}}},
	}}
	out := Transform(doc, "").String()
	if !strings.Contains(out, "export function get(): Promise<unknown> {\n  return api.get('');\n}") {
		t.Fatalf("unexpected single-path output:\n%s", out)
	}
}

func TestTransform_Deterministic(t *testing.T) {
	t.Parallel()
	a := Transform(sampleDocument(), "https://example.com").String()
	b := Transform(sampleDocument(), "https://example.com").String()
	if a != b {
		t.Fatalf("transform not deterministic")
	}
}

func TestRenderClient_Accessors(t *testing.T) {
	t.Parallel()
	out := RenderClient()
	for _, accessor := range []string{"get(", "post(", "put(", "delete("} {
		if !strings.Contains(out, accessor) {
			t.Fatalf("client missing accessor %q:\n%s", accessor, out)
		}
	}
	if !strings.Contains(out, "constructor(baseUrl: string)") {
		t.Fatalf("client missing base URL constructor:\n%s", out)
	}
	if !strings.Contains(out, "throw new Error(") {
		t.Fatalf("client missing non-success error path:\n%s", out)
	}
	if RenderClient() != out {
		t.Fatalf("client template not fixed")
	}
}
