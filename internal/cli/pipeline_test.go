package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const minimalSpecYAML = "" +
	"openapi: 3.0.0\n" +
	"info:\n" +
	"  title: Test API\n" +
	"  version: '1.0.0'\n" +
	"servers:\n" +
	"  - url: https://api.test.example\n" +
	"paths:\n" +
	"  /hello:\n" +
	"    get:\n" +
	"      summary: Hello\n" +
	"      responses:\n" +
	"        '200':\n" +
	"          description: ok\n"

// JSON document from which two wrapper functions and a common /api root are
// expected; declaration order of keys is significant.
const usersSpecJSON = `{
  "openapi": "3.0.0",
  "info": {"title": "Users API", "version": "1.0.0"},
  "paths": {
    "/api/users": {
      "get": {"responses": {"200": {"description": "ok"}}}
    },
    "/api/users/{id}": {
      "get": {
        "parameters": [{"in": "path", "name": "id", "required": true, "schema": {"type": "string"}}],
        "responses": {"200": {"description": "ok"}}
      }
    }
  }
}`

func captureStdout(fn func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() { os.Stdout = old }()
	fn()
	_ = w.Close()
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestGeneratePipeline_DryRun(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "spec.yaml")
	if err := os.WriteFile(specPath, []byte(minimalSpecYAML), 0o600); err != nil {
		t.Fatalf("write spec: %v", err)
	}
	outDir := filepath.Join(dir, "out")

	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"generate", "--input", specPath, "--out", outDir, "--dry-run"})

	out := captureStdout(func() {
		if err := root.Execute(); err != nil {
			t.Fatalf("execute: %v", err)
		}
	})
	if !strings.Contains(out, "Planned writes to") {
		t.Fatalf("expected dry-run plan output, got: %s", out)
	}
	// Dry-run should not create the directory
	if _, err := os.Stat(outDir); err == nil {
		t.Fatalf("expected no writes on dry-run")
	}
}

func TestGeneratePipeline_WritesClient(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "spec.json")
	if err := os.WriteFile(specPath, []byte(usersSpecJSON), 0o600); err != nil {
		t.Fatalf("write spec: %v", err)
	}
	outDir := filepath.Join(dir, "out")

	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"generate", "--input", specPath, "--out", outDir, "--base-url", "https://example.com"})

	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	api, err := os.ReadFile(filepath.Join(outDir, "api.ts"))
	if err != nil {
		t.Fatalf("read api.ts: %v", err)
	}
	s := string(api)
	if !strings.Contains(s, "return api.get('/users');") {
		t.Fatalf("common prefix not stripped from literal path:\n%s", s)
	}
	if !strings.Contains(s, "getUsersId(id: string)") || !strings.Contains(s, "return api.get(`/users/${id}`);") {
		t.Fatalf("path-parameter wrapper wrong:\n%s", s)
	}
	if strings.Index(s, "getUsers(") > strings.Index(s, "getUsersId(") {
		t.Fatalf("declaration order not preserved:\n%s", s)
	}

	if _, err := os.Stat(filepath.Join(outDir, "client.ts")); err != nil {
		t.Fatalf("missing client.ts: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "types.ts")); err != nil {
		t.Fatalf("missing types.ts: %v", err)
	}
}

func TestGeneratePipeline_BaseURLFromServers(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "spec.yaml")
	if err := os.WriteFile(specPath, []byte(minimalSpecYAML), 0o600); err != nil {
		t.Fatalf("write spec: %v", err)
	}
	outDir := filepath.Join(dir, "out")

	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"generate", "--input", specPath, "--out", outDir})

	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	api, err := os.ReadFile(filepath.Join(outDir, "api.ts"))
	if err != nil {
		t.Fatalf("read api.ts: %v", err)
	}
	if !strings.Contains(string(api), "const api = new Client('https://api.test.example');") {
		t.Fatalf("server URL not used as base URL:\n%s", api)
	}
}

func TestGeneratePipeline_MissingInputFails(t *testing.T) {
	dir := t.TempDir()
	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"generate", "--input", filepath.Join(dir, "nope.yaml"), "--out", filepath.Join(dir, "out")})

	if err := root.Execute(); err == nil {
		t.Fatalf("expected error for missing input document")
	}
}
