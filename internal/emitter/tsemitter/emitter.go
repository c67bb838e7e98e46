package tsemitter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/moogiio/openapi-apiclient/internal/gen"
	genspec "github.com/moogiio/openapi-apiclient/internal/spec"
)

// Options controls how the TypeScript emitter renders the client artifacts.
type Options struct {
	OutDir  string // required; target directory to write the artifacts
	BaseURL string // baked into the client construction; defaults to servers[0].url
	Force   bool   // overwrite existing files
	DryRun  bool   // don't write, only plan
	Verbose bool
}

// PlannedFile describes a file the emitter intends to write.
type PlannedFile struct {
	RelPath string
	Size    int
	Mode    os.FileMode
}

// Result returns the planned files and the resolved base URL.
type Result struct {
	BaseURL string
	Planned []PlannedFile
}

// Emit renders the three client artifacts: the generic dispatch helper
// (client.ts), the wrapper functions (api.ts), and the data-shape
// declarations (types.ts).
func Emit(ctx context.Context, doc *genspec.Document, oas *openapi3.T, opts Options) (*Result, error) {
	_ = ctx
	if doc == nil {
		return nil, fmt.Errorf("tsemitter: nil Document")
	}
	if strings.TrimSpace(opts.OutDir) == "" {
		return nil, fmt.Errorf("tsemitter: OutDir is required")
	}

	baseURL := strings.TrimSpace(opts.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL(oas)
	}

	unit := gen.Transform(doc, baseURL)

	// Build file map
	files := map[string][]byte{}
	files["client.ts"] = []byte(gen.RenderClient())
	files["api.ts"] = []byte(unit.String())
	files["types.ts"] = []byte(renderTypesTS(oas))

	// Plan in deterministic order
	rels := make([]string, 0, len(files))
	for p := range files {
		rels = append(rels, filepath.ToSlash(p))
	}
	sort.Strings(rels)

	planned := make([]PlannedFile, 0, len(rels))
	for _, rel := range rels {
		planned = append(planned, PlannedFile{RelPath: rel, Size: len(files[rel]), Mode: 0o644})
	}

	// Write if not dry-run
	if !opts.DryRun {
		if err := writeFiles(opts.OutDir, files, opts.Force); err != nil {
			return nil, err
		}
	}

	return &Result{BaseURL: baseURL, Planned: planned}, nil
}

func defaultBaseURL(oas *openapi3.T) string {
	if oas == nil {
		return ""
	}
	for _, s := range oas.Servers {
		if s == nil {
			continue
		}
		if u := strings.TrimSpace(s.URL); u != "" {
			return u
		}
	}
	return ""
}

func writeFiles(outDir string, files map[string][]byte, force bool) error {
	abs, err := filepath.Abs(outDir)
	if err != nil {
		return fmt.Errorf("resolve out dir: %w", err)
	}
	// Pre-flight: if directory exists and not empty and not force, error.
	if st, err := os.Stat(abs); err == nil && st.IsDir() && !force {
		entries, rerr := os.ReadDir(abs)
		if rerr == nil && len(entries) > 0 {
			return fmt.Errorf("tsemitter: output directory %q is not empty (use --force to overwrite)", abs)
		}
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	for rel, content := range files {
		p := filepath.Join(abs, rel)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
		// atomic write via temp file + rename
		tmp := p + ".tmp-" + time.Now().Format("20060102150405")
		if err := os.WriteFile(tmp, content, 0o644); err != nil {
			return fmt.Errorf("write temp %s: %w", rel, err)
		}
		if err := os.Rename(tmp, p); err != nil {
			_ = os.Remove(tmp)
			return fmt.Errorf("rename %s: %w", rel, err)
		}
	}
	return nil
}
