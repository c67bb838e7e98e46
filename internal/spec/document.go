package spec

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the ordered view of an API description: paths in declaration
// order, and within each path the operations in declaration order. Generators
// depend on this ordering to keep output diff-stable across regenerations.
type Document struct {
	Paths []PathItem
}

// PathItem holds one endpoint path and its declared operations.
type PathItem struct {
	Path       string
	Operations []OperationEntry
}

// OperationEntry pairs an HTTP method key with its operation.
type OperationEntry struct {
	Method    string
	Operation Operation
}

// Operation describes one method on one endpoint path. Only the details the
// generators consume are kept: declared parameters, request-body presence,
// and tags for filtering.
type Operation struct {
	Parameters     []Parameter
	HasRequestBody bool
	Tags           []string
}

// Parameter is a declared parameter; Name is used verbatim as a generated
// formal parameter name when In is "path".
type Parameter struct {
	In   string
	Name string
}

// PathKeys returns the endpoint paths in declaration order.
func (d *Document) PathKeys() []string {
	keys := make([]string, 0, len(d.Paths))
	for _, item := range d.Paths {
		keys = append(keys, item.Path)
	}
	return keys
}

// DocOption configures how the ordered document is built.
type DocOption func(*docConfig)

type docConfig struct {
	includeTags map[string]struct{}
	excludeTags map[string]struct{}
}

// WithIncludeTags keeps only operations that carry at least one of the given tags.
func WithIncludeTags(tags []string) DocOption {
	return func(c *docConfig) {
		if len(tags) == 0 {
			return
		}
		if c.includeTags == nil {
			c.includeTags = make(map[string]struct{}, len(tags))
		}
		for _, t := range tags {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			c.includeTags[t] = struct{}{}
		}
	}
}

// WithExcludeTags removes operations that carry any of the given tags.
func WithExcludeTags(tags []string) DocOption {
	return func(c *docConfig) {
		if len(tags) == 0 {
			return
		}
		if c.excludeTags == nil {
			c.excludeTags = make(map[string]struct{}, len(tags))
		}
		for _, t := range tags {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			c.excludeTags[t] = struct{}{}
		}
	}
}

// pathItemFixedKeys are path-item fields that are not HTTP methods.
var pathItemFixedKeys = map[string]struct{}{
	"$ref":        {},
	"summary":     {},
	"description": {},
	"servers":     {},
	"parameters":  {},
}

// BuildDocument parses raw document bytes into the ordered Document model.
// YAML mapping nodes preserve key order, which kin-openapi's map-based model
// does not, so this is a separate pass over the same bytes the loader
// validated. JSON input parses fine since YAML is a superset.
//
// Any path-item key that is not a known fixed field is taken as an HTTP
// method; unrecognized methods are carried through unvalidated.
func BuildDocument(raw []byte, opts ...DocOption) (*Document, error) {
	cfg := &docConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, &SpecError{Code: ParseError, Message: fmt.Sprintf("spec: parse document: %v", err), Cause: err}
	}
	mapping := documentMapping(&root)
	if mapping == nil {
		return nil, &SpecError{Code: ParseError, Message: "spec: document root is not a mapping"}
	}

	doc := &Document{}
	pathsNode := mappingValue(mapping, "paths")
	if pathsNode == nil || pathsNode.Kind != yaml.MappingNode {
		return doc, nil
	}

	for i := 0; i+1 < len(pathsNode.Content); i += 2 {
		key := pathsNode.Content[i]
		val := pathsNode.Content[i+1]
		if val.Kind != yaml.MappingNode {
			continue
		}
		item := PathItem{Path: key.Value}
		for j := 0; j+1 < len(val.Content); j += 2 {
			methodKey := val.Content[j]
			opNode := val.Content[j+1]
			if _, fixed := pathItemFixedKeys[methodKey.Value]; fixed {
				continue
			}
			if opNode.Kind != yaml.MappingNode {
				continue
			}
			op := buildOperation(opNode)
			if !allowByTags(op.Tags, cfg) {
				continue
			}
			item.Operations = append(item.Operations, OperationEntry{
				Method:    strings.ToLower(methodKey.Value),
				Operation: op,
			})
		}
		if len(item.Operations) == 0 {
			continue
		}
		doc.Paths = append(doc.Paths, item)
	}

	return doc, nil
}

func buildOperation(node *yaml.Node) Operation {
	op := Operation{}
	if mappingValue(node, "requestBody") != nil {
		op.HasRequestBody = true
	}
	if params := mappingValue(node, "parameters"); params != nil && params.Kind == yaml.SequenceNode {
		for _, p := range params.Content {
			if p.Kind != yaml.MappingNode {
				continue
			}
			in := scalarValue(p, "in")
			name := scalarValue(p, "name")
			// Swagger v2 declares the request payload as a body parameter.
			if strings.EqualFold(in, "body") {
				op.HasRequestBody = true
				continue
			}
			op.Parameters = append(op.Parameters, Parameter{In: in, Name: name})
		}
	}
	if tags := mappingValue(node, "tags"); tags != nil && tags.Kind == yaml.SequenceNode {
		for _, tag := range tags.Content {
			t := strings.TrimSpace(tag.Value)
			if t != "" {
				op.Tags = append(op.Tags, t)
			}
		}
	}
	return op
}

func allowByTags(tags []string, cfg *docConfig) bool {
	if len(cfg.includeTags) > 0 {
		ok := false
		for _, t := range tags {
			if _, yes := cfg.includeTags[t]; yes {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if len(cfg.excludeTags) > 0 {
		for _, t := range tags {
			if _, blocked := cfg.excludeTags[t]; blocked {
				return false
			}
		}
	}
	return true
}

func documentMapping(root *yaml.Node) *yaml.Node {
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil
	}
	return root
}

func mappingValue(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func scalarValue(mapping *yaml.Node, key string) string {
	if v := mappingValue(mapping, key); v != nil && v.Kind == yaml.ScalarNode {
		return v.Value
	}
	return ""
}
