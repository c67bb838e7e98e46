package gen

import "testing"

func TestCommonPrefix_Empty(t *testing.T) {
	t.Parallel()
	if got := CommonPrefix(nil); got != "" {
		t.Fatalf("expected empty prefix, got %q", got)
	}
	if got := CommonPrefix([]string{}); got != "" {
		t.Fatalf("expected empty prefix, got %q", got)
	}
}

func TestCommonPrefix_SingleElementUnchanged(t *testing.T) {
	t.Parallel()
	if got := CommonPrefix([]string{"/a/b/c"}); got != "/a/b/c" {
		t.Fatalf("expected /a/b/c, got %q", got)
	}
	// A lone trailing separator is not stripped for single-element input.
	if got := CommonPrefix([]string{"/api/"}); got != "/api/" {
		t.Fatalf("expected /api/, got %q", got)
	}
}

func TestCommonPrefix_SharedSegment(t *testing.T) {
	t.Parallel()
	if got := CommonPrefix([]string{"/api/users", "/api/orders"}); got != "/api" {
		t.Fatalf("expected /api, got %q", got)
	}
}

func TestCommonPrefix_NoAgreement(t *testing.T) {
	t.Parallel()
	if got := CommonPrefix([]string{"/a", "/b"}); got != "" {
		// "/" is stripped down to empty by the trailing-separator rule.
		t.Fatalf("expected empty prefix, got %q", got)
	}
}

func TestCommonPrefix_MidSegment(t *testing.T) {
	t.Parallel()
	// Character-based shrink can split a segment; that is the contract.
	if got := CommonPrefix([]string{"/apples", "/applied"}); got != "/appl" {
		t.Fatalf("expected /appl, got %q", got)
	}
}

func TestCommonPrefix_PathContainment(t *testing.T) {
	t.Parallel()
	// When one path is a literal prefix of another, the prefix backs off to
	// the last separator so both paths keep a relative remainder.
	if got := CommonPrefix([]string{"/api/users", "/api/users/{id}"}); got != "/api" {
		t.Fatalf("expected /api, got %q", got)
	}
	if got := CommonPrefix([]string{"/users", "/users/{id}"}); got != "" {
		t.Fatalf("expected empty prefix, got %q", got)
	}
}

func TestCommonPrefix_TrailingSeparatorStripped(t *testing.T) {
	t.Parallel()
	if got := CommonPrefix([]string{"/api/", "/api/users"}); got != "/api" {
		t.Fatalf("expected /api, got %q", got)
	}
}

func TestCommonPrefix_IdempotentOnSingleton(t *testing.T) {
	t.Parallel()
	inputs := [][]string{
		nil,
		{"/a/b/c"},
		{"/api/users", "/api/orders"},
		{"/api/", "/api/users"},
		{"/a", "/b"},
	}
	for _, paths := range inputs {
		once := CommonPrefix(paths)
		twice := CommonPrefix([]string{once})
		if once != twice {
			t.Fatalf("not idempotent for %v: %q vs %q", paths, once, twice)
		}
	}
}
