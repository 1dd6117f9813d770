package manifest

import (
	"math"
	"testing"
)

func TestSchemaCompiles(t *testing.T) {
	schema, err := getSchema()
	if err != nil {
		t.Fatalf("getSchema() error: %v", err)
	}
	if schema == nil {
		t.Fatal("getSchema() returned nil schema")
	}
}

func TestCheckShape_FinalAnyShape(t *testing.T) {
	finals := []any{
		"text",
		int64(3),
		2.5,
		true,
		[]any{"a", int64(1)},
		map[string]any{"deep": map[string]any{"list": []any{}}},
	}
	for _, final := range finals {
		raw := map[string]any{
			"title":  "T",
			"author": "A",
			"repo":   "r",
			"stages": []any{map[string]any{"label": "l", "description": "d"}},
			"final":  final,
		}
		if err := checkShape(raw); err != nil {
			t.Errorf("final=%v: unexpected error %v", final, err)
		}
	}
}

func TestCheckShape_IssueFields(t *testing.T) {
	raw := map[string]any{
		"title":  "T",
		"author": "A",
		"repo":   "r",
		"stages": []any{map[string]any{"label": int64(1), "description": "d"}},
	}
	err := checkShape(raw)
	se, ok := err.(*ShapeError)
	if !ok {
		t.Fatalf("expected *ShapeError, got %T (%v)", err, err)
	}
	if len(se.Issues) != 1 {
		t.Fatalf("Issues = %v, want exactly one", se.Issues)
	}
	issue := se.Issues[0]
	if issue.Path != "/stages/0/label" {
		t.Errorf("Path = %q, want %q", issue.Path, "/stages/0/label")
	}
	if issue.Keyword != "type" {
		t.Errorf("Keyword = %q, want %q", issue.Keyword, "type")
	}
	if issue.Message == "" {
		t.Error("Message is empty")
	}
}

func TestNormalizeTOML(t *testing.T) {
	got := normalizeTOML(map[string]any{
		"n": math.NaN(),
		"i": []any{math.Inf(1), 1.5},
	}).(map[string]any)

	if got["n"] != "NaN" {
		t.Errorf("n = %v, want NaN", got["n"])
	}
	list := got["i"].([]any)
	if list[0] != "+Inf" {
		t.Errorf("i[0] = %v, want +Inf", list[0])
	}
	if list[1] != 1.5 {
		t.Errorf("i[1] = %v, want 1.5", list[1])
	}
}
