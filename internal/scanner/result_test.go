package scanner

import (
	"reflect"
	"testing"
)

func TestResult_Extensions(t *testing.T) {
	r := Result{
		".txt": {"b.txt", "a.txt"},
		"":     {"README"},
		".go":  {"main.go"},
	}

	want := []string{"", ".go", ".txt"}
	if got := r.Extensions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Extensions() = %v, want %v", got, want)
	}
}

func TestResult_TotalAndCount(t *testing.T) {
	r := Result{
		".txt": {"a.txt", "b.txt"},
		".pdf": {"c.pdf"},
		"":     {"d"},
	}

	if got := r.Total(); got != 4 {
		t.Errorf("Total() = %d, want 4", got)
	}
	if got := r.Count(".txt"); got != 2 {
		t.Errorf("Count(.txt) = %d, want 2", got)
	}
	if got := r.Count("txt"); got != 2 {
		t.Errorf("Count(txt) = %d, want 2 (normalized)", got)
	}
	if got := r.Count(".TXT"); got != 2 {
		t.Errorf("Count(.TXT) = %d, want 2 (normalized)", got)
	}
	if got := r.Count(""); got != 1 {
		t.Errorf("Count(\"\") = %d, want 1", got)
	}
	if got := r.Count(".missing"); got != 0 {
		t.Errorf("Count(.missing) = %d, want 0", got)
	}
}

func TestResult_Merge(t *testing.T) {
	r := Result{
		".txt": {"a.txt"},
		".pdf": {"b.pdf"},
	}
	other := Result{
		".txt": {"c.txt", "d.txt"},
		"":     {"e"},
	}

	r.Merge(other)

	want := Result{
		".txt": {"a.txt", "c.txt", "d.txt"},
		".pdf": {"b.pdf"},
		"":     {"e"},
	}
	if !reflect.DeepEqual(r, want) {
		t.Errorf("Merge() = %v, want %v", r, want)
	}
}

func TestResult_MergeEmpty(t *testing.T) {
	r := Result{".txt": {"a.txt"}}
	r.Merge(Result{})

	if r.Total() != 1 {
		t.Errorf("merging an empty result changed totals: %v", r)
	}
}
