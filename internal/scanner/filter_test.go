package scanner

import (
	"strings"
	"testing"
	"time"
)

func int64p(n int64) *int64 { return &n }

func TestNormalizeFilterExt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{".txt", ".txt"},
		{"txt", ".txt"},
		{".TXT", ".txt"},
		{"Md", ".md"},
		{" .log ", ".log"},
		{".", "."},
		{"", ""},
		{"  ", ""},
	}

	for _, tt := range tests {
		if got := normalizeFilterExt(tt.in); got != tt.want {
			t.Errorf("normalizeFilterExt(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatcher_PipelineOrder(t *testing.T) {
	cutoff := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	before := cutoff.Add(-time.Hour)
	after := cutoff.Add(time.Hour)

	// One filter that can reject on every stage; the reported reason must
	// always come from the first failing stage.
	filter := Filter{
		SkipExtensions: []string{".log"},
		PassExtensions: []string{".txt", ".log"},
		MinSize:        int64p(100),
		MaxSize:        int64p(1000),
		ModifiedBefore: &cutoff,
	}
	m := newMatcher(filter)

	tests := []struct {
		name       string
		entry      FileEntry
		wantMatch  bool
		wantReason SkipReason
	}{
		{
			name:       "passes every stage",
			entry:      FileEntry{Ext: ".txt", Size: 500, ModTime: before},
			wantMatch:  true,
			wantReason: SkipNone,
		},
		{
			name:       "skip list beats pass list",
			entry:      FileEntry{Ext: ".log", Size: 500, ModTime: before},
			wantMatch:  false,
			wantReason: SkipExtensionListed,
		},
		{
			name:       "pass list checked before sizes",
			entry:      FileEntry{Ext: ".md", Size: 1, ModTime: after},
			wantMatch:  false,
			wantReason: SkipExtensionNotPassed,
		},
		{
			name:       "min size checked before max size",
			entry:      FileEntry{Ext: ".txt", Size: 50, ModTime: after},
			wantMatch:  false,
			wantReason: SkipBelowMinSize,
		},
		{
			name:       "max size checked before cutoff",
			entry:      FileEntry{Ext: ".txt", Size: 5000, ModTime: after},
			wantMatch:  false,
			wantReason: SkipAboveMaxSize,
		},
		{
			name:       "cutoff checked last",
			entry:      FileEntry{Ext: ".txt", Size: 500, ModTime: after},
			wantMatch:  false,
			wantReason: SkipModifiedAfter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, reason := m.match(tt.entry)
			if match != tt.wantMatch {
				t.Errorf("match = %v, want %v", match, tt.wantMatch)
			}
			if reason != tt.wantReason {
				t.Errorf("reason = %v, want %v", reason, tt.wantReason)
			}
		})
	}
}

func TestMatcher_InclusiveBounds(t *testing.T) {
	cutoff := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	m := newMatcher(Filter{
		MinSize:        int64p(100),
		MaxSize:        int64p(100),
		ModifiedBefore: &cutoff,
	})

	entry := FileEntry{Ext: ".txt", Size: 100, ModTime: cutoff}
	match, reason := m.match(entry)
	if !match {
		t.Errorf("entry exactly at min, max and cutoff rejected with %v, want match", reason)
	}

	if match, _ := m.match(FileEntry{Size: 99, ModTime: cutoff}); match {
		t.Error("entry one byte below min should be rejected")
	}
	if match, _ := m.match(FileEntry{Size: 101, ModTime: cutoff}); match {
		t.Error("entry one byte above max should be rejected")
	}
	if match, _ := m.match(FileEntry{Size: 100, ModTime: cutoff.Add(time.Nanosecond)}); match {
		t.Error("entry modified just after cutoff should be rejected")
	}
}

func TestMatcher_ZeroFilterMatchesAll(t *testing.T) {
	m := newMatcher(Filter{})

	entries := []FileEntry{
		{Ext: ".txt", Size: 0},
		{Ext: "", Size: 1 << 40},
		{Ext: ".log", ModTime: time.Now()},
	}
	for _, e := range entries {
		if match, reason := m.match(e); !match {
			t.Errorf("zero filter rejected %+v with %v", e, reason)
		}
	}
}

func TestFilter_IsZero(t *testing.T) {
	if !(Filter{}).IsZero() {
		t.Error("empty filter should be zero")
	}
	if (Filter{SkipExtensions: []string{".log"}}).IsZero() {
		t.Error("filter with skip list should not be zero")
	}
	if (Filter{MinSize: int64p(0)}).IsZero() {
		t.Error("filter with a set bound should not be zero, even at 0")
	}
}

func TestFilter_String(t *testing.T) {
	if got := (Filter{}).String(); got != "unfiltered" {
		t.Errorf("zero filter String() = %q, want %q", got, "unfiltered")
	}

	cutoff := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
	f := Filter{
		SkipExtensions: []string{".log"},
		MinSize:        int64p(10),
		ModifiedBefore: &cutoff,
	}
	got := f.String()
	for _, want := range []string{"skip=[.log]", "min-size=10", "modified-before=2023-01-02T03:04:05Z"} {
		if !strings.Contains(got, want) {
			t.Errorf("Filter.String() = %q, missing %q", got, want)
		}
	}
}

func TestSkipReason_String(t *testing.T) {
	tests := []struct {
		reason SkipReason
		want   string
	}{
		{SkipNone, "none"},
		{SkipExtensionListed, "extension in skip list"},
		{SkipExtensionNotPassed, "extension not in pass list"},
		{SkipBelowMinSize, "below minimum size"},
		{SkipAboveMaxSize, "above maximum size"},
		{SkipModifiedAfter, "modified after cutoff"},
		{SkipIrregular, "not a regular file"},
		{SkipReason(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.reason.String(); got != tt.want {
			t.Errorf("SkipReason(%d).String() = %q, want %q", tt.reason, got, tt.want)
		}
	}
}
