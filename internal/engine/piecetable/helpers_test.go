package piecetable

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func mustTable(t testing.TB, s string) *PieceTable {
	t.Helper()
	pt, err := FromString(s)
	if err != nil {
		t.Fatalf("FromString(%q) failed: %v", s, err)
	}
	return pt
}

func mustInsert(t testing.TB, pt *PieceTable, offset int, text string) {
	t.Helper()
	if err := pt.Insert(offset, text); err != nil {
		t.Fatalf("Insert(%d, %q) failed: %v", offset, text, err)
	}
}

// checkText verifies the materialized document and the cached metrics.
func checkText(t testing.TB, pt *PieceTable, want string) {
	t.Helper()
	if diff := cmp.Diff(want, string(pt.Materialize())); diff != "" {
		t.Fatalf("Materialize() mismatch (-want +got):\n%s", diff)
	}
	if got := pt.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	checkInvariants(t, pt)
}

func checkInvariants(t testing.TB, pt *PieceTable) {
	t.Helper()
	if err := pt.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}

	text := pt.String()
	sum := 0
	for _, p := range pt.Pieces() {
		sum += p.Codepoints()
	}
	if got := pt.TotalCodepointCount(); got != sum {
		t.Errorf("TotalCodepointCount() = %d, piece sum %d", got, sum)
	}
	if got, want := pt.TotalCodepointCount(), utf8.RuneCountInString(text); got != want {
		t.Errorf("TotalCodepointCount() = %d, want %d", got, want)
	}
	if got, want := pt.LineCount(), strings.Count(text, "\n")+1; got != want {
		t.Errorf("LineCount() = %d, want %d", got, want)
	}
	if got, want := pt.Len(), len(text); got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}
