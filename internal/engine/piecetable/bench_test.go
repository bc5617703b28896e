package piecetable

import (
	"strings"
	"testing"
)

func benchDocument(b *testing.B) *PieceTable {
	b.Helper()
	return mustTable(b, strings.Repeat("The quick brown fox jumps over the lazy dog.\n", 2000))
}

func BenchmarkInsertTyping(b *testing.B) {
	pt := benchDocument(b)
	offset := pt.TotalCodepointCount() / 2

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := pt.Insert(offset, "x"); err != nil {
			b.Fatal(err)
		}
		offset++
	}
}

func BenchmarkBackspace(b *testing.B) {
	pt := benchDocument(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		offset := pt.TotalCodepointCount() / 2
		if _, err := pt.Backspace(offset); err != nil {
			b.Fatal(err)
		}
		if err := pt.Insert(offset-1, "x"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkClampPosition(b *testing.B) {
	pt := benchDocument(b)
	for i := 0; i < 100; i++ {
		mustInsert(b, pt, i*37, "edit\n")
	}
	lines := pt.LineCount()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pt.ClampPosition(i%lines, 20)
	}
}

func BenchmarkMaterializeFromLine(b *testing.B) {
	pt := benchDocument(b)
	lines := pt.LineCount()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pt.MaterializeFromLine(i % lines)
	}
}
