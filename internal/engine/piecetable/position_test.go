package piecetable

import "testing"

func TestFindPosition(t *testing.T) {
	pt := mustTable(t, "ab\ncd")
	mustInsert(t, pt, 4, "XY\nZ") // "ab\nc" | "XY\nZ" | "d"

	tests := []struct {
		offset int
		want   location
		ok     bool
	}{
		{0, location{piece: 0, byteOff: 0}, true},
		{3, location{piece: 0, byteOff: 3}, true},
		{4, location{piece: 1, byteOff: 0}, true},
		{6, location{piece: 1, byteOff: 2}, true},
		{8, location{piece: 2, byteOff: 0}, true},
		{9, location{piece: 3, atEnd: true}, true},
		{10, location{}, false},
		{-1, location{}, false},
	}
	for _, tt := range tests {
		got, ok := pt.findPosition(tt.offset)
		if ok != tt.ok || got != tt.want {
			t.Errorf("findPosition(%d) = %+v, %v; want %+v, %v", tt.offset, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFindPositionMultiByte(t *testing.T) {
	pt := mustTable(t, "aé世🌍z")

	wantBytes := []int{0, 1, 3, 6, 10}
	for i, want := range wantBytes {
		loc, ok := pt.findPosition(i)
		if !ok || loc.byteOff != want {
			t.Errorf("findPosition(%d) = %+v, %v; want byte %d", i, loc, ok, want)
		}
	}
	if loc, ok := pt.findPosition(5); !ok || !loc.atEnd {
		t.Errorf("findPosition(5) = %+v, %v; want end of buffer", loc, ok)
	}
}

func TestClampPosition(t *testing.T) {
	pt := mustTable(t, "random\nstring buffer.\naaaa\n\n")

	tests := []struct {
		name      string
		line, col int
		want      Position
		ok        bool
	}{
		{"origin", 0, 0, Position{0, 0, 0}, true},
		{"first line clamped", 0, 100, Position{0, 6, 6}, true},
		{"first line last col", 0, 6, Position{0, 6, 6}, true},
		{"inside second line", 1, 3, Position{1, 3, 10}, true},
		{"third line clamped", 2, 10, Position{2, 4, 26}, true},
		{"empty line", 3, 5, Position{3, 0, 27}, true},
		{"final empty line", 4, 0, Position{4, 0, 28}, true},
		{"past last line", 5, 0, Position{}, false},
		{"negative line", -1, 0, Position{}, false},
		{"negative col", 0, -1, Position{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pt.ClampPosition(tt.line, tt.col)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ClampPosition(%d, %d) = %v, %v; want %v, %v", tt.line, tt.col, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestClampPositionAcrossPieces(t *testing.T) {
	pt := mustTable(t, "ab\ncd")
	mustInsert(t, pt, 4, "XY\nZ") // "ab\ncXY\nZd"

	tests := []struct {
		line, col int
		want      Position
	}{
		{0, 9, Position{0, 2, 2}},
		{1, 1, Position{1, 1, 4}},
		{1, 99, Position{1, 3, 6}},
		{2, 0, Position{2, 0, 7}},
		{2, 99, Position{2, 2, 9}},
	}
	for _, tt := range tests {
		got, ok := pt.ClampPosition(tt.line, tt.col)
		if !ok || got != tt.want {
			t.Errorf("ClampPosition(%d, %d) = %v, %v; want %v", tt.line, tt.col, got, ok, tt.want)
		}
	}
}

func TestClampPositionMultiByte(t *testing.T) {
	pt := mustTable(t, "日本\n語🎉x")

	got, ok := pt.ClampPosition(1, 5)
	if want := (Position{Line: 1, Col: 3, Offset: 6}); !ok || got != want {
		t.Errorf("ClampPosition(1, 5) = %v, %v; want %v", got, ok, want)
	}
	got, ok = pt.ClampPosition(0, 1)
	if want := (Position{Line: 0, Col: 1, Offset: 1}); !ok || got != want {
		t.Errorf("ClampPosition(0, 1) = %v, %v; want %v", got, ok, want)
	}
}

func TestClampPositionEmpty(t *testing.T) {
	pt := mustTable(t, "")
	got, ok := pt.ClampPosition(0, 10)
	if !ok || got != (Position{}) {
		t.Errorf("ClampPosition(0, 10) = %v, %v; want origin", got, ok)
	}
	if _, ok := pt.ClampPosition(1, 0); ok {
		t.Error("ClampPosition(1, 0) on empty table should fail")
	}
}

func TestLineLength(t *testing.T) {
	pt := mustTable(t, "one\nthree\n")
	mustInsert(t, pt, 6, "🎉🎉")

	tests := []struct {
		line int
		want int
		ok   bool
	}{
		{0, 3, true},
		{1, 7, true},
		{2, 0, true},
		{3, 0, false},
	}
	for _, tt := range tests {
		got, ok := pt.LineLength(tt.line)
		if ok != tt.ok || got != tt.want {
			t.Errorf("LineLength(%d) = %d, %v; want %d, %v", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}

func TestOffsetToPosition(t *testing.T) {
	pt := mustTable(t, "ab\ncd")
	mustInsert(t, pt, 4, "XY\nZ") // "ab\ncXY\nZd"

	tests := []struct {
		offset int
		want   Position
		ok     bool
	}{
		{0, Position{0, 0, 0}, true},
		{2, Position{0, 2, 2}, true},
		{3, Position{1, 0, 3}, true},
		{6, Position{1, 3, 6}, true},
		{7, Position{2, 0, 7}, true},
		{9, Position{2, 2, 9}, true},
		{10, Position{}, false},
		{-1, Position{}, false},
	}
	for _, tt := range tests {
		got, ok := pt.OffsetToPosition(tt.offset)
		if ok != tt.ok || got != tt.want {
			t.Errorf("OffsetToPosition(%d) = %v, %v; want %v, %v", tt.offset, got, ok, tt.want, tt.ok)
		}
	}
}

func TestOffsetToPositionInvertsClamp(t *testing.T) {
	pt := mustTable(t, "α\nβγ\n\nδεζ")
	mustInsert(t, pt, 3, "x\ny")

	for off := 0; off <= pt.TotalCodepointCount(); off++ {
		pos, ok := pt.OffsetToPosition(off)
		if !ok {
			t.Fatalf("OffsetToPosition(%d) failed", off)
		}
		back, ok := pt.ClampPosition(pos.Line, pos.Col)
		if !ok || back != pos {
			t.Errorf("ClampPosition(%d, %d) = %v, %v; want %v", pos.Line, pos.Col, back, ok, pos)
		}
	}
}
