package problem

import (
	"reflect"
	"testing"
)

func TestParseBuildings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  BuildingList
	}{
		{"count line ignored", "1\n0 10 5", BuildingList{{L: 0, H: 10, R: 5}}},
		{"commas and spaces", "2, 5, 9\n3,7 ,12", BuildingList{{L: 2, H: 5, R: 9}, {L: 3, H: 7, R: 12}}},
		{"inverted range dropped", "0 10 -5", BuildingList{}},
		{"zero height dropped", "0 0 5", BuildingList{}},
		{"equal edges dropped", "4 3 4", BuildingList{}},
		{"short line dropped", "0 10", BuildingList{}},
		{"non numeric dropped", "a b c\n1 2 3", BuildingList{{L: 1, H: 2, R: 3}}},
		{"comments and blanks", "# header\n\n  1 2 3  \n#4 5 6", BuildingList{{L: 1, H: 2, R: 3}}},
		{"integer prefix", "1.9 2x 7", BuildingList{{L: 1, H: 2, R: 7}}},
		{"crlf line endings", "1 2 3\r\n4 5 6\r\n", BuildingList{{L: 1, H: 2, R: 3}, {L: 4, H: 5, R: 6}}},
		{"extra tokens ignored", "1 2 3 99", BuildingList{{L: 1, H: 2, R: 3}}},
		{"empty input", "", BuildingList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBuildings(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseBuildings(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseGraph(t *testing.T) {
	g := ParseGraph("3\n0,1,0\n1,0,1\n0,1,0")
	if g.N != 3 {
		t.Fatalf("N = %d, want 3", g.N)
	}
	want := [][2]int{{0, 1}, {1, 2}}
	if got := g.Edges(); !reflect.DeepEqual(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}
}

func TestParseGraphRaggedRows(t *testing.T) {
	g := ParseGraph("3\n0 1\n\n# no third row")
	if g.N != 3 {
		t.Fatalf("N = %d, want 3", g.N)
	}
	for i, row := range g.Adj {
		if len(row) != 3 {
			t.Errorf("row %d has %d cells, want 3", i, len(row))
		}
	}
	if !g.Connected(0, 1) || !g.Connected(1, 0) {
		t.Error("0-1 should be connected in both directions")
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if (i == 0 && j == 1) || (i == 1 && j == 0) {
				continue
			}
			if g.Connected(i, j) {
				t.Errorf("Connected(%d, %d) = true, want false", i, j)
			}
		}
	}
}

func TestParseGraphDirectedReadsUndirected(t *testing.T) {
	g := ParseGraph("2\n0 0\n5 0")
	if !g.Connected(0, 1) {
		t.Error("a one-way entry should still connect the pair")
	}
}

func TestParseGraphBadCells(t *testing.T) {
	g := ParseGraph("2\n0 x\nfoo 0 7 7")
	if g.Connected(0, 1) {
		t.Error("non-numeric cells should read as no edge")
	}
	if len(g.Adj[1]) != 2 {
		t.Errorf("extra cells should be dropped, got row %v", g.Adj[1])
	}
}

func TestParseGraphEmpty(t *testing.T) {
	for _, input := range []string{"", "0", "-3\n1 1", "abc\n0 1"} {
		g := ParseGraph(input)
		if g.N != 0 || len(g.Edges()) != 0 {
			t.Errorf("ParseGraph(%q) = %+v, want empty graph", input, g)
		}
	}
}

func TestParseGraphClampsCount(t *testing.T) {
	g := ParseGraph("99999999\n0 1")
	if g.N != MaxNodes {
		t.Errorf("N = %d, want %d", g.N, MaxNodes)
	}
}

func TestGraphConnectedOutOfRange(t *testing.T) {
	g := ParseGraph("2\n0 1\n1 0")
	cases := [][2]int{{-1, 0}, {0, 2}, {5, 5}}
	for _, c := range cases {
		if g.Connected(c[0], c[1]) {
			t.Errorf("Connected(%d, %d) = true for out-of-range index", c[0], c[1])
		}
	}
}

func TestParsePoints(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  PointSet
	}{
		{"count line ignored", "2\n1 2\n3.5, -4", PointSet{{X: 1, Y: 2}, {X: 3.5, Y: -4}}},
		{"short line dropped", "1\n7", PointSet{}},
		{"non numeric dropped", "x y\n1 1", PointSet{{X: 1, Y: 1}}},
		{"float prefix", "2.5e1x .5", PointSet{{X: 25, Y: 0.5}}},
		{"infinity dropped", "Infinity 1\n1e999 2", PointSet{}},
		{"tabs", "1\t2", PointSet{{X: 1, Y: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePoints(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePoints(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDispatch(t *testing.T) {
	if s := Parse(KindBuildings, "1 2 3"); s.Kind() != KindBuildings || s.Len() != 1 {
		t.Errorf("Parse(KindBuildings) = %v", s)
	}
	if s := Parse(KindGraph, "2\n0 1\n1 0"); s.Kind() != KindGraph || s.Len() != 2 {
		t.Errorf("Parse(KindGraph) = %v", s)
	}
	if s := Parse(KindPoints, "1 2"); s.Kind() != KindPoints || s.Len() != 1 {
		t.Errorf("Parse(KindPoints) = %v", s)
	}
}

func TestEcho(t *testing.T) {
	got := Echo("  3 \r\n\n# note\n 0 1 0\n")
	want := "3\n# note\n0 1 0"
	if got != want {
		t.Errorf("Echo() = %q, want %q", got, want)
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{KindBuildings: "buildings", KindGraph: "graph", KindPoints: "points", Kind(0): "unknown"} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestKindFor(t *testing.T) {
	tests := []struct {
		algorithm string
		want      Kind
		ok        bool
	}{
		{"SKYLINE", KindBuildings, true},
		{"bfs", KindGraph, true},
		{" Dfs ", KindGraph, true},
		{"hull", KindPoints, true},
		{"kruskal", 0, false},
	}
	for _, tt := range tests {
		got, ok := KindFor(tt.algorithm)
		if got != tt.want || ok != tt.ok {
			t.Errorf("KindFor(%q) = %v, %v; want %v, %v", tt.algorithm, got, ok, tt.want, tt.ok)
		}
	}
}
