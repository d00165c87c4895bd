package mesh

import (
	"math"
	"testing"
)

func TestNewIdentityDimensions(t *testing.T) {
	tests := []struct {
		rows, cols int
	}{
		{2, 2},
		{3, 3},
		{2, 7},
		{20, 20},
	}

	for _, tt := range tests {
		m := NewIdentity(tt.rows, tt.cols, 1.0)
		if m.Len() != tt.rows*tt.cols {
			t.Errorf("NewIdentity(%d, %d): Len = %d, want %d", tt.rows, tt.cols, m.Len(), tt.rows*tt.cols)
		}
		for i, n := range m.Nodes {
			if !n.Valid {
				t.Errorf("NewIdentity(%d, %d): nó %d inválido", tt.rows, tt.cols, i)
			}
		}
	}
}

func TestNewIdentityCoverage(t *testing.T) {
	const aspect = float32(16.0 / 9.0)
	m := NewIdentity(4, 5, aspect)

	// Cantos da grade cobrem exatamente os extremos
	tl, _ := m.Node(0, 0)
	if tl.X != -aspect || tl.Y != -1 || tl.U != 0 || tl.V != 1 {
		t.Errorf("nó (0,0) = %+v, want x=-aspect y=-1 u=0 v=1", tl)
	}
	br, _ := m.Node(3, 4)
	if br.X != aspect || br.Y != 1 || br.U != 1 || br.V != 0 {
		t.Errorf("nó (3,4) = %+v, want x=aspect y=1 u=1 v=0", br)
	}

	// u avança em passos regulares ao longo de uma linha
	for c := 0; c < 5; c++ {
		n, ok := m.Node(2, c)
		if !ok {
			t.Fatalf("nó (2,%d) fora dos limites", c)
		}
		want := float32(c) / 4
		if math.Abs(float64(n.U-want)) > 1e-6 {
			t.Errorf("nó (2,%d): u = %v, want %v", c, n.U, want)
		}
		if n.Intensity != 1 {
			t.Errorf("nó (2,%d): intensidade = %v, want 1", c, n.Intensity)
		}
	}
}

func TestNewIdentityClampsDegenerate(t *testing.T) {
	m := NewIdentity(1, 0, 1.0)
	if m.Rows < 2 || m.Cols < 2 {
		t.Errorf("dimensões degeneradas não corrigidas: %dx%d", m.Rows, m.Cols)
	}
	if m.Len() != m.Rows*m.Cols {
		t.Errorf("Len = %d, want %d", m.Len(), m.Rows*m.Cols)
	}
}

func TestAspectOf(t *testing.T) {
	tests := []struct {
		w, h int32
		want float32
	}{
		{1920, 1080, 16.0 / 9.0},
		{640, 480, 4.0 / 3.0},
		{100, 0, DefaultAspect},
		{0, 0, DefaultAspect},
	}

	for _, tt := range tests {
		got := AspectOf(tt.w, tt.h)
		if math.Abs(float64(got-tt.want)) > 1e-6 {
			t.Errorf("AspectOf(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestMeshBounds(t *testing.T) {
	m := NewIdentity(3, 4, 1.0)

	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{2, 3, true},
		{3, 0, false},
		{0, 4, false},
		{-1, 0, false},
		{0, -1, false},
	}

	for _, tt := range tests {
		if got := m.InBounds(tt.row, tt.col); got != tt.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
		if _, ok := m.Node(tt.row, tt.col); ok != tt.want {
			t.Errorf("Node(%d, %d) ok = %v, want %v", tt.row, tt.col, ok, tt.want)
		}
	}

	// InBounds também protege contra malhas sub-preenchidas
	m.Nodes = m.Nodes[:5]
	if m.InBounds(2, 3) {
		t.Error("InBounds(2, 3) = true com slice truncado")
	}
}
