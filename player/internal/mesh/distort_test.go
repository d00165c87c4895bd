package mesh

import (
	"math"
	"testing"
)

func TestPincushionIsBarrelWithNegativeStrength(t *testing.T) {
	const s = float32(0.3)

	a := NewIdentity(5, 5, 16.0/9.0)
	b := NewIdentity(5, 5, 16.0/9.0)

	a.ApplyPincushion(s)
	b.ApplyBarrel(-s)

	for i := range a.Nodes {
		if a.Nodes[i].X != b.Nodes[i].X || a.Nodes[i].Y != b.Nodes[i].Y {
			t.Errorf("nó %d: pincushion(%v) = (%v, %v), barrel(%v) = (%v, %v)",
				i, s, a.Nodes[i].X, a.Nodes[i].Y, -s, b.Nodes[i].X, b.Nodes[i].Y)
		}
	}
}

func TestBarrelFormula(t *testing.T) {
	m := NewIdentity(2, 2, 1.0)
	m.ApplyBarrel(0.3)

	// Canto (0,0): u=0, v=1 -> un=-1, vn=1, r²=2, factor=1.6
	n, _ := m.Node(0, 0)
	if math.Abs(float64(n.X+1.6)) > 1e-5 || math.Abs(float64(n.Y-1.6)) > 1e-5 {
		t.Errorf("nó (0,0) = (%v, %v), want (-1.6, 1.6)", n.X, n.Y)
	}
}

func TestBarrelRecomputesFromUV(t *testing.T) {
	// A distorção parte sempre de (u, v): reaplicar a mesma intensidade
	// reproduz o mesmo resultado, não compõe com a anterior.
	once := NewIdentity(6, 6, 1.0)
	twice := NewIdentity(6, 6, 1.0)

	once.ApplyBarrel(0.4)
	twice.ApplyBarrel(0.4)
	twice.ApplyBarrel(0.4)

	for i := range once.Nodes {
		if once.Nodes[i] != twice.Nodes[i] {
			t.Errorf("nó %d: uma aplicação %+v, duas aplicações %+v",
				i, once.Nodes[i], twice.Nodes[i])
		}
	}
}

func TestBarrelSkipsInvalidNodes(t *testing.T) {
	m := NewIdentity(3, 3, 1.0)
	m.Nodes[4].Valid = false
	m.Nodes[4].X = 42
	m.Nodes[4].Y = -42

	m.ApplyBarrel(0.5)

	if m.Nodes[4].X != 42 || m.Nodes[4].Y != -42 {
		t.Errorf("nó inválido mutado: (%v, %v), want (42, -42)", m.Nodes[4].X, m.Nodes[4].Y)
	}
}

func TestApplyNamedDistortions(t *testing.T) {
	m := NewIdentity(3, 3, 1.0)

	if err := m.Apply(DistortionBarrel, 0.3); err != nil {
		t.Errorf("Apply(barrel): %v", err)
	}
	if err := m.Apply(DistortionNone, 0.3); err != nil {
		t.Errorf("Apply(none): %v", err)
	}
	if err := m.Apply(Distortion("swirl"), 0.3); err == nil {
		t.Error("Apply(swirl): esperado erro para modelo desconhecido")
	}
}

func TestDistortionBumpsVersion(t *testing.T) {
	m := NewIdentity(3, 3, 1.0)
	v := m.Version()
	m.ApplyBarrel(0.3)
	if m.Version() == v {
		t.Error("ApplyBarrel não incrementou a versão da malha")
	}
}
