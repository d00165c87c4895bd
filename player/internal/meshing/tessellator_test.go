package meshing

import (
	"testing"

	"MeshWarp/player/internal/mesh"
)

func TestTessellateFullMesh(t *testing.T) {
	m := mesh.NewIdentity(3, 3, 1.0)
	res := Tessellate(m)

	// 3x3: duas faixas de linha, 2 quads por faixa
	if res.Quads != 4 {
		t.Errorf("Quads = %d, want 4", res.Quads)
	}
	if res.Strips != 2 {
		t.Errorf("Strips = %d, want 2", res.Strips)
	}

	// Strip de 6 vértices vira 4 triângulos = 12 vértices emitidos
	want := 24
	if got := res.Geometry.VertexCount(); got != want {
		t.Errorf("VertexCount = %d, want %d", got, want)
	}

	// Buffers paralelos coerentes
	g := res.Geometry
	if len(g.Normals) != len(g.Vertices) {
		t.Errorf("len(Normals) = %d, want %d", len(g.Normals), len(g.Vertices))
	}
	if len(g.Colors) != g.VertexCount()*4 {
		t.Errorf("len(Colors) = %d, want %d", len(g.Colors), g.VertexCount()*4)
	}
	if len(g.UVs) != g.VertexCount()*2 {
		t.Errorf("len(UVs) = %d, want %d", len(g.UVs), g.VertexCount()*2)
	}
}

func TestTessellateSkipsQuadsTouchingInvalidNode(t *testing.T) {
	tests := []struct {
		name      string
		row, col  int
		wantQuads int
	}{
		{"centro invalida os 4 quads", 1, 1, 0},
		{"canto invalida 1 quad", 0, 0, 3},
		{"borda invalida 2 quads", 0, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mesh.NewIdentity(3, 3, 1.0)
			m.Nodes[tt.row*3+tt.col].Valid = false

			res := Tessellate(m)
			if res.Quads != tt.wantQuads {
				t.Errorf("Quads = %d, want %d", res.Quads, tt.wantQuads)
			}
		})
	}
}

func TestTessellateBreaksStripAtHole(t *testing.T) {
	// 2x5 com o nó (0,2) inválido: quads 1 e 2 caem, sobram os quads 0 e
	// 3 em strips separadas — o buraco não pode corromper o winding.
	m := mesh.NewIdentity(2, 5, 1.0)
	m.Nodes[2].Valid = false

	res := Tessellate(m)
	if res.Quads != 2 {
		t.Errorf("Quads = %d, want 2", res.Quads)
	}
	if res.Strips != 2 {
		t.Errorf("Strips = %d, want 2", res.Strips)
	}
	// Cada strip de 1 quad tem 4 vértices -> 2 triângulos -> 6 emitidos
	if got := res.Geometry.VertexCount(); got != 12 {
		t.Errorf("VertexCount = %d, want 12", got)
	}
}

func TestTessellateIntensityColor(t *testing.T) {
	m := mesh.NewIdentity(2, 2, 1.0)
	for i := range m.Nodes {
		m.Nodes[i].Intensity = 0.5
	}

	res := Tessellate(m)
	g := res.Geometry
	for i := 0; i < g.VertexCount(); i++ {
		r, gr, b, a := g.Colors[i*4], g.Colors[i*4+1], g.Colors[i*4+2], g.Colors[i*4+3]
		if r != 128 || gr != 128 || b != 128 {
			t.Fatalf("vértice %d: cor (%d, %d, %d), want (128, 128, 128)", i, r, gr, b)
		}
		if a != 255 {
			t.Fatalf("vértice %d: alpha %d, want 255", i, a)
		}
	}
}

func TestTessellateVertexPayload(t *testing.T) {
	m := mesh.NewIdentity(2, 2, 1.0)
	res := Tessellate(m)
	g := res.Geometry

	// Primeiro vértice da strip é o nó (0,0): x=-1, y=-1, u=0, v=1
	if g.Vertices[0] != -1 || g.Vertices[1] != -1 || g.Vertices[2] != 0 {
		t.Errorf("posição do vértice 0 = (%v, %v, %v), want (-1, -1, 0)",
			g.Vertices[0], g.Vertices[1], g.Vertices[2])
	}
	if g.UVs[0] != 0 || g.UVs[1] != 1 {
		t.Errorf("uv do vértice 0 = (%v, %v), want (0, 1)", g.UVs[0], g.UVs[1])
	}
	if g.Normals[2] != 1 {
		t.Errorf("normal z do vértice 0 = %v, want 1", g.Normals[2])
	}
}

func TestTessellateUnderfilledMesh(t *testing.T) {
	// Arquivo que declarou mais nós do que forneceu: o slice é menor que
	// Rows*Cols e o tesselador precisa pular em silêncio, nunca entrar
	// em pânico.
	m := mesh.NewIdentity(3, 3, 1.0)
	m.Nodes = m.Nodes[:5]

	res := Tessellate(m)
	if res.Quads != 1 {
		t.Errorf("Quads = %d, want 1 (apenas o quad com 4 cantos presentes)", res.Quads)
	}
}

func TestTessellateDegenerateMesh(t *testing.T) {
	tests := []struct {
		name string
		m    *mesh.Mesh
	}{
		{"nil", nil},
		{"uma linha", &mesh.Mesh{Rows: 1, Cols: 5, Nodes: make([]mesh.Node, 5)}},
		{"uma coluna", &mesh.Mesh{Rows: 5, Cols: 1, Nodes: make([]mesh.Node, 5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Tessellate(tt.m)
			if res.Quads != 0 || res.Strips != 0 || res.Geometry.VertexCount() != 0 {
				t.Errorf("malha degenerada produziu geometria: %+v", res)
			}
		})
	}
}
