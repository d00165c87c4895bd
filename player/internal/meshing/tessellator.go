// Package meshing converte a malha de warp em buffers de triângulos
// prontos para upload na GPU. Todo o trabalho é feito na CPU para que a
// lógica de pulo de quads inválidos seja testável sem janela.
package meshing

import (
	"MeshWarp/player/internal/mesh"
	"MeshWarp/shared/util"
)

// GeometryData contém os buffers de vértices de uma malha tesselada.
type GeometryData struct {
	Vertices []float32 // xyz por vértice (z sempre 0)
	Normals  []float32 // xyz por vértice (sempre +z, o plano é 2D)
	Colors   []uint8   // rgba por vértice (intensidade em rgb, alpha 255)
	UVs      []float32
}

// VertexCount retorna o número de vértices no buffer.
func (g *GeometryData) VertexCount() int {
	return len(g.Vertices) / 3
}

func (g *GeometryData) addVertex(n mesh.Node) {
	g.Vertices = append(g.Vertices, n.X, n.Y, 0)
	g.Normals = append(g.Normals, 0, 0, 1)
	c := uint8(util.Clamp01(n.Intensity)*255 + 0.5)
	g.Colors = append(g.Colors, c, c, c, 255)
	g.UVs = append(g.UVs, n.U, n.V)
}

// Result é a saída de uma passada de tesselação.
type Result struct {
	Geometry GeometryData
	Strips   int // quantidade de strips emitidas (regiões inválidas abrem buracos)
	Quads    int // quads desenháveis incluídos
}

// Tessellate percorre a malha linha a linha e emite a geometria dos quads
// desenháveis como triangle strips convertidas em lista de triângulos.
//
// Um quad (r, c) só é desenhável quando seus quatro cantos existem e são
// válidos; encontrar um quad não-desenhável encerra a strip atual e a
// próxima coluna desenhável abre outra, de modo que regiões inválidas
// deixam buracos visíveis em vez de corromper o winding. Índices fora da
// malha (arquivo que declarou mais nós do que forneceu) são pulados em
// silêncio.
func Tessellate(m *mesh.Mesh) Result {
	var res Result
	if m == nil || m.Rows < 2 || m.Cols < 2 {
		return res
	}

	// strip acumula os vértices alternados inferior/superior da linha atual
	strip := make([]mesh.Node, 0, 2*m.Cols)

	flush := func() {
		if len(strip) >= 3 {
			res.Strips++
			emitStrip(&res.Geometry, strip)
		}
		strip = strip[:0]
	}

	for r := 0; r < m.Rows-1; r++ {
		for c := 0; c < m.Cols-1; c++ {
			bl, okBL := m.Node(r, c)
			br, okBR := m.Node(r, c+1)
			tl, okTL := m.Node(r+1, c)
			tr, okTR := m.Node(r+1, c+1)

			drawable := okBL && okBR && okTL && okTR &&
				bl.Valid && br.Valid && tl.Valid && tr.Valid
			if !drawable {
				flush()
				continue
			}

			if len(strip) == 0 {
				strip = append(strip, bl, tl)
			}
			strip = append(strip, br, tr)
			res.Quads++
		}
		flush()
	}

	return res
}

// emitStrip converte uma triangle strip em lista de triângulos, alternando
// o winding como uma strip faria.
func emitStrip(g *GeometryData, strip []mesh.Node) {
	for i := 0; i+2 < len(strip); i++ {
		if i%2 == 0 {
			g.addVertex(strip[i])
			g.addVertex(strip[i+1])
			g.addVertex(strip[i+2])
		} else {
			g.addVertex(strip[i+1])
			g.addVertex(strip[i])
			g.addVertex(strip[i+2])
		}
	}
}
