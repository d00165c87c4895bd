// Package mesh implementa o modelo de malha deformável do MeshWarp:
// a grade de nós, o carregador do formato de arquivo versão 2, o gerador
// de malha identidade e as transformações radiais (barrel/pincushion).
//
// Nota de comportamento: as transformações radiais recalculam a posição
// de saída (X, Y) apenas a partir de (U, V). Uma geometria customizada
// vinda de arquivo é descartada na primeira distorção aplicada; o comando
// de reset (recarga do arquivo) restaura a geometria original.
package mesh

// Node é um vértice da malha com layout fixo para iteração rápida
// durante a tesselação.
type Node struct {
	X, Y      float32 // posição de saída em coordenadas normalizadas
	U, V      float32 // coordenada de textura de entrada [0,1]
	Intensity float32 // fator multiplicativo de brilho [0,1]
	Valid     bool    // nós inválidos nunca contribuem para geometria
}

// Mesh é a grade de nós em ordem row-major (linha 0 primeiro).
// Invariante: len(Nodes) == Rows*Cols sempre que a malha está bem formada.
type Mesh struct {
	Rows, Cols int
	Nodes      []Node

	version uint64
}

// Len retorna o número de nós da malha.
func (m *Mesh) Len() int {
	return len(m.Nodes)
}

// InBounds verifica se (row, col) referencia um nó dentro da grade e do
// slice de nós. É o único teste de limites usado pelo loader, pela
// distorção e pelo tesselador.
func (m *Mesh) InBounds(row, col int) bool {
	if row < 0 || col < 0 || row >= m.Rows || col >= m.Cols {
		return false
	}
	return row*m.Cols+col < len(m.Nodes)
}

// Node retorna o nó em (row, col) com checagem de limites.
func (m *Mesh) Node(row, col int) (Node, bool) {
	if !m.InBounds(row, col) {
		return Node{}, false
	}
	return m.Nodes[row*m.Cols+col], true
}

// Version retorna o contador de versão da malha. Todo replace ou mutação
// in-place incrementa o contador, permitindo ao renderer reenviar a
// geometria para a GPU somente quando necessário.
func (m *Mesh) Version() uint64 {
	return m.version
}

func (m *Mesh) bump() {
	m.version++
}
