package mesh

// DefaultAspect é usado quando a fonte de vídeo não informa a altura.
const DefaultAspect float32 = 16.0 / 9.0

// AspectOf calcula a razão de aspecto de um frame de vídeo.
func AspectOf(width, height int32) float32 {
	if height <= 0 || width <= 0 {
		return DefaultAspect
	}
	return float32(width) / float32(height)
}

// NewIdentity cria uma malha rows x cols sem deformação, corrigida para a
// razão de aspecto da fonte: x cobre [-aspect, aspect], y cobre [-1, 1].
// A linha 0 mapeia para o topo da textura (v = 1 embaixo, convenção de
// framebuffer invertido verticalmente).
func NewIdentity(rows, cols int, aspect float32) *Mesh {
	if rows < 2 {
		rows = 2
	}
	if cols < 2 {
		cols = 2
	}
	if aspect <= 0 {
		aspect = DefaultAspect
	}

	m := &Mesh{
		Rows:  rows,
		Cols:  cols,
		Nodes: make([]Node, rows*cols),
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			fc := float32(c) / float32(cols-1)
			fr := float32(r) / float32(rows-1)
			m.Nodes[r*cols+c] = Node{
				X:         fc*2*aspect - aspect,
				Y:         fr*2 - 1,
				U:         fc,
				V:         1 - fr,
				Intensity: 1,
				Valid:     true,
			}
		}
	}

	m.bump()
	return m
}
