package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Distortion é o nome do modelo de distorção radial.
type Distortion string

const (
	// DistortionNone não altera a malha.
	DistortionNone = Distortion("")
	// DistortionBarrel empurra os nós radialmente para fora.
	DistortionBarrel = Distortion("barrel")
	// DistortionPincushion puxa os nós radialmente para dentro.
	DistortionPincushion = Distortion("pincushion")
)

// ApplyBarrel aplica distorção de barril aos nós válidos da malha.
//
// A posição de saída é recalculada apenas a partir de (U, V): reaplicar a
// mesma intensidade reproduz o mesmo resultado, não há composição com uma
// distorção anterior. Nós inválidos não são tocados; eles nunca chegam à
// geometria desenhada.
func (m *Mesh) ApplyBarrel(strength float32) {
	for i := range m.Nodes {
		n := &m.Nodes[i]
		if !n.Valid {
			continue
		}

		// Mapeia (u, v) para o quadro centrado [-1, 1]
		p := mgl32.Vec2{n.U*2 - 1, n.V*2 - 1}
		r := p.Len()
		factor := 1 + strength*r*r

		n.X = p.X() * factor
		n.Y = p.Y() * factor
	}
	m.bump()
}

// ApplyPincushion aplica distorção de almofada: barrel com sinal trocado.
func (m *Mesh) ApplyPincushion(strength float32) {
	m.ApplyBarrel(-strength)
}

// Apply aplica a distorção nomeada. Usado para restaurar calibrações
// persistidas e pelo despacho de comandos.
func (m *Mesh) Apply(kind Distortion, strength float32) error {
	switch kind {
	case DistortionNone:
		return nil
	case DistortionBarrel:
		m.ApplyBarrel(strength)
		return nil
	case DistortionPincushion:
		m.ApplyPincushion(strength)
		return nil
	default:
		return fmt.Errorf("modelo de distorção desconhecido %q", kind)
	}
}
