package video

import (
	"image/color"

	"MeshWarp/shared/util"
)

// Pattern gera um padrão de teste procedural (barras de cor, rampa de
// cinza e um marcador móvel) quando nenhuma fonte de vídeo é configurada.
// O movimento do marcador deixa visível que o loop está vivo e ajuda a
// enxergar a deformação da malha sem conteúdo real.
type Pattern struct {
	width, height int32
	fps           float32
	frame         int

	pixels []color.RGBA
}

// Cores das barras, do branco ao preto (vizinhas de barras SMPTE).
var patternBars = []color.RGBA{
	{235, 235, 235, 255}, // branco
	{235, 235, 16, 255},  // amarelo
	{16, 235, 235, 255},  // ciano
	{16, 235, 16, 255},   // verde
	{235, 16, 235, 255},  // magenta
	{235, 16, 16, 255},   // vermelho
	{16, 16, 235, 255},   // azul
	{16, 16, 16, 255},    // preto
}

// NewPattern cria um gerador de padrão de teste com as dimensões dadas.
// Dimensões degeneradas são corrigidas para o mínimo desenhável (2x2),
// a rampa de cinza divide por width-1.
func NewPattern(width, height int32, fps float32) *Pattern {
	if width < 2 {
		width = 2
	}
	if height < 2 {
		height = 2
	}
	return &Pattern{
		width:  width,
		height: height,
		fps:    fps,
		pixels: make([]color.RGBA, int(width)*int(height)),
	}
}

// Size retorna as dimensões do padrão.
func (p *Pattern) Size() (int32, int32) { return p.width, p.height }

// FPS retorna a taxa configurada do gerador.
func (p *Pattern) FPS() float32 { return p.fps }

// NextFrame desenha o padrão do tick atual. Nunca retorna ErrEndOfStream.
func (p *Pattern) NextFrame() ([]color.RGBA, error) {
	w, h := int(p.width), int(p.height)
	barsBottom := h * 2 / 3

	// Posição do marcador: varredura horizontal em ciclos de 4 segundos
	cycle := int(p.fps * 4)
	if cycle < 1 {
		cycle = 1
	}
	t := float32(p.frame%cycle) / float32(cycle)
	marker := int(util.Lerp(0, float32(w-1), t))

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			var px color.RGBA
			if row < barsBottom {
				px = patternBars[col*len(patternBars)/w]
			} else {
				// Rampa de cinza para conferir a intensidade por vértice
				g := uint8(col * 255 / (w - 1))
				px = color.RGBA{g, g, g, 255}
			}
			if col == marker {
				px = color.RGBA{255, 255, 255, 255}
			}
			p.pixels[row*w+col] = px
		}
	}

	p.frame++
	return p.pixels, nil
}

// Rewind zera o relógio da animação.
func (p *Pattern) Rewind() error {
	p.frame = 0
	return nil
}

// Close não tem recursos a liberar.
func (p *Pattern) Close() error { return nil }
