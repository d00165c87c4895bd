package video

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	// O pacote tga registra um formato com assinatura mágica vazia que
	// captura qualquer arquivo no image.Decode. Por isso decodeRGBA
	// roteia pela extensão e chama cada decoder diretamente, sem passar
	// pelo registro de formatos.
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// ImageSequence serve frames a partir de um diretório de imagens (ou de
// uma imagem solta), em ordem alfabética de nome.
type ImageSequence struct {
	files []string
	idx   int

	width, height int32
	fps           float32

	pixels []color.RGBA
}

var sequenceExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".bmp": true, ".tga": true,
}

// NewImageSequence monta a lista de frames e fixa as dimensões pela
// primeira imagem; frames de tamanho diferente são reescalados para ela.
func NewImageSequence(path string, fps float32) (*ImageSequence, error) {
	var files []string

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("sequência: %w", err)
	}

	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("sequência: falha ao listar %s: %w", path, err)
		}
		for _, e := range entries {
			if e.IsDir() || !sequenceExts[strings.ToLower(filepath.Ext(e.Name()))] {
				continue
			}
			files = append(files, filepath.Join(path, e.Name()))
		}
		sort.Strings(files)
	} else {
		files = []string{path}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("sequência: nenhuma imagem encontrada em %s", path)
	}

	first, err := decodeRGBA(files[0])
	if err != nil {
		return nil, fmt.Errorf("sequência: primeiro frame: %w", err)
	}

	b := first.Bounds()
	s := &ImageSequence{
		files:  files,
		fps:    fps,
		width:  int32(b.Dx()),
		height: int32(b.Dy()),
		pixels: make([]color.RGBA, b.Dx()*b.Dy()),
	}

	log.Printf("[Video] Sequência de imagens: %d frame(s) %dx%d @ %.2f fps (%s)",
		len(files), s.width, s.height, fps, path)
	return s, nil
}

func decodeRGBA(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var img image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		img, err = png.Decode(f)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(f)
	case ".bmp":
		img, err = bmp.Decode(f)
	case ".tga":
		img, err = tga.Decode(f)
	default:
		err = fmt.Errorf("extensão não suportada")
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst, nil
}

// Size retorna as dimensões fixadas pelo primeiro frame.
func (s *ImageSequence) Size() (int32, int32) { return s.width, s.height }

// FPS retorna a taxa declarada pela configuração.
func (s *ImageSequence) FPS() float32 { return s.fps }

// NextFrame decodifica a próxima imagem da lista.
func (s *ImageSequence) NextFrame() ([]color.RGBA, error) {
	if s.idx >= len(s.files) {
		return nil, ErrEndOfStream
	}

	img, err := decodeRGBA(s.files[s.idx])
	if err != nil {
		return nil, fmt.Errorf("sequência: frame %d: %w", s.idx, err)
	}
	s.idx++

	// Frames fora do tamanho base são reescalados para caber na textura
	if int32(img.Bounds().Dx()) != s.width || int32(img.Bounds().Dy()) != s.height {
		scaled := image.NewRGBA(image.Rect(0, 0, int(s.width), int(s.height)))
		xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)
		img = scaled
	}

	for i := range s.pixels {
		o := i * 4
		s.pixels[i] = color.RGBA{img.Pix[o], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3]}
	}
	return s.pixels, nil
}

// Rewind volta para o primeiro frame da lista.
func (s *ImageSequence) Rewind() error {
	s.idx = 0
	return nil
}

// Close não tem recursos a liberar; os arquivos são abertos por frame.
func (s *ImageSequence) Close() error { return nil }
