package video

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// Y4M lê arquivos YUV4MPEG2 (4:2:0, 4:2:2 ou 4:4:4 planar) e converte
// cada frame para RGBA via BT.601.
type Y4M struct {
	f *os.File
	r *bufio.Reader

	width, height int32
	fps           float32
	colorspace    string // "420", "422" ou "444"
	dataStart     int64  // offset do primeiro marcador FRAME

	y, u, v []byte
	pixels  []color.RGBA
}

// OpenY4M abre um arquivo .y4m e interpreta o cabeçalho do stream.
func OpenY4M(path string) (*Y4M, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("y4m: falha ao abrir %s: %w", path, err)
	}

	header, err := readLine(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("y4m: cabeçalho ilegível em %s: %w", path, err)
	}

	src := &Y4M{f: f, fps: 30, colorspace: "420"}
	if err := src.parseHeader(header); err != nil {
		f.Close()
		return nil, fmt.Errorf("y4m: %s: %w", path, err)
	}

	src.dataStart = int64(len(header)) + 1 // +1 pelo '\n' consumido
	src.r = bufio.NewReaderSize(f, 1<<16)
	src.alloc()

	log.Printf("[Video] Y4M aberto: %s (%dx%d @ %.2f fps, C%s)",
		path, src.width, src.height, src.fps, src.colorspace)
	return src, nil
}

// readLine lê uma linha diretamente do arquivo, byte a byte, para que o
// offset do primeiro frame seja conhecido antes do buffer entrar em cena.
func readLine(f *os.File) (string, error) {
	var sb strings.Builder
	buf := make([]byte, 1)
	for {
		if _, err := f.Read(buf); err != nil {
			return "", err
		}
		if buf[0] == '\n' {
			return sb.String(), nil
		}
		sb.WriteByte(buf[0])
		if sb.Len() > 1024 {
			return "", fmt.Errorf("cabeçalho excede 1024 bytes")
		}
	}
}

func (s *Y4M) parseHeader(header string) error {
	fields := strings.Fields(header)
	if len(fields) == 0 || fields[0] != "YUV4MPEG2" {
		return fmt.Errorf("assinatura YUV4MPEG2 ausente")
	}

	for _, p := range fields[1:] {
		if len(p) < 2 {
			continue
		}
		val := p[1:]
		switch p[0] {
		case 'W':
			w, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("largura ilegível %q", val)
			}
			s.width = int32(w)
		case 'H':
			h, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("altura ilegível %q", val)
			}
			s.height = int32(h)
		case 'F':
			num, den, ok := strings.Cut(val, ":")
			n, errN := strconv.Atoi(num)
			d, errD := strconv.Atoi(den)
			if !ok || errN != nil || errD != nil || d == 0 {
				return fmt.Errorf("taxa de frames ilegível %q", val)
			}
			s.fps = float32(n) / float32(d)
		case 'C':
			switch {
			case strings.HasPrefix(val, "420"):
				s.colorspace = "420"
			case strings.HasPrefix(val, "422"):
				s.colorspace = "422"
			case strings.HasPrefix(val, "444"):
				s.colorspace = "444"
			default:
				return fmt.Errorf("colorspace não suportado %q", val)
			}
		}
	}

	if s.width <= 0 || s.height <= 0 {
		return fmt.Errorf("dimensões ausentes no cabeçalho")
	}
	return nil
}

func (s *Y4M) alloc() {
	w, h := int(s.width), int(s.height)
	cw, ch := s.chromaDims()
	s.y = make([]byte, w*h)
	s.u = make([]byte, cw*ch)
	s.v = make([]byte, cw*ch)
	s.pixels = make([]color.RGBA, w*h)
}

// chromaDims retorna as dimensões dos planos U/V para o colorspace atual.
func (s *Y4M) chromaDims() (int, int) {
	w, h := int(s.width), int(s.height)
	switch s.colorspace {
	case "420":
		return (w + 1) / 2, (h + 1) / 2
	case "422":
		return (w + 1) / 2, h
	default: // 444
		return w, h
	}
}

// Size retorna as dimensões nativas do stream.
func (s *Y4M) Size() (int32, int32) { return s.width, s.height }

// FPS retorna a taxa declarada no cabeçalho.
func (s *Y4M) FPS() float32 { return s.fps }

// NextFrame lê o próximo frame e o converte para RGBA.
func (s *Y4M) NextFrame() ([]color.RGBA, error) {
	marker, err := s.r.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return nil, ErrEndOfStream
		}
		return nil, fmt.Errorf("y4m: falha ao ler marcador de frame: %w", err)
	}
	if !strings.HasPrefix(marker, "FRAME") {
		return nil, fmt.Errorf("y4m: marcador de frame inesperado %q", strings.TrimSpace(marker))
	}

	for _, plane := range [][]byte{s.y, s.u, s.v} {
		if _, err := io.ReadFull(s.r, plane); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrEndOfStream
			}
			return nil, fmt.Errorf("y4m: falha ao ler plano: %w", err)
		}
	}

	s.convert()
	return s.pixels, nil
}

// convert expande os planos YUV para o buffer RGBA (BT.601, faixa vídeo).
func (s *Y4M) convert() {
	w, h := int(s.width), int(s.height)
	cw, _ := s.chromaDims()

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			var ci int
			switch s.colorspace {
			case "420":
				ci = (row/2)*cw + col/2
			case "422":
				ci = row*cw + col/2
			default:
				ci = row*cw + col
			}

			c := int32(s.y[row*w+col]) - 16
			d := int32(s.u[ci]) - 128
			e := int32(s.v[ci]) - 128

			s.pixels[row*w+col] = color.RGBA{
				R: clamp8((298*c + 409*e + 128) >> 8),
				G: clamp8((298*c - 100*d - 208*e + 128) >> 8),
				B: clamp8((298*c + 516*d + 128) >> 8),
				A: 255,
			}
		}
	}
}

func clamp8(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Rewind reposiciona o arquivo no primeiro frame.
func (s *Y4M) Rewind() error {
	if _, err := s.f.Seek(s.dataStart, io.SeekStart); err != nil {
		return fmt.Errorf("y4m: falha ao reposicionar: %w", err)
	}
	s.r.Reset(s.f)
	return nil
}

// Close fecha o arquivo da fonte.
func (s *Y4M) Close() error { return s.f.Close() }
