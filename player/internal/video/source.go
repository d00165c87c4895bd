// Package video fornece as fontes de frames do MeshWarp. Todas as fontes
// são pull-based: o loop de renderização pede um frame por tick e decide
// o que fazer quando o stream acaba.
package video

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
)

// ErrEndOfStream sinaliza que a fonte não tem mais frames. O driver deve
// voltar ao início e tentar uma vez; uma segunda falha encerra a sessão.
var ErrEndOfStream = errors.New("fim do stream de vídeo")

// Source é o contrato de uma fonte de vídeo.
type Source interface {
	// Size retorna as dimensões nativas do frame em pixels.
	Size() (width, height int32)
	// FPS retorna a taxa de frames declarada (0 quando desconhecida).
	FPS() float32
	// NextFrame retorna o próximo frame decodificado como buffer RGBA
	// row-major, ou ErrEndOfStream.
	NextFrame() ([]color.RGBA, error)
	// Rewind reposiciona a fonte no primeiro frame.
	Rewind() error
	// Close libera os recursos da fonte.
	Close() error
}

// Open escolhe a implementação de fonte pelo caminho: vazio abre o padrão
// de teste procedural, diretório abre uma sequência de imagens, arquivo
// .y4m abre o leitor YUV4MPEG2 e uma imagem solta vira sequência de um
// frame. Falhas aqui são fatais para a inicialização (ConfigError).
func Open(path string, declaredFPS float32) (Source, error) {
	if path == "" {
		return NewPattern(1280, 720, 30), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("fonte de vídeo inválida %s: %w", path, err)
	}

	if info.IsDir() {
		return NewImageSequence(path, declaredFPS)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".y4m":
		return OpenY4M(path)
	case ".png", ".jpg", ".jpeg", ".bmp", ".tga":
		return NewImageSequence(path, declaredFPS)
	default:
		return nil, fmt.Errorf("fonte de vídeo inválida %s: formato não suportado", path)
	}
}
