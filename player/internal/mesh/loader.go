package mesh

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// FormatVersion é o marcador esperado na primeira linha significativa do
// arquivo de malha. Versões diferentes geram aviso mas o parse continua
// com a gramática da versão 2.
const FormatVersion = 2

// Load carrega uma malha de um arquivo de descrição versão 2.
//
// Qualquer falha estrutural (arquivo inexistente, cabeçalho malformado,
// campo numérico ilegível) é contida aqui: o resultado parcial é
// abandonado e o fallback é a malha identidade com as dimensões
// configuradas. O chamador nunca recebe erro nem malha parcial.
func Load(path string, rows, cols int, aspect float32) *Mesh {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("[MeshLoader] AVISO: não foi possível abrir %s (%v), usando malha identidade", path, err)
		return NewIdentity(rows, cols, aspect)
	}
	defer f.Close()

	m, err := parse(f.Name(), bufio.NewScanner(f))
	if err != nil {
		log.Printf("[MeshLoader] AVISO: %v, usando malha identidade", err)
		return NewIdentity(rows, cols, aspect)
	}
	return m
}

// Estágios do parser linha-a-linha.
const (
	stageVersion = iota
	stageDims
	stageNodes
)

// maxDim limita cada dimensão declarada no cabeçalho. Um arquivo corrupto
// (ou hostil) não pode reservar gigabytes de nós antes da primeira linha
// de dados ser lida; acima do limite o parse falha e o fallback identidade
// assume.
const maxDim = 4096

func parse(name string, sc *bufio.Scanner) (*Mesh, error) {
	stage := stageVersion
	lineNo := 0

	var m *Mesh
	want := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch stage {
		case stageVersion:
			v, err := strconv.Atoi(line)
			if err != nil || v != FormatVersion {
				log.Printf("[MeshLoader] AVISO: %s linha %d: marcador de versão %q (esperado %d), tentando gramática v%d mesmo assim",
					name, lineNo, line, FormatVersion, FormatVersion)
			}
			stage = stageDims

		case stageDims:
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return nil, fmt.Errorf("%s linha %d: linha de dimensões malformada %q", name, lineNo, line)
			}
			nx, errX := strconv.Atoi(fields[0])
			ny, errY := strconv.Atoi(fields[1])
			if errX != nil || errY != nil {
				return nil, fmt.Errorf("%s linha %d: dimensões ilegíveis %q", name, lineNo, line)
			}
			if nx < 2 || ny < 2 {
				return nil, fmt.Errorf("%s linha %d: dimensões %dx%d degeneradas (mínimo 2x2)", name, lineNo, nx, ny)
			}
			if nx > maxDim || ny > maxDim {
				return nil, fmt.Errorf("%s linha %d: dimensões %dx%d excedem o limite de %d por eixo", name, lineNo, nx, ny, maxDim)
			}
			// nx = colunas, ny = linhas
			m = &Mesh{Rows: ny, Cols: nx, Nodes: make([]Node, 0, nx*ny)}
			want = nx * ny
			stage = stageNodes

		case stageNodes:
			if len(m.Nodes) >= want {
				// Linhas extras além de nx*ny são ignoradas
				continue
			}
			node, short, err := parseNode(line)
			if err != nil {
				return nil, fmt.Errorf("%s linha %d: %w", name, lineNo, err)
			}
			if short {
				log.Printf("[MeshLoader] AVISO: %s linha %d: menos de 5 campos, nó inválido inserido no lugar", name, lineNo)
			}
			m.Nodes = append(m.Nodes, node)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: erro de leitura: %w", name, err)
	}

	if m == nil || len(m.Nodes) == 0 {
		return nil, fmt.Errorf("%s: arquivo curto demais (cabeçalho ou nós ausentes)", name)
	}

	// Completa a ocupação row-major com nós inválidos: a aritmética de
	// índices do tesselador depende de len == Rows*Cols.
	if len(m.Nodes) < want {
		log.Printf("[MeshLoader] AVISO: %s: esperados %d nós, encontrados %d; completando com nós inválidos",
			name, want, len(m.Nodes))
		for len(m.Nodes) < want {
			m.Nodes = append(m.Nodes, Node{})
		}
	}

	m.bump()
	return m, nil
}

// parseNode interpreta uma linha "x y u v intensidade". Uma linha com
// menos de cinco campos vira um nó inválido zerado (short = true); um
// campo numérico ilegível é erro estrutural e aborta o parse.
func parseNode(line string) (Node, bool, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return Node{}, true, nil
	}

	var vals [5]float32
	for i := 0; i < 5; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return Node{}, false, fmt.Errorf("campo %d ilegível %q: %w", i+1, fields[i], err)
		}
		vals[i] = float32(f)
	}

	n := Node{X: vals[0], Y: vals[1], U: vals[2], V: vals[3], Intensity: vals[4]}
	n.Valid = n.U >= 0 && n.U <= 1 &&
		n.V >= 0 && n.V <= 1 &&
		n.Intensity >= 0 && n.Intensity <= 1
	return n, false, nil
}

// Save escreve a malha no formato versão 2 canônico. O arquivo resultante
// recarrega com os mesmos valores (x, y, u, v, intensidade) nó a nó.
func Save(path string, m *Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("falha ao criar %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "# malha MeshWarp (x y u v intensidade)")
	fmt.Fprintln(w, FormatVersion)
	fmt.Fprintf(w, "%d %d\n", m.Cols, m.Rows)
	for i := range m.Nodes {
		n := &m.Nodes[i]
		fmt.Fprintf(w, "%s %s %s %s %s\n",
			ftoa(n.X), ftoa(n.Y), ftoa(n.U), ftoa(n.V), ftoa(n.Intensity))
	}
	return w.Flush()
}

// ftoa formata um float32 com dígitos suficientes para round-trip exato.
func ftoa(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
