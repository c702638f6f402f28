package toolchain

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Sintaxe do assembly gerado, decide qual montador chamar
type Sintaxe string

const (
	SintaxeNASM Sintaxe = "nasm"
	SintaxeGAS  Sintaxe = "gas"
)

// Ferramentas são os programas externos usados para montar e ligar
type Ferramentas struct {
	Sintaxe  Sintaxe
	Montador string // nasm ou as
	Ligador  string // ld
}

// Artefatos são os arquivos produzidos em cada etapa
type Artefatos struct {
	Assembly   string
	Objeto     string
	Executavel string
}

// NovosArtefatos deriva os nomes a partir da base de saída e da extensão do assembly
func NovosArtefatos(base, extensao string) Artefatos {
	return Artefatos{
		Assembly:   base + extensao,
		Objeto:     base + ".o",
		Executavel: base,
	}
}

// Etapa é uma invocação de processo externo
type Etapa struct {
	Nome          string
	Comando       string
	Args          []string
	RepassarSaida bool // Copia o stdout do processo para o writer do pipeline
}

// Pipeline executa etapas em ordem e para na primeira falha
type Pipeline struct {
	Etapas []Etapa
}

// ErroFerramenta carrega a saída capturada da etapa que falhou
type ErroFerramenta struct {
	Etapa   string
	Comando string
	Codigo  int
	Stdout  string
	Stderr  string
}

func (e *ErroFerramenta) Error() string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("%s falhou (%s), código de saída %d", e.Etapa, e.Comando, e.Codigo))
	if e.Stdout != "" {
		builder.WriteString("\nstdout: ")
		builder.WriteString(e.Stdout)
	}
	if e.Stderr != "" {
		builder.WriteString("\nstderr: ")
		builder.WriteString(e.Stderr)
	}
	return builder.String()
}

// NovoPipelineNativo monta, liga e opcionalmente roda o executável
func NovoPipelineNativo(ferramentas Ferramentas, artefatos Artefatos, executar bool) *Pipeline {
	var montagem Etapa
	switch ferramentas.Sintaxe {
	case SintaxeGAS:
		montagem = Etapa{
			Nome:    "Montagem",
			Comando: padrao(ferramentas.Montador, "as"),
			Args:    []string{"-o", artefatos.Objeto, artefatos.Assembly},
		}
	default:
		montagem = Etapa{
			Nome:    "Montagem",
			Comando: padrao(ferramentas.Montador, "nasm"),
			Args:    []string{"-f", "elf64", artefatos.Assembly, "-o", artefatos.Objeto},
		}
	}

	pipeline := &Pipeline{
		Etapas: []Etapa{
			montagem,
			{
				Nome:    "Ligação",
				Comando: padrao(ferramentas.Ligador, "ld"),
				Args:    []string{"-o", artefatos.Executavel, artefatos.Objeto},
			},
		},
	}

	if executar {
		pipeline.Etapas = append(pipeline.Etapas, Etapa{
			Nome:          "Execução",
			Comando:       caminhoExecutavel(artefatos.Executavel),
			RepassarSaida: true,
		})
	}

	return pipeline
}

// Executar roda as etapas em ordem. A primeira falha interrompe o pipeline.
func (p *Pipeline) Executar(executor Executor, w io.Writer) error {
	for _, etapa := range p.Etapas {
		fmt.Fprintf(w, "[+] %s com %s...\n", etapa.Nome, etapa.Comando)

		saida, err := executor.Executar(etapa.Comando, etapa.Args)
		if err != nil {
			return fmt.Errorf("%s: %w", etapa.Nome, err)
		}

		if saida.Codigo != 0 {
			return &ErroFerramenta{
				Etapa:   etapa.Nome,
				Comando: etapa.Comando,
				Codigo:  saida.Codigo,
				Stdout:  string(saida.Stdout),
				Stderr:  string(saida.Stderr),
			}
		}

		if etapa.RepassarSaida {
			fmt.Fprintf(w, "\n%s", saida.Stdout)
		}
	}
	return nil
}

func padrao(valor, alternativa string) string {
	if valor == "" {
		return alternativa
	}
	return valor
}

// caminhoExecutavel garante que o executável local não seja procurado no PATH
func caminhoExecutavel(nome string) string {
	if filepath.IsAbs(nome) || strings.ContainsRune(nome, filepath.Separator) {
		return nome
	}
	return "." + string(filepath.Separator) + nome
}
