package parser

import (
	"fmt"
	"io"

	"github.com/m1gwings/treedrawer/tree"

	"github.com/khevencolino/Pilha/internal/lexer"
)

// VisualizadorArvore desenha a estrutura de blocos do programa
type VisualizadorArvore struct{}

// NovoVisualizador cria um novo visualizador
func NovoVisualizador() *VisualizadorArvore {
	return &VisualizadorArvore{}
}

// CriarArvore converte a sequência para o formato do treedrawer.
// Cada if vira um nó com os filhos "entao" e, se houver, "senao".
func (v *VisualizadorArvore) CriarArvore(operacoes []lexer.Operacao, estrutura *Estrutura) *tree.Tree {
	arvore := tree.NewTree(tree.NodeString("programa"))
	v.adicionarIntervalo(arvore, operacoes, estrutura, 0, len(operacoes))
	return arvore
}

// adicionarIntervalo pendura em pai as operações de [inicio, fim)
func (v *VisualizadorArvore) adicionarIntervalo(pai *tree.Tree, operacoes []lexer.Operacao, estrutura *Estrutura, inicio, fim int) {
	for i := inicio; i < fim; i++ {
		operacao := operacoes[i]
		if operacao.Tipo != lexer.IF {
			// else/end já são representados pelos nós do if
			if !operacao.EControle() {
				pai.AddChild(tree.NodeString(rotuloNo(operacao)))
			}
			continue
		}

		noSe := pai.AddChild(tree.NodeString("if"))
		alvo := estrutura.Destino(i)
		if alvo == SemDestino {
			return
		}

		entao := noSe.AddChild(tree.NodeString("entao"))
		v.adicionarIntervalo(entao, operacoes, estrutura, i+1, alvo)

		if operacoes[alvo].Tipo == lexer.ELSE {
			fimBloco := estrutura.Destino(alvo)
			senao := noSe.AddChild(tree.NodeString("senao"))
			v.adicionarIntervalo(senao, operacoes, estrutura, alvo+1, fimBloco)
			alvo = fimBloco
		}
		i = alvo
	}
}

func rotuloNo(operacao lexer.Operacao) string {
	if operacao.Tipo == lexer.PUSH {
		return operacao.Valor
	}
	return operacao.Tipo.String()
}

// ImprimirArvore imprime a árvore no writer
func (v *VisualizadorArvore) ImprimirArvore(w io.Writer, operacoes []lexer.Operacao, estrutura *Estrutura) {
	fmt.Fprintln(w, "=== Estrutura de Blocos ===")
	fmt.Fprintln(w, v.CriarArvore(operacoes, estrutura))
	fmt.Fprintln(w)
}
