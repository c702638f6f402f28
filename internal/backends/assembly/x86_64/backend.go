package x86_64

import (
	"fmt"
	"strings"

	"github.com/khevencolino/Pilha/internal/debug"
	"github.com/khevencolino/Pilha/internal/lexer"
	"github.com/khevencolino/Pilha/internal/parser"
)

// X86_64Backend traduz a sequência de operações para assembly de uma máquina de pilha.
// A pilha de operandos é a própria pilha nativa (push/pop).
type X86_64Backend struct {
	dialeto *Dialeto
	output  strings.Builder
}

func NewX86_64Backend(dialeto *Dialeto) *X86_64Backend {
	return &X86_64Backend{
		dialeto: dialeto,
	}
}

func (a *X86_64Backend) GetName() string      { return "Assembly x86-64 (" + a.dialeto.Nome + ")" }
func (a *X86_64Backend) GetExtension() string { return a.dialeto.Extensao }
func (a *X86_64Backend) Sintaxe() string      { return a.dialeto.Nome }

// Gerar produz o texto assembly completo. Só falha quando os blocos if/else/end estão desbalanceados.
func (a *X86_64Backend) Gerar(operacoes []lexer.Operacao) (string, error) {
	debug.Printf("🔧 Gerando assembly x86-64 (%s)...\n", a.dialeto.Nome)

	estrutura, err := parser.ResolverBlocos(operacoes)
	if err != nil {
		return "", err
	}

	a.output.Reset()
	a.gerarPrologo()

	for i, operacao := range operacoes {
		a.gerarOperacao(i, operacao, estrutura)
	}

	a.gerarEpilogo()

	return a.output.String(), nil
}

func (a *X86_64Backend) gerarOperacao(i int, operacao lexer.Operacao, estrutura *parser.Estrutura) {
	d := a.dialeto

	switch operacao.Tipo {
	case lexer.PUSH:
		a.output.WriteString(d.Empilhar(operacao.Valor))
	case lexer.ADD:
		a.output.WriteString(d.Soma)
	case lexer.SUB:
		a.output.WriteString(d.Subtracao)
	case lexer.MUL:
		a.output.WriteString(d.Multiplicacao)
	case lexer.DIV:
		a.output.WriteString(d.Divisao)
	case lexer.EQUAL:
		a.output.WriteString(d.Igualdade)
	case lexer.PRINT:
		a.output.WriteString(d.Imprime)
	case lexer.NOP:
		a.output.WriteString(d.Nop)

	// O rótulo de cada bloco leva o índice da operação que o define (else ou end)
	case lexer.IF:
		a.output.WriteString(d.SaltoSeZero(rotulo(estrutura.Destino(i))))
	case lexer.ELSE:
		a.output.WriteString(d.Salto(rotulo(estrutura.Destino(i))))
		a.output.WriteString(d.DefinirRotulo(rotulo(i)))
	case lexer.END:
		a.output.WriteString(d.DefinirRotulo(rotulo(i)))
	}
}

func (a *X86_64Backend) gerarPrologo() {
	a.output.WriteString(a.dialeto.Secao)
	a.output.WriteString(a.dialeto.RotinaImpressao)
	a.output.WriteString(a.dialeto.PontoEntrada)
}

func (a *X86_64Backend) gerarEpilogo() {
	a.output.WriteString(a.dialeto.Sair)
}

func rotulo(indice int) string {
	return fmt.Sprintf(".addr_%d", indice)
}
