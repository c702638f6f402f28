package bytecode

import (
	"io"
	"strconv"
	"strings"

	"github.com/khevencolino/Pilha/internal/debug"
	"github.com/khevencolino/Pilha/internal/lexer"
	"github.com/khevencolino/Pilha/internal/parser"
	"github.com/khevencolino/Pilha/internal/utils"
)

// BytecodeBackend simula o programa sem montador: traduz as operações para bytecode e roda na VM
type BytecodeBackend struct {
	instructions []Instruction
	operacoes    []lexer.Operacao
	zeroOctal    bool // "010" é octal, como no as (GAS). No nasm é decimal.
}

func NewBytecodeBackend() *BytecodeBackend {
	return &BytecodeBackend{
		instructions: make([]Instruction, 0),
	}
}

// ComSintaxe faz a leitura dos literais seguir o montador da sintaxe escolhida
func (b *BytecodeBackend) ComSintaxe(sintaxe string) *BytecodeBackend {
	b.zeroOctal = sintaxe == "gas"
	return b
}

func (b *BytecodeBackend) GetName() string      { return "Bytecode + VM" }
func (b *BytecodeBackend) GetExtension() string { return ".bc" }

// Gerar produz uma instrução por operação, no mesmo índice, seguida de HALT
func (b *BytecodeBackend) Gerar(operacoes []lexer.Operacao) ([]Instruction, error) {
	debug.Printf("🤖 Compilando para Bytecode...\n")

	estrutura, err := parser.ResolverBlocos(operacoes)
	if err != nil {
		return nil, err
	}

	b.instructions = make([]Instruction, 0, len(operacoes)+1)
	b.operacoes = operacoes

	for i, operacao := range operacoes {
		linha := operacao.Posicao.Line

		switch operacao.Tipo {
		case lexer.PUSH:
			valor, err := converterLiteral(operacao, b.zeroOctal)
			if err != nil {
				return nil, err
			}
			b.emit(OP_CONST, valor, linha, i)
		case lexer.ADD:
			b.emit(OP_ADD, 0, linha, i)
		case lexer.SUB:
			b.emit(OP_SUB, 0, linha, i)
		case lexer.MUL:
			b.emit(OP_MUL, 0, linha, i)
		case lexer.DIV:
			b.emit(OP_DIV, 0, linha, i)
		case lexer.EQUAL:
			b.emit(OP_EQ, 0, linha, i)
		case lexer.PRINT:
			b.emit(OP_PRINT, 0, linha, i)
		case lexer.NOP, lexer.END:
			b.emit(OP_NOP, 0, linha, i)

		case lexer.IF:
			// Falso pula para o corpo do else (depois dele) ou direto para o end
			alvo := estrutura.Destino(i)
			if operacoes[alvo].Tipo == lexer.ELSE {
				alvo++
			}
			b.emit(OP_JF, int64(alvo), linha, i)
		case lexer.ELSE:
			b.emit(OP_JMP, int64(estrutura.Destino(i)), linha, i)
		}
	}

	b.emit(OP_HALT, 0, 0, -1)
	return b.instructions, nil
}

// Executar gera o bytecode e o executa, escrevendo a saída do programa em w
func (b *BytecodeBackend) Executar(operacoes []lexer.Operacao, w io.Writer) error {
	instrucoes, err := b.Gerar(operacoes)
	if err != nil {
		return err
	}

	debug.Printf("🚀 Executando na Virtual Machine...\n")
	vm := NewVM(w)
	vm.operacoes = b.operacoes
	if err := vm.Execute(instrucoes); err != nil {
		return err
	}

	if restantes := vm.Profundidade(); restantes > 0 {
		debug.Printf("⚠️  %d valor(es) ficaram na pilha\n", restantes)
	}
	return nil
}

func (b *BytecodeBackend) emit(op OpCode, operand int64, line int, origem int) {
	b.instructions = append(b.instructions, Instruction{
		OpCode:  op,
		Operand: operand,
		Line:    line,
		Origem:  origem,
	})
}

// converterLiteral lê inteiros de 64 bits com ou sem sinal nas bases 0x, 0o e 0b.
// Zeros à esquerda só indicam octal quando zeroOctal é verdadeiro.
func converterLiteral(operacao lexer.Operacao, zeroOctal bool) (int64, error) {
	texto := operacao.Valor
	if !zeroOctal {
		texto = semZerosAEsquerda(texto)
	}

	if valor, err := strconv.ParseInt(texto, 0, 64); err == nil {
		return valor, nil
	}
	if valor, err := strconv.ParseUint(texto, 0, 64); err == nil {
		return int64(valor), nil
	}
	return 0, utils.NovoErroCategoria(utils.ErrLiteral,
		"literal inválido '"+operacao.Valor+"'",
		operacao.Posicao.Line, operacao.Posicao.Column,
		"esperado inteiro de 64 bits")
}

// semZerosAEsquerda transforma "010" em "10" e preserva prefixos como "0x"
func semZerosAEsquerda(texto string) string {
	sinal := ""
	if strings.HasPrefix(texto, "-") || strings.HasPrefix(texto, "+") {
		sinal, texto = texto[:1], texto[1:]
	}
	if len(texto) < 2 || texto[0] != '0' || texto[1] < '0' || texto[1] > '9' {
		return sinal + texto
	}

	texto = strings.TrimLeft(texto, "0")
	if texto == "" {
		texto = "0"
	}
	return sinal + texto
}
