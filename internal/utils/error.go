package utils

import (
	"errors"
	"fmt"
	"strings"
)

// Categorias de erro do compilador
var (
	ErrEstrutura = errors.New("estrutura de blocos inválida")
	ErrLiteral   = errors.New("literal inválido")
	ErrPilha     = errors.New("uso inválido da pilha")
	ErrExecucao  = errors.New("erro de execução")
	ErrArquivo   = errors.New("erro de arquivo")
)

// CompilerError representa um erro do compilador com informações de posição
type CompilerError struct {
	Mensagem string // Mensagem de erro
	Linha    int    // Linha onde ocorreu o erro
	Coluna   int    // Coluna onde ocorreu o erro
	Detalhes string // Detalhes adicionais do erro
	Causa    error  // Categoria do erro (ErrEstrutura, ErrLiteral, ...)
}

// Error monta a mensagem com posição e detalhes quando existirem
func (e *CompilerError) Error() string {
	var builder strings.Builder
	builder.WriteString(e.Mensagem)
	if e.Linha > 0 {
		builder.WriteString(fmt.Sprintf(" em linha %d", e.Linha))
		if e.Coluna > 0 {
			builder.WriteString(fmt.Sprintf(", coluna %d", e.Coluna))
		}
	}
	if e.Detalhes != "" {
		builder.WriteString(" (")
		builder.WriteString(e.Detalhes)
		builder.WriteString(")")
	}
	return builder.String()
}

// Unwrap expõe a categoria para errors.Is
func (e *CompilerError) Unwrap() error {
	return e.Causa
}

// NovoErro cria um novo erro do compilador
func NovoErro(mensagem string, linha, coluna int, detalhes string) *CompilerError {
	return &CompilerError{
		Mensagem: mensagem,
		Linha:    linha,
		Coluna:   coluna,
		Detalhes: detalhes,
	}
}

// NovoErroCategoria cria um erro do compilador pertencente a uma categoria
func NovoErroCategoria(causa error, mensagem string, linha, coluna int, detalhes string) *CompilerError {
	erro := NovoErro(mensagem, linha, coluna, detalhes)
	erro.Causa = causa
	return erro
}
