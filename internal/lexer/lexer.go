package lexer

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// palavrasChave mapeia cada palavra reservada para sua operação.
// Qualquer outra palavra vira PUSH.
var palavrasChave = map[string]TipoOperacao{
	"+":    ADD,
	"-":    SUB,
	"*":    MUL,
	"/":    DIV,
	"=":    EQUAL,
	".":    PRINT,
	"if":   IF,
	"else": ELSE,
	"end":  END,
	"nop":  NOP,
}

// palavra é um trecho sem espaços encontrado numa linha
type palavra struct {
	texto  string
	coluna int
	offset int
}

// Tokenizar converte o texto fonte na sequência de operações.
// Nunca falha: palavras desconhecidas viram literais e a validação fica com o montador.
func Tokenizar(texto string) []Operacao {
	linhas := strings.Split(texto, "\n")

	offsetLinha := 0
	inicios := make([]int, len(linhas))
	for i, linha := range linhas {
		inicios[i] = offsetLinha
		offsetLinha += len(linha) + 1
	}

	return lo.FlatMap(linhas, func(linha string, indice int) []Operacao {
		palavras := separarPalavras(linha)
		operacoes := make([]Operacao, 0, len(palavras))
		for _, p := range palavras {
			posicao := NovaPosicao(indice+1, p.coluna, inicios[indice]+p.offset)
			operacoes = append(operacoes, converterPalavra(p.texto, posicao))
		}
		return operacoes
	})
}

// converterPalavra aplica a tabela de palavras reservadas
func converterPalavra(texto string, posicao Position) Operacao {
	if tipo, ok := palavrasChave[texto]; ok {
		return NovaOperacao(tipo, "", posicao)
	}
	return NovaOperacao(PUSH, texto, posicao)
}

// separarPalavras divide uma linha em palavras, guardando coluna (em runas) e offset (em bytes)
func separarPalavras(linha string) []palavra {
	var palavras []palavra
	inicio := -1
	colunaInicio := 0
	coluna := 0

	for offset, r := range linha {
		coluna++
		if unicode.IsSpace(r) {
			if inicio >= 0 {
				palavras = append(palavras, palavra{texto: linha[inicio:offset], coluna: colunaInicio, offset: inicio})
				inicio = -1
			}
			continue
		}
		if inicio < 0 {
			inicio = offset
			colunaInicio = coluna
		}
	}
	if inicio >= 0 {
		palavras = append(palavras, palavra{texto: linha[inicio:], coluna: colunaInicio, offset: inicio})
	}

	return palavras
}

// ImprimirOperacoes imprime todas as operações de forma formatada
func ImprimirOperacoes(w io.Writer, operacoes []Operacao) {
	fmt.Fprintf(w, "%-6s %-10s %-15s %-20s\n", "ÍNDICE", "TIPO", "VALOR", "POSIÇÃO")
	fmt.Fprintln(w, strings.Repeat("-", 56))

	for i, operacao := range operacoes {
		fmt.Fprintf(w, "%-6d %-10s %-15s %-20s\n", i, operacao.Tipo, operacao.Valor, operacao.Posicao)
	}
}
