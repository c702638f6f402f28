package x86_64

import (
	"fmt"
	"strings"
)

// Dialeto reúne os trechos de assembly de uma sintaxe do montador.
// Todos os trechos terminam em quebra de linha.
type Dialeto struct {
	Nome            string
	Extensao        string
	Secao           string
	RotinaImpressao string // Converte rdi para decimal sem sinal e escreve em stdout
	PontoEntrada    string
	Sair            string // exit(0)

	Soma          string
	Subtracao     string
	Multiplicacao string
	Divisao       string
	Igualdade     string
	Imprime       string
	Nop           string

	Empilhar      func(literal string) string
	SaltoSeZero   func(rotulo string) string
	Salto         func(rotulo string) string
	DefinirRotulo func(rotulo string) string
}

// ObterDialeto resolve o nome da sintaxe (nasm, intel, gas, att, as)
func ObterDialeto(nome string) (*Dialeto, error) {
	switch strings.ToLower(nome) {
	case "", "nasm", "intel":
		return NASM, nil
	case "gas", "att", "as":
		return GAS, nil
	default:
		return nil, fmt.Errorf("sintaxe de assembly não suportada: %s (use nasm ou gas)", nome)
	}
}

// linhas junta instruções indentadas, uma por linha
func linhas(instrucoes ...string) string {
	var builder strings.Builder
	for _, instrucao := range instrucoes {
		builder.WriteString("    ")
		builder.WriteString(instrucao)
		builder.WriteString("\n")
	}
	return builder.String()
}
