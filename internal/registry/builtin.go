package registry

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/khevencolino/Pilha/internal/lexer"
)

// Assinatura descreve o efeito de uma palavra sobre a pilha
type Assinatura struct {
	Palavra   string // Texto da palavra no código fonte
	Consome   int    // Quantos valores retira da pilha
	Produz    int    // Quantos valores coloca na pilha
	Descricao string
}

// Efeito retorna a variação líquida da altura da pilha
func (a Assinatura) Efeito() int {
	return a.Produz - a.Consome
}

// RegistroPalavras mantém as assinaturas de todas as operações
type RegistroPalavras struct {
	assinaturas map[lexer.TipoOperacao]Assinatura
}

// Definições padrão das operações da linguagem
var assinaturasPadrao = map[lexer.TipoOperacao]Assinatura{
	lexer.PUSH:  {Palavra: "<literal>", Consome: 0, Produz: 1, Descricao: "Empilha um inteiro de 64 bits"},
	lexer.ADD:   {Palavra: "+", Consome: 2, Produz: 1, Descricao: "Soma a + b"},
	lexer.SUB:   {Palavra: "-", Consome: 2, Produz: 1, Descricao: "Subtrai a - b (primeiro empilhado menos o segundo)"},
	lexer.MUL:   {Palavra: "*", Consome: 2, Produz: 1, Descricao: "Multiplica a * b"},
	lexer.DIV:   {Palavra: "/", Consome: 2, Produz: 1, Descricao: "Divide a / b com sinal, truncando"},
	lexer.EQUAL: {Palavra: "=", Consome: 2, Produz: 1, Descricao: "Empilha 1 se a == b, senão 0"},
	lexer.PRINT: {Palavra: ".", Consome: 1, Produz: 0, Descricao: "Desempilha e imprime em decimal sem sinal"},
	lexer.IF:    {Palavra: "if", Consome: 1, Produz: 0, Descricao: "Desempilha; se zero, pula para o else/end correspondente"},
	lexer.ELSE:  {Palavra: "else", Consome: 0, Produz: 0, Descricao: "Ramo executado quando a condição do if é zero"},
	lexer.END:   {Palavra: "end", Consome: 0, Produz: 0, Descricao: "Fecha o bloco if/else"},
	lexer.NOP:   {Palavra: "nop", Consome: 0, Produz: 0, Descricao: "Não faz nada"},
}

// NovoRegistroPalavras cria um registro com as operações padrão
func NovoRegistroPalavras() *RegistroPalavras {
	registro := &RegistroPalavras{
		assinaturas: make(map[lexer.TipoOperacao]Assinatura, len(assinaturasPadrao)),
	}
	for tipo, assinatura := range assinaturasPadrao {
		registro.assinaturas[tipo] = assinatura
	}
	return registro
}

// ObterAssinatura retorna a assinatura de uma operação
func (r *RegistroPalavras) ObterAssinatura(tipo lexer.TipoOperacao) (Assinatura, bool) {
	assinatura, ok := r.assinaturas[tipo]
	return assinatura, ok
}

// DescreverOperacao retorna o nome legível de uma operação para mensagens de erro
func (r *RegistroPalavras) DescreverOperacao(operacao lexer.Operacao) string {
	if operacao.Tipo == lexer.PUSH {
		return operacao.Valor
	}
	if assinatura, ok := r.assinaturas[operacao.Tipo]; ok {
		return assinatura.Palavra
	}
	return operacao.Tipo.String()
}

// ListarAssinaturas retorna as assinaturas na ordem dos tipos de operação
func (r *RegistroPalavras) ListarAssinaturas() []Assinatura {
	tipos := lo.Keys(r.assinaturas)
	sort.Slice(tipos, func(i, j int) bool { return tipos[i] < tipos[j] })
	return lo.Map(tipos, func(tipo lexer.TipoOperacao, _ int) Assinatura {
		return r.assinaturas[tipo]
	})
}

// FormatarTabela monta a tabela de palavras usada na ajuda da linha de comando
func (r *RegistroPalavras) FormatarTabela() string {
	tabela := ""
	for _, assinatura := range r.ListarAssinaturas() {
		tabela += fmt.Sprintf("    %-10s (%d -> %d) %s\n", assinatura.Palavra, assinatura.Consome, assinatura.Produz, assinatura.Descricao)
	}
	return tabela
}

// Instância global do registro
var RegistroGlobal = NovoRegistroPalavras()
