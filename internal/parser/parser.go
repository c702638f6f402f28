package parser

import (
	"fmt"

	"github.com/khevencolino/Pilha/internal/debug"
	"github.com/khevencolino/Pilha/internal/lexer"
	"github.com/khevencolino/Pilha/internal/utils"
)

// SemDestino marca operações que não desviam o fluxo
const SemDestino = -1

// Estrutura guarda o pareamento dos blocos if/else/end da sequência.
// Destinos[i] é o índice do else/end que fecha o if em i, ou do end que fecha o else em i.
type Estrutura struct {
	Destinos []int
}

// Destino retorna o índice pareado com a operação em i
func (e *Estrutura) Destino(i int) int {
	if i < 0 || i >= len(e.Destinos) {
		return SemDestino
	}
	return e.Destinos[i]
}

// blocoAberto é um if (ou else) ainda sem fechamento
type blocoAberto struct {
	indice   int
	operacao lexer.Operacao
}

// Parser analisa a estrutura de blocos de uma sequência de operações
type Parser struct {
	operacoes []lexer.Operacao
	pendentes []blocoAberto // Pilha de desvios aguardando destino
	destinos  []int
}

// NovoParser cria um novo analisador de blocos
func NovoParser(operacoes []lexer.Operacao) *Parser {
	return &Parser{
		operacoes: operacoes,
	}
}

// ResolverBlocos pareia cada if com seu else/end e cada else com seu end
func ResolverBlocos(operacoes []lexer.Operacao) (*Estrutura, error) {
	return NovoParser(operacoes).AnalisarPrograma()
}

// AnalisarPrograma percorre a sequência uma vez, usando a pilha de pendentes
func (p *Parser) AnalisarPrograma() (*Estrutura, error) {
	p.destinos = make([]int, len(p.operacoes))
	p.pendentes = p.pendentes[:0]

	for i, operacao := range p.operacoes {
		p.destinos[i] = SemDestino

		switch operacao.Tipo {
		case lexer.IF:
			p.empilhar(i, operacao)

		case lexer.ELSE:
			aberto, ok := p.desempilhar()
			if !ok {
				return nil, erroEstrutura("'else' sem 'if' correspondente", operacao, "")
			}
			if aberto.operacao.Tipo != lexer.IF {
				return nil, erroEstrutura("'else' duplicado no mesmo bloco", operacao,
					fmt.Sprintf("primeiro 'else' em %s", aberto.operacao.Posicao))
			}
			p.destinos[aberto.indice] = i
			p.empilhar(i, operacao)

		case lexer.END:
			aberto, ok := p.desempilhar()
			if !ok {
				return nil, erroEstrutura("'end' sem 'if' correspondente", operacao, "")
			}
			p.destinos[aberto.indice] = i
		}
	}

	if len(p.pendentes) > 0 {
		ultimo := p.pendentes[len(p.pendentes)-1]
		return nil, erroEstrutura(
			fmt.Sprintf("'%s' sem 'end' correspondente", palavraControle(ultimo.operacao.Tipo)),
			ultimo.operacao,
			fmt.Sprintf("%d bloco(s) abertos no fim do programa", len(p.pendentes)),
		)
	}

	debug.Printf("🔗 Blocos resolvidos: %v\n", p.destinos)
	return &Estrutura{Destinos: p.destinos}, nil
}

func (p *Parser) empilhar(indice int, operacao lexer.Operacao) {
	p.pendentes = append(p.pendentes, blocoAberto{indice: indice, operacao: operacao})
}

func (p *Parser) desempilhar() (blocoAberto, bool) {
	if len(p.pendentes) == 0 {
		return blocoAberto{}, false
	}
	topo := p.pendentes[len(p.pendentes)-1]
	p.pendentes = p.pendentes[:len(p.pendentes)-1]
	return topo, true
}

func palavraControle(tipo lexer.TipoOperacao) string {
	if tipo == lexer.ELSE {
		return "else"
	}
	return "if"
}

func erroEstrutura(mensagem string, operacao lexer.Operacao, detalhes string) error {
	return utils.NovoErroCategoria(utils.ErrEstrutura, mensagem,
		operacao.Posicao.Line, operacao.Posicao.Column, detalhes)
}
