package compiler

import (
	"fmt"

	"github.com/khevencolino/Pilha/internal/debug"
	"github.com/khevencolino/Pilha/internal/lexer"
	"github.com/khevencolino/Pilha/internal/parser"
	"github.com/khevencolino/Pilha/internal/registry"
	"github.com/khevencolino/Pilha/internal/utils"
)

// VerificadorPilha calcula a altura da pilha em cada ponto do programa sem executá-lo
type VerificadorPilha struct {
	registro *registry.RegistroPalavras
	blocos   []quadroBloco
}

// quadroBloco guarda as alturas de um if ainda aberto
type quadroBloco struct {
	entrada  int // altura logo depois do if consumir a condição
	ramoSe   int // altura ao final do ramo "entao", -1 enquanto não houver else
	operacao lexer.Operacao
}

func NovoVerificadorPilha() *VerificadorPilha {
	return &VerificadorPilha{
		registro: registry.RegistroGlobal,
	}
}

// Verificar detecta pilha vazia garantida e ramos de if com alturas diferentes.
// Espera blocos já balanceados (ver parser.ResolverBlocos).
func (v *VerificadorPilha) Verificar(operacoes []lexer.Operacao, estrutura *parser.Estrutura) error {
	v.blocos = v.blocos[:0]
	altura := 0

	for i, operacao := range operacoes {
		assinatura, ok := v.registro.ObterAssinatura(operacao.Tipo)
		if !ok {
			return fmt.Errorf("operação sem assinatura: %s", operacao.Tipo)
		}

		if altura < assinatura.Consome {
			return utils.NovoErroCategoria(utils.ErrPilha,
				fmt.Sprintf("pilha vazia em '%s'", v.registro.DescreverOperacao(operacao)),
				operacao.Posicao.Line, operacao.Posicao.Column,
				fmt.Sprintf("requer %d valor(es), há %d", assinatura.Consome, altura))
		}
		altura += assinatura.Efeito()

		if (operacao.Tipo == lexer.ELSE || operacao.Tipo == lexer.END) && len(v.blocos) == 0 {
			return fmt.Errorf("'%s' sem bloco aberto no índice %d", v.registro.DescreverOperacao(operacao), i)
		}

		switch operacao.Tipo {
		case lexer.IF:
			if estrutura.Destino(i) == parser.SemDestino {
				return fmt.Errorf("if sem destino no índice %d", i)
			}
			v.blocos = append(v.blocos, quadroBloco{entrada: altura, ramoSe: -1, operacao: operacao})

		case lexer.ELSE:
			topo := &v.blocos[len(v.blocos)-1]
			topo.ramoSe = altura
			altura = topo.entrada

		case lexer.END:
			topo := v.blocos[len(v.blocos)-1]
			v.blocos = v.blocos[:len(v.blocos)-1]

			esperado := topo.entrada
			if topo.ramoSe >= 0 {
				esperado = topo.ramoSe
			}
			if altura != esperado {
				return utils.NovoErroCategoria(utils.ErrPilha,
					"ramos do 'if' deixam a pilha com alturas diferentes",
					topo.operacao.Posicao.Line, topo.operacao.Posicao.Column,
					fmt.Sprintf("%d contra %d", esperado, altura))
			}
		}
	}

	if altura > 0 {
		debug.Printf("⚠️  %d valor(es) ficam na pilha ao final do programa\n", altura)
	}
	return nil
}
