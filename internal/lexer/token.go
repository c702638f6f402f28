package lexer

import "fmt"

// TipoOperacao representa o tipo de uma operação da linguagem de pilha
type TipoOperacao int

const (
	PUSH  TipoOperacao = iota // Empilha um literal
	ADD                       // Soma (+)
	SUB                       // Subtração (-)
	MUL                       // Multiplicação (*)
	DIV                       // Divisão (/)
	EQUAL                     // Igualdade (=)
	PRINT                     // Imprime o topo da pilha (.)
	IF                        // Início de bloco condicional
	ELSE                      // Ramo alternativo
	END                       // Fim de bloco
	NOP                       // Não faz nada
)

// String retorna uma representação em string do tipo de operação
func (t TipoOperacao) String() string {
	switch t {
	case PUSH:
		return "PUSH"
	case ADD:
		return "ADD"
	case SUB:
		return "SUB"
	case MUL:
		return "MUL"
	case DIV:
		return "DIV"
	case EQUAL:
		return "EQUAL"
	case PRINT:
		return "PRINT"
	case IF:
		return "IF"
	case ELSE:
		return "ELSE"
	case END:
		return "END"
	case NOP:
		return "NOP"
	default:
		return "UNKNOWN"
	}
}

// Operacao é uma instrução da sequência produzida pelo lexer.
// Apenas PUSH carrega Valor, que é a palavra do fonte sem validação.
type Operacao struct {
	Tipo    TipoOperacao // Tipo da operação
	Valor   string       // Literal de PUSH
	Posicao Position     // Posição da palavra no código fonte
}

// String retorna uma representação em string da operação
func (o Operacao) String() string {
	if o.Tipo == PUSH {
		return fmt.Sprintf("%s(%s)", o.Tipo, o.Valor)
	}
	return o.Tipo.String()
}

// NovaOperacao cria uma nova operação
func NovaOperacao(tipo TipoOperacao, valor string, posicao Position) Operacao {
	return Operacao{
		Tipo:    tipo,
		Valor:   valor,
		Posicao: posicao,
	}
}

// EControle verifica se a operação é if, else ou end
func (o Operacao) EControle() bool {
	return o.Tipo == IF || o.Tipo == ELSE || o.Tipo == END
}

// EAritmetica verifica se a operação é binária (consome dois valores e produz um)
func (o Operacao) EAritmetica() bool {
	return o.Tipo == ADD || o.Tipo == SUB || o.Tipo == MUL || o.Tipo == DIV || o.Tipo == EQUAL
}
