package lexer

import "fmt"

// Position representa a posição de uma palavra no código fonte
type Position struct {
	Line   int // Linha no código (a partir de 1)
	Column int // Coluna da primeira runa da palavra (a partir de 1)
	Offset int // Posição absoluta em bytes no arquivo
}

// String retorna uma representação em string da posição
func (p Position) String() string {
	return fmt.Sprintf("linha %d, coluna %d", p.Line, p.Column)
}

// NovaPosicao cria uma nova posição
func NovaPosicao(linha, coluna, offset int) Position {
	return Position{
		Line:   linha,
		Column: coluna,
		Offset: offset,
	}
}
