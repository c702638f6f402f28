package lexer_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/khevencolino/Pilha/internal/lexer"
)

// tipos extrai apenas os tipos das operações
func tipos(operacoes []lexer.Operacao) []lexer.TipoOperacao {
	resultado := make([]lexer.TipoOperacao, 0, len(operacoes))
	for _, operacao := range operacoes {
		resultado = append(resultado, operacao.Tipo)
	}
	return resultado
}

var _ = Describe("Tokenizar", func() {
	DescribeTable("palavras reservadas",
		func(palavra string, esperado lexer.TipoOperacao) {
			operacoes := lexer.Tokenizar(palavra)

			Expect(operacoes).To(HaveLen(1))
			Expect(operacoes[0].Tipo).To(Equal(esperado))
			Expect(operacoes[0].Valor).To(BeEmpty())
		},
		Entry("soma", "+", lexer.ADD),
		Entry("subtração", "-", lexer.SUB),
		Entry("multiplicação", "*", lexer.MUL),
		Entry("divisão", "/", lexer.DIV),
		Entry("igualdade", "=", lexer.EQUAL),
		Entry("impressão", ".", lexer.PRINT),
		Entry("if", "if", lexer.IF),
		Entry("else", "else", lexer.ELSE),
		Entry("end", "end", lexer.END),
		Entry("nop", "nop", lexer.NOP),
	)

	DescribeTable("qualquer outra palavra vira PUSH com o texto preservado",
		func(palavra string) {
			operacoes := lexer.Tokenizar(palavra)

			Expect(operacoes).To(HaveLen(1))
			Expect(operacoes[0].Tipo).To(Equal(lexer.PUSH))
			Expect(operacoes[0].Valor).To(Equal(palavra))
		},
		Entry("número", "34"),
		Entry("negativo", "-7"),
		Entry("hexadecimal", "0xff"),
		Entry("identificador", "foo"),
		Entry("maiúsculas não são palavras reservadas", "IF"),
		Entry("operador composto", "++"),
	)

	It("ignora a quantidade e o tipo de espaço em branco", func() {
		esperado := []lexer.TipoOperacao{lexer.PUSH, lexer.PUSH, lexer.ADD}

		for _, fonte := range []string{"1 2 +", "1\n2\n+", "1  2   +", "\t1\r\n2 \n\n +\n"} {
			operacoes := lexer.Tokenizar(fonte)
			Expect(tipos(operacoes)).To(Equal(esperado), "fonte %q", fonte)
			Expect(operacoes[0].Valor).To(Equal("1"))
			Expect(operacoes[1].Valor).To(Equal("2"))
		}
	})

	It("produz a sequência do exemplo 34 35 + .", func() {
		operacoes := lexer.Tokenizar("34 35 + .")

		Expect(tipos(operacoes)).To(Equal([]lexer.TipoOperacao{lexer.PUSH, lexer.PUSH, lexer.ADD, lexer.PRINT}))
		Expect(operacoes[0].Valor).To(Equal("34"))
		Expect(operacoes[1].Valor).To(Equal("35"))
	})

	It("retorna sequência vazia para texto vazio ou só com espaços", func() {
		Expect(lexer.Tokenizar("")).To(BeEmpty())
		Expect(lexer.Tokenizar(" \n\t\n  ")).To(BeEmpty())
	})

	It("registra linha e coluna de cada palavra", func() {
		operacoes := lexer.Tokenizar("1 2\n  if")

		Expect(operacoes[0].Posicao).To(Equal(lexer.NovaPosicao(1, 1, 0)))
		Expect(operacoes[1].Posicao).To(Equal(lexer.NovaPosicao(1, 3, 2)))
		Expect(operacoes[2].Posicao).To(Equal(lexer.NovaPosicao(2, 3, 6)))
		Expect(operacoes[2].Posicao.String()).To(Equal("linha 2, coluna 3"))
	})
})

var _ = Describe("Operacao", func() {
	It("formata PUSH com o literal", func() {
		Expect(lexer.Tokenizar("42")[0].String()).To(Equal("PUSH(42)"))
		Expect(lexer.Tokenizar("else")[0].String()).To(Equal("ELSE"))
	})

	It("classifica controle e aritmética", func() {
		operacoes := lexer.Tokenizar("if else end + = . 1")

		Expect(operacoes[0].EControle()).To(BeTrue())
		Expect(operacoes[1].EControle()).To(BeTrue())
		Expect(operacoes[2].EControle()).To(BeTrue())
		Expect(operacoes[3].EAritmetica()).To(BeTrue())
		Expect(operacoes[4].EAritmetica()).To(BeTrue())
		Expect(operacoes[5].EAritmetica()).To(BeFalse())
		Expect(operacoes[6].EControle()).To(BeFalse())
	})
})

var _ = Describe("ImprimirOperacoes", func() {
	It("lista cada operação com índice", func() {
		var saida bytes.Buffer
		lexer.ImprimirOperacoes(&saida, lexer.Tokenizar("7 ."))

		Expect(saida.String()).To(ContainSubstring("TIPO"))
		Expect(saida.String()).To(MatchRegexp(`0\s+PUSH\s+7`))
		Expect(saida.String()).To(MatchRegexp(`1\s+PRINT`))
	})
})
