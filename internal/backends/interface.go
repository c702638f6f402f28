package backends

import "github.com/khevencolino/Pilha/internal/lexer"

// Gerador traduz a sequência de operações para o texto de saída de um backend
type Gerador interface {
	Gerar(operacoes []lexer.Operacao) (string, error)
	GetName() string
	GetExtension() string
}

// GeradorAssembly é um Gerador cujo texto precisa de montador e ligador
type GeradorAssembly interface {
	Gerador
	Sintaxe() string
}

type CompilationResult struct {
	OutputFile     string   // Arquivo gerado (assembly)
	Executavel     string   // Executável ligado, vazio quando não houve ligação
	Intermediarios []string // Arquivos que podem ser apagados ao final
	Success        bool
	Message        string
}
