package assembly

import (
	"github.com/khevencolino/Pilha/internal/backends"
	"github.com/khevencolino/Pilha/internal/backends/assembly/x86_64"
)

// NewAssemblyBackend cria o gerador x86-64 na sintaxe pedida (nasm ou gas)
func NewAssemblyBackend(sintaxe string) (backends.GeradorAssembly, error) {
	dialeto, err := x86_64.ObterDialeto(sintaxe)
	if err != nil {
		return nil, err
	}
	return x86_64.NewX86_64Backend(dialeto), nil
}
