package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/khevencolino/Pilha/internal/compiler"
	"github.com/khevencolino/Pilha/internal/config"
	"github.com/khevencolino/Pilha/internal/debug"
	"github.com/khevencolino/Pilha/internal/registry"
	"github.com/khevencolino/Pilha/internal/utils"
	"github.com/tebeka/atexit"
)

func main() {
	cfg, err := config.Carregar(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		mostrarAjuda()
		atexit.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		atexit.Exit(1)
	}

	if cfg.Ajuda {
		mostrarAjuda()
		atexit.Exit(0)
	}

	debug.Enabled = cfg.Debug

	compilador := compiler.NovoCompilador()

	resultado, err := compilador.CompilarArquivo(cfg)
	if resultado != nil && cfg.Limpar {
		atexit.Register(func() {
			if err := utils.RemoverArquivos(resultado.Intermediarios...); err != nil {
				fmt.Fprintf(os.Stderr, "Erro ao limpar: %v\n", err)
			}
		})
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Erro de compilação: %v\n", err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func mostrarAjuda() {
	fmt.Printf(`Compilador Pilha - linguagem de pilha para x86-64

USO:
    pilha [flags] <arquivo> [flags]

FLAGS:
    -backend=<tipo>     Backend a ser usado (padrão: assembly)
    -sintaxe=<dialeto>  Sintaxe do assembly: nasm ou gas (padrão: nasm)
    -o=<base>           Base dos arquivos gerados (padrão: output)
    -r                  Executa o programa depois de ligar
    -arvore             Mostra a estrutura de blocos if/else/end
    -verificar          Verifica estaticamente o uso da pilha
    -limpar             Remove .asm/.s e .o ao sair
    -debug              Ativar mensagens de debug
    -help               Mostra esta ajuda

BACKENDS DISPONÍVEIS:

assembly, asm, native
    - Gera assembly x86-64 e chama nasm (ou as) e ld
    - Executável ELF estático, sem libc

bytecode, vm, simular
    - Simula o programa numa VM de pilha
    - Não depende de ferramentas externas

VARIÁVEIS DE AMBIENTE:
    PILHA_SAIDA, PILHA_BACKEND, PILHA_SINTAXE, PILHA_DEBUG,
    PILHA_MONTADOR, PILHA_LIGADOR

PALAVRAS:
%s
EXEMPLOS:
    pilha programa.pilha                     # Gera output.asm e output
    pilha programa.pilha -r                  # Compila e executa
    pilha -sintaxe=gas -o build/prog prog.pilha
    pilha -backend=bytecode programa.pilha   # Simula sem nasm/ld
`, registry.RegistroGlobal.FormatarTabela())
}
