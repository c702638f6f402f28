package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/xyproto/env/v2"
)

// Backends disponíveis
const (
	BackendAssembly = "assembly"
	BackendBytecode = "bytecode"
)

// Config reúne as opções de uma execução do compilador
type Config struct {
	Entrada   string // Arquivo fonte
	Saida     string // Base dos arquivos gerados (output -> output.asm, output.o, output)
	Backend   string // assembly ou bytecode
	Sintaxe   string // nasm ou gas
	Executar  bool   // Roda o executável depois de ligar
	Debug     bool
	Arvore    bool // Mostra a estrutura de blocos
	Verificar bool // Roda o verificador estático da pilha
	Limpar    bool // Apaga .asm e .o ao sair
	Ajuda     bool
	Montador  string // Sobrescreve nasm/as
	Ligador   string // Sobrescreve ld
}

// Padrao retorna a configuração padrão, lendo as variáveis PILHA_*
func Padrao() *Config {
	return &Config{
		Saida:    env.Str("PILHA_SAIDA", "output"),
		Backend:  env.Str("PILHA_BACKEND", BackendAssembly),
		Sintaxe:  env.Str("PILHA_SINTAXE", "nasm"),
		Debug:    env.Bool("PILHA_DEBUG"),
		Montador: env.Str("PILHA_MONTADOR"),
		Ligador:  env.Str("PILHA_LIGADOR", "ld"),
	}
}

// Carregar processa os argumentos da linha de comando (sem o nome do programa)
func Carregar(args []string, erros io.Writer) (*Config, error) {
	cfg := Padrao()

	flags := flag.NewFlagSet("pilha", flag.ContinueOnError)
	flags.SetOutput(erros)

	flags.StringVar(&cfg.Backend, "backend", cfg.Backend, "Backend a ser usado (assembly, bytecode)")
	flags.StringVar(&cfg.Sintaxe, "sintaxe", cfg.Sintaxe, "Sintaxe do assembly (nasm, gas)")
	flags.StringVar(&cfg.Saida, "o", cfg.Saida, "Base dos arquivos de saída")
	flags.BoolVar(&cfg.Executar, "r", false, "Executa o programa depois de compilar")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Ativar mensagens de debug")
	flags.BoolVar(&cfg.Arvore, "arvore", false, "Mostra a estrutura de blocos if/else/end")
	flags.BoolVar(&cfg.Verificar, "verificar", false, "Verifica estaticamente o uso da pilha")
	flags.BoolVar(&cfg.Limpar, "limpar", false, "Remove arquivos intermediários ao sair")
	flags.BoolVar(&cfg.Ajuda, "help", false, "Mostra ajuda")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if cfg.Ajuda {
		return cfg, nil
	}

	// Permite flags depois do arquivo, como em `pilha programa.pilha -r`
	restantes := flags.Args()
	if len(restantes) < 1 {
		return nil, fmt.Errorf("arquivo de entrada requerido")
	}
	cfg.Entrada = restantes[0]
	if len(restantes) > 1 {
		if err := flags.Parse(restantes[1:]); err != nil {
			return nil, err
		}
		if flags.NArg() > 0 {
			return nil, fmt.Errorf("argumentos inesperados: %s", strings.Join(flags.Args(), " "))
		}
	}

	backend, err := normalizarBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}
	cfg.Backend = backend

	return cfg, nil
}

func normalizarBackend(nome string) (string, error) {
	switch strings.ToLower(nome) {
	case "assembly", "asm", "native":
		return BackendAssembly, nil
	case "bytecode", "vm", "simular":
		return BackendBytecode, nil
	default:
		return "", fmt.Errorf("backend desconhecido: %s (use assembly ou bytecode)", nome)
	}
}
