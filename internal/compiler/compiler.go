package compiler

import (
	"fmt"
	"io"
	"os"

	"github.com/khevencolino/Pilha/internal/backends"
	"github.com/khevencolino/Pilha/internal/backends/assembly"
	"github.com/khevencolino/Pilha/internal/backends/bytecode"
	"github.com/khevencolino/Pilha/internal/config"
	"github.com/khevencolino/Pilha/internal/debug"
	"github.com/khevencolino/Pilha/internal/lexer"
	"github.com/khevencolino/Pilha/internal/parser"
	"github.com/khevencolino/Pilha/internal/toolchain"
	"github.com/khevencolino/Pilha/internal/utils"
)

// Compiler representa o compilador principal
type Compiler struct {
	executor            toolchain.Executor         // Roda nasm/as, ld e o executável
	saida               io.Writer                  // Mensagens de progresso e saída do programa
	verificarHospedeiro func() error               // Confirma que a máquina roda ELF x86-64
	visualizador        *parser.VisualizadorArvore // Desenha a estrutura de blocos
	verificador         *VerificadorPilha          // Verificação estática opcional
}

// Opcao configura o compilador
type Opcao func(*Compiler)

// ComExecutor troca o executor de processos externos
func ComExecutor(executor toolchain.Executor) Opcao {
	return func(c *Compiler) { c.executor = executor }
}

// ComSaida troca o destino das mensagens e da saída do programa
func ComSaida(w io.Writer) Opcao {
	return func(c *Compiler) { c.saida = w }
}

// ComVerificacaoHospedeiro troca a checagem da máquina hospedeira
func ComVerificacaoHospedeiro(verificar func() error) Opcao {
	return func(c *Compiler) { c.verificarHospedeiro = verificar }
}

// NovoCompilador cria um novo compilador
func NovoCompilador(opcoes ...Opcao) *Compiler {
	c := &Compiler{
		executor:            toolchain.NovoExecutorSistema(),
		saida:               os.Stdout,
		verificarHospedeiro: toolchain.VerificarHospedeiro,
		visualizador:        parser.NovoVisualizador(),
		verificador:         NovoVerificadorPilha(),
	}
	for _, opcao := range opcoes {
		opcao(c)
	}
	return c
}

// CompilarArquivo compila um arquivo fonte
func (c *Compiler) CompilarArquivo(cfg *config.Config) (*backends.CompilationResult, error) {
	conteudo, err := utils.LerArquivo(cfg.Entrada)
	if err != nil {
		return nil, err
	}

	return c.CompilarTexto(conteudo, cfg)
}

// CompilarTexto executa o pipeline completo a partir do texto fonte
func (c *Compiler) CompilarTexto(conteudo string, cfg *config.Config) (*backends.CompilationResult, error) {
	operacoes := lexer.Tokenizar(conteudo)

	// Imprime operações para depuração
	if debug.Enabled {
		debug.Println("Operações encontradas:")
		lexer.ImprimirOperacoes(debug.Saida, operacoes)
	}

	estrutura, err := parser.ResolverBlocos(operacoes)
	if err != nil {
		return nil, err
	}

	if cfg.Arvore {
		c.visualizador.ImprimirArvore(c.saida, operacoes, estrutura)
	}

	if cfg.Verificar {
		if err := c.verificador.Verificar(operacoes, estrutura); err != nil {
			return nil, err
		}
	}

	switch cfg.Backend {
	case config.BackendBytecode:
		return c.simular(operacoes, cfg)
	case config.BackendAssembly, "":
		return c.compilarNativo(operacoes, cfg)
	default:
		return nil, fmt.Errorf("backend desconhecido: %s", cfg.Backend)
	}
}

// compilarNativo gera o assembly, escreve o arquivo e chama montador e ligador
func (c *Compiler) compilarNativo(operacoes []lexer.Operacao, cfg *config.Config) (*backends.CompilationResult, error) {
	gerador, err := assembly.NewAssemblyBackend(cfg.Sintaxe)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(c.saida, "[+] Gerando assembly (%s)...\n", gerador.GetName())
	texto, err := gerador.Gerar(operacoes)
	if err != nil {
		return nil, err
	}

	artefatos := toolchain.NovosArtefatos(cfg.Saida, gerador.GetExtension())
	if err := utils.EscreverArquivo(artefatos.Assembly, texto); err != nil {
		return nil, err
	}
	debug.Printf("Arquivo assembly criado com sucesso: %s\n", artefatos.Assembly)

	resultado := &backends.CompilationResult{
		OutputFile:     artefatos.Assembly,
		Intermediarios: []string{artefatos.Assembly, artefatos.Objeto},
	}

	if err := c.verificarHospedeiro(); err != nil {
		resultado.Message = err.Error()
		return resultado, fmt.Errorf("%w; arquivo gerado: %s", err, artefatos.Assembly)
	}

	ferramentas := toolchain.Ferramentas{
		Sintaxe:  toolchain.Sintaxe(gerador.Sintaxe()),
		Montador: cfg.Montador,
		Ligador:  cfg.Ligador,
	}
	pipeline := toolchain.NovoPipelineNativo(ferramentas, artefatos, cfg.Executar)
	if err := pipeline.Executar(c.executor, c.saida); err != nil {
		resultado.Message = err.Error()
		return resultado, err
	}

	resultado.Executavel = artefatos.Executavel
	resultado.Success = true
	resultado.Message = "executável gerado: " + artefatos.Executavel
	debug.Printf("Executável gerado: %s\n", artefatos.Executavel)

	fmt.Fprintln(c.saida, "[+] Pronto!")
	return resultado, nil
}

// simular roda o programa na VM de bytecode, sem ferramentas externas
func (c *Compiler) simular(operacoes []lexer.Operacao, cfg *config.Config) (*backends.CompilationResult, error) {
	// Os literais são lidos como o montador da sintaxe configurada os leria
	gerador, err := assembly.NewAssemblyBackend(cfg.Sintaxe)
	if err != nil {
		return nil, err
	}

	backend := bytecode.NewBytecodeBackend().ComSintaxe(gerador.Sintaxe())
	fmt.Fprintf(c.saida, "[+] Simulando com %s...\n", backend.GetName())

	if err := backend.Executar(operacoes, c.saida); err != nil {
		return nil, err
	}

	return &backends.CompilationResult{
		Success: true,
		Message: "simulação concluída",
	}, nil
}
