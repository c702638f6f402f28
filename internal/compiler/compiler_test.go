package compiler

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	gomock "github.com/golang/mock/gomock"
	"github.com/khevencolino/Pilha/internal/config"
	"github.com/khevencolino/Pilha/internal/toolchain"
	"github.com/khevencolino/Pilha/internal/utils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Compiler", func() {
	var (
		mockCtrl     *gomock.Controller
		mockExecutor *MockExecutor
		saida        *bytes.Buffer
		diretorio    string
		cfg          *config.Config
		compilador   *Compiler
	)

	escreverFonte := func(fonte string) string {
		caminho := filepath.Join(diretorio, "programa.pilha")
		Expect(os.WriteFile(caminho, []byte(fonte), 0644)).To(Succeed())
		return caminho
	}

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockExecutor = NewMockExecutor(mockCtrl)
		saida = &bytes.Buffer{}
		diretorio = GinkgoT().TempDir()

		cfg = &config.Config{
			Saida:   filepath.Join(diretorio, "output"),
			Backend: config.BackendAssembly,
			Sintaxe: "nasm",
			Ligador: "ld",
		}
		compilador = NovoCompilador(
			ComExecutor(mockExecutor),
			ComSaida(saida),
			ComVerificacaoHospedeiro(func() error { return nil }),
		)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	Context("backend bytecode", func() {
		BeforeEach(func() {
			cfg.Backend = config.BackendBytecode
		})

		It("simula o programa lido do arquivo", func() {
			cfg.Entrada = escreverFonte("34 35 + .\n1 if 7 . else 8 . end\n")

			resultado, err := compilador.CompilarArquivo(cfg)

			Expect(err).NotTo(HaveOccurred())
			Expect(resultado.Success).To(BeTrue())
			Expect(saida.String()).To(ContainSubstring("69\n7\n"))
			Expect(filepath.Join(diretorio, "output.asm")).NotTo(BeAnExistingFile())
		})

		It("lê literais como o montador da sintaxe configurada", func() {
			_, err := compilador.CompilarTexto("010 .", cfg)
			Expect(err).NotTo(HaveOccurred())

			cfg.Sintaxe = "gas"
			_, err = compilador.CompilarTexto("010 .", cfg)
			Expect(err).NotTo(HaveOccurred())

			Expect(saida.String()).To(ContainSubstring("\n10\n"))
			Expect(saida.String()).To(HaveSuffix("\n8\n"))
		})

		It("propaga erros de execução da VM", func() {
			_, err := compilador.CompilarTexto("1 0 /", cfg)
			Expect(errors.Is(err, utils.ErrExecucao)).To(BeTrue())
		})
	})

	Context("backend assembly", func() {
		It("escreve o assembly, monta e liga", func() {
			cfg.Entrada = escreverFonte("34 35 + .")
			asm := cfg.Saida + ".asm"
			objeto := cfg.Saida + ".o"

			gomock.InOrder(
				mockExecutor.EXPECT().
					Executar("nasm", []string{"-f", "elf64", asm, "-o", objeto}).
					Return(toolchain.Saida{}, nil),
				mockExecutor.EXPECT().
					Executar("ld", []string{"-o", cfg.Saida, objeto}).
					Return(toolchain.Saida{}, nil),
			)

			resultado, err := compilador.CompilarArquivo(cfg)

			Expect(err).NotTo(HaveOccurred())
			Expect(resultado.Success).To(BeTrue())
			Expect(resultado.OutputFile).To(Equal(asm))
			Expect(resultado.Executavel).To(Equal(cfg.Saida))
			Expect(resultado.Intermediarios).To(ConsistOf(asm, objeto))

			conteudo, err := os.ReadFile(asm)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(conteudo)).To(ContainSubstring("global _start"))
			Expect(string(conteudo)).To(ContainSubstring("    mov rax, 34\n    push rax\n"))
			Expect(saida.String()).To(ContainSubstring("[+] Pronto!"))
		})

		It("repassa a saída do executável quando -r é usado", func() {
			cfg.Executar = true
			mockExecutor.EXPECT().Executar(gomock.Any(), gomock.Any()).Return(toolchain.Saida{}, nil).Times(2)
			mockExecutor.EXPECT().
				Executar(cfg.Saida, gomock.Nil()).
				Return(toolchain.Saida{Stdout: []byte("69\n")}, nil)

			_, err := compilador.CompilarTexto("34 35 + .", cfg)

			Expect(err).NotTo(HaveOccurred())
			Expect(saida.String()).To(ContainSubstring("\n69\n"))
		})

		It("usa as e extensão .s na sintaxe GAS", func() {
			cfg.Sintaxe = "gas"
			asm := cfg.Saida + ".s"
			objeto := cfg.Saida + ".o"

			gomock.InOrder(
				mockExecutor.EXPECT().
					Executar("as", []string{"-o", objeto, asm}).
					Return(toolchain.Saida{}, nil),
				mockExecutor.EXPECT().
					Executar("ld", []string{"-o", cfg.Saida, objeto}).
					Return(toolchain.Saida{}, nil),
			)

			resultado, err := compilador.CompilarTexto("1 .", cfg)

			Expect(err).NotTo(HaveOccurred())
			Expect(resultado.OutputFile).To(Equal(asm))
			Expect(asm).To(BeAnExistingFile())
		})

		It("para na primeira ferramenta que falha", func() {
			mockExecutor.EXPECT().
				Executar("nasm", gomock.Any()).
				Return(toolchain.Saida{Codigo: 1, Stderr: []byte("error: parser")}, nil)

			resultado, err := compilador.CompilarTexto("1 .", cfg)

			Expect(err).To(HaveOccurred())
			var erroFerramenta *toolchain.ErroFerramenta
			Expect(errors.As(err, &erroFerramenta)).To(BeTrue())
			Expect(erroFerramenta.Stderr).To(Equal("error: parser"))
			Expect(resultado.Success).To(BeFalse())
		})

		It("mantém o assembly quando a máquina não consegue montar", func() {
			compilador = NovoCompilador(
				ComExecutor(mockExecutor),
				ComSaida(saida),
				ComVerificacaoHospedeiro(func() error { return errors.New("máquina atual: arm64") }),
			)

			resultado, err := compilador.CompilarTexto("1 .", cfg)

			Expect(err).To(MatchError(ContainSubstring("arm64")))
			Expect(resultado.OutputFile).To(BeAnExistingFile())
			Expect(resultado.Success).To(BeFalse())
		})

		It("rejeita sintaxe desconhecida", func() {
			cfg.Sintaxe = "masm"
			_, err := compilador.CompilarTexto("1 .", cfg)
			Expect(err).To(MatchError(ContainSubstring("masm")))
		})
	})

	Context("análise", func() {
		It("não gera arquivos para blocos desbalanceados", func() {
			_, err := compilador.CompilarTexto("1 if 2 .", cfg)

			Expect(errors.Is(err, utils.ErrEstrutura)).To(BeTrue())
			Expect(cfg.Saida + ".asm").NotTo(BeAnExistingFile())
		})

		It("roda o verificador apenas quando pedido", func() {
			cfg.Backend = config.BackendBytecode
			cfg.Verificar = true

			_, err := compilador.CompilarTexto("1 if 2 end", cfg)

			Expect(errors.Is(err, utils.ErrPilha)).To(BeTrue())
		})

		It("mostra a árvore de blocos", func() {
			cfg.Backend = config.BackendBytecode
			cfg.Arvore = true

			_, err := compilador.CompilarTexto("1 if 2 . else 3 . end", cfg)

			Expect(err).NotTo(HaveOccurred())
			Expect(saida.String()).To(ContainSubstring("=== Estrutura de Blocos ==="))
			Expect(saida.String()).To(ContainSubstring("senao"))
		})

		It("falha com arquivo inexistente", func() {
			cfg.Entrada = filepath.Join(diretorio, "nao_existe.pilha")
			_, err := compilador.CompilarArquivo(cfg)
			Expect(errors.Is(err, utils.ErrArquivo)).To(BeTrue())
		})
	})
})
