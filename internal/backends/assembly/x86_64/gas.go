package x86_64

import "fmt"

// Mesma rotina de impressão do dialeto NASM, em sintaxe AT&T
const rotinaDumpGAS = `dump:
    movabsq $-3689348814741910323, %r8
    subq    $40, %rsp
    movb    $10, 31(%rsp)
    leaq    30(%rsp), %rcx
.Ldump_loop:
    movq    %rdi, %rax
    mulq    %r8
    movq    %rdi, %rax
    shrq    $3, %rdx
    leaq    (%rdx,%rdx,4), %rsi
    addq    %rsi, %rsi
    subq    %rsi, %rax
    movq    %rcx, %rsi
    subq    $1, %rcx
    addl    $48, %eax
    movb    %al, 1(%rcx)
    movq    %rdi, %rax
    movq    %rdx, %rdi
    cmpq    $9, %rax
    ja      .Ldump_loop
    leaq    32(%rsp), %rdx
    movl    $1, %edi
    subq    %rsi, %rdx
    movq    $1, %rax
    syscall
    addq    $40, %rsp
    ret

`

// GAS é a sintaxe AT&T usada com `as`
var GAS = &Dialeto{
	Nome:            "gas",
	Extensao:        ".s",
	Secao:           ".section .text\n",
	RotinaImpressao: rotinaDumpGAS,
	PontoEntrada:    ".global _start\n_start:\n",
	Sair:            linhas("movq $60, %rax", "movq $0, %rdi", "syscall"),

	Soma:          linhas("popq %rax", "popq %rbx", "addq %rbx, %rax", "pushq %rax"),
	Subtracao:     linhas("popq %rax", "popq %rbx", "subq %rax, %rbx", "pushq %rbx"),
	Multiplicacao: linhas("popq %rax", "popq %rbx", "imulq %rax, %rbx", "pushq %rbx"),
	Divisao:       linhas("popq %rbx", "popq %rax", "cqto", "idivq %rbx", "pushq %rax"),
	Igualdade:     linhas("movq $0, %rcx", "movq $1, %rdx", "popq %rax", "popq %rbx", "cmpq %rbx, %rax", "cmove %rdx, %rcx", "pushq %rcx"),
	Imprime:       linhas("popq %rdi", "call dump"),
	Nop:           linhas("nop"),

	Empilhar: func(literal string) string {
		return linhas("movabsq $"+literal+", %rax", "pushq %rax")
	},
	SaltoSeZero: func(rotulo string) string {
		return linhas("popq %rax", "testq %rax, %rax", "jz "+rotulo)
	},
	Salto: func(rotulo string) string {
		return linhas("jmp " + rotulo)
	},
	DefinirRotulo: func(rotulo string) string {
		return fmt.Sprintf("%s:\n", rotulo)
	},
}
