package x86_64

import "fmt"

// rotinaDumpNASM imprime rdi em decimal sem sinal seguido de '\n'.
// Divide por 10 multiplicando por 0xCCCCCCCCCCCCCCCD e preenche o buffer de trás para frente.
const rotinaDumpNASM = `dump:
    mov     r8, -3689348814741910323
    sub     rsp, 40
    mov     BYTE [rsp+31], 10
    lea     rcx, [rsp+30]
.L2:
    mov     rax, rdi
    mul     r8
    mov     rax, rdi
    shr     rdx, 3
    lea     rsi, [rdx+rdx*4]
    add     rsi, rsi
    sub     rax, rsi
    mov     rsi, rcx
    sub     rcx, 1
    add     eax, 48
    mov     BYTE [rcx+1], al
    mov     rax, rdi
    mov     rdi, rdx
    cmp     rax, 9
    ja      .L2
    lea     rdx, [rsp+32]
    mov     edi, 1
    sub     rdx, rsi
    mov     rax, 1
    syscall
    add     rsp, 40
    ret

`

// NASM é a sintaxe Intel usada com `nasm -f elf64`
var NASM = &Dialeto{
	Nome:            "nasm",
	Extensao:        ".asm",
	Secao:           "segment .text\n",
	RotinaImpressao: rotinaDumpNASM,
	PontoEntrada:    "global _start\n_start:\n",
	Sair:            linhas("mov rax, 60", "mov rdi, 0", "syscall"),

	Soma:          linhas("pop rax", "pop rbx", "add rax, rbx", "push rax"),
	Subtracao:     linhas("pop rax", "pop rbx", "sub rbx, rax", "push rbx"),
	Multiplicacao: linhas("pop rax", "pop rbx", "imul rbx, rax", "push rbx"),
	Divisao:       linhas("pop rbx", "pop rax", "cqo", "idiv rbx", "push rax"),
	Igualdade:     linhas("mov rcx, 0", "mov rdx, 1", "pop rax", "pop rbx", "cmp rax, rbx", "cmove rcx, rdx", "push rcx"),
	Imprime:       linhas("pop rdi", "call dump"),
	Nop:           linhas("nop"),

	Empilhar: func(literal string) string {
		return linhas("mov rax, "+literal, "push rax")
	},
	SaltoSeZero: func(rotulo string) string {
		return linhas("pop rax", "test rax, rax", "jz "+rotulo)
	},
	Salto: func(rotulo string) string {
		return linhas("jmp " + rotulo)
	},
	DefinirRotulo: func(rotulo string) string {
		return fmt.Sprintf("%s:\n", rotulo)
	},
}
