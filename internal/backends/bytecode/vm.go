package bytecode

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/khevencolino/Pilha/internal/debug"
	"github.com/khevencolino/Pilha/internal/lexer"
	"github.com/khevencolino/Pilha/internal/registry"
	"github.com/khevencolino/Pilha/internal/utils"
)

// CapacidadePilha é o número máximo de valores na pilha da VM
const CapacidadePilha = 1024

type VM struct {
	stack     []int64
	stackTop  int
	pc        int // program counter
	saida     io.Writer
	operacoes []lexer.Operacao // usadas só para nomear a palavra nos erros
}

func NewVM(saida io.Writer) *VM {
	return &VM{
		stack:    make([]int64, CapacidadePilha), // stack fixo
		stackTop: 0,
		pc:       0,
		saida:    saida,
	}
}

func (vm *VM) Execute(instructions []Instruction) error {
	debug.Printf("📊 Bytecode gerado (%d instruções):\n", len(instructions))
	if debug.Enabled {
		for i, instr := range instructions {
			debug.Printf("  %03d: %s %d\n", i, instr.OpCode, instr.Operand)
		}
		debug.Println()
	}

	debug.Printf("🏃 Executando...\n")

	for vm.pc < len(instructions) {
		instr := instructions[vm.pc]

		if vm.stackTop < instr.OpCode.consumo() {
			return vm.erro(instr, "pilha vazia", fmt.Sprintf("requer %d valor(es), há %d", instr.OpCode.consumo(), vm.stackTop))
		}

		switch instr.OpCode {
		case OP_CONST:
			if vm.stackTop >= len(vm.stack) {
				return vm.erro(instr, "estouro da pilha", fmt.Sprintf("capacidade %d", len(vm.stack)))
			}
			vm.push(instr.Operand)

		case OP_ADD:
			b := vm.pop()
			a := vm.pop()
			vm.push(a + b)

		case OP_SUB:
			b := vm.pop()
			a := vm.pop()
			vm.push(a - b)

		case OP_MUL:
			b := vm.pop()
			a := vm.pop()
			vm.push(a * b)

		case OP_DIV:
			b := vm.pop()
			a := vm.pop()
			if b == 0 {
				return vm.erro(instr, "divisão por zero", "")
			}
			if a == math.MinInt64 && b == -1 {
				return vm.erro(instr, "estouro na divisão", "")
			}
			vm.push(a / b)

		case OP_EQ:
			b := vm.pop()
			a := vm.pop()
			if a == b {
				vm.push(1)
			} else {
				vm.push(0)
			}

		case OP_PRINT:
			// Mesma saída da rotina dump: decimal sem sinal e quebra de linha
			valor := uint64(vm.pop())
			if _, err := io.WriteString(vm.saida, strconv.FormatUint(valor, 10)+"\n"); err != nil {
				return utils.NovoErroCategoria(utils.ErrExecucao, "erro ao escrever saída", 0, 0, err.Error())
			}

		case OP_NOP:

		case OP_JF:
			if vm.pop() == 0 {
				vm.pc = int(instr.Operand)
				continue
			}

		case OP_JMP:
			vm.pc = int(instr.Operand)
			continue

		case OP_HALT:
			debug.Printf("✅ Execução concluída!\n")
			return nil

		default:
			return fmt.Errorf("opcode desconhecido: %d", instr.OpCode)
		}

		vm.pc++
	}

	return nil
}

// erro monta um erro de execução apontando a palavra que o causou
func (vm *VM) erro(instr Instruction, mensagem string, detalhes string) error {
	if instr.Origem >= 0 && instr.Origem < len(vm.operacoes) {
		operacao := vm.operacoes[instr.Origem]
		mensagem = fmt.Sprintf("%s em '%s'", mensagem, registry.RegistroGlobal.DescreverOperacao(operacao))
		return utils.NovoErroCategoria(utils.ErrExecucao, mensagem, operacao.Posicao.Line, operacao.Posicao.Column, detalhes)
	}
	return utils.NovoErroCategoria(utils.ErrExecucao, mensagem, instr.Line, 0, detalhes)
}

func (vm *VM) push(value int64) {
	vm.stack[vm.stackTop] = value
	vm.stackTop++
}

func (vm *VM) pop() int64 {
	vm.stackTop--
	return vm.stack[vm.stackTop]
}

// Profundidade retorna quantos valores restaram na pilha
func (vm *VM) Profundidade() int {
	return vm.stackTop
}
