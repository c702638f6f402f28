package bytecode

type OpCode byte

const (
	OP_CONST OpCode = iota // CONST valor
	OP_ADD                 // ADD
	OP_SUB                 // SUB
	OP_MUL                 // MUL
	OP_DIV                 // DIV
	OP_EQ                  // EQUAL
	OP_PRINT               // PRINT
	OP_NOP                 // NOP (também usado para end)
	OP_HALT                // HALT

	// Estruturas de controle
	OP_JMP // JMP endereço (pulo incondicional)
	OP_JF  // JF endereço (pulo se o topo for zero)
)

type Instruction struct {
	OpCode  OpCode
	Operand int64
	Line    int // para debug
	Origem  int // índice da operação de origem, -1 para HALT
}

func (op OpCode) String() string {
	switch op {
	case OP_CONST:
		return "CONST"
	case OP_ADD:
		return "ADD"
	case OP_SUB:
		return "SUB"
	case OP_MUL:
		return "MUL"
	case OP_DIV:
		return "DIV"
	case OP_EQ:
		return "EQ"
	case OP_PRINT:
		return "PRINT"
	case OP_NOP:
		return "NOP"
	case OP_HALT:
		return "HALT"
	case OP_JMP:
		return "JMP"
	case OP_JF:
		return "JF"
	default:
		return "UNKNOWN"
	}
}

// consumo indica quantos valores cada opcode retira da pilha
func (op OpCode) consumo() int {
	switch op {
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_EQ:
		return 2
	case OP_PRINT, OP_JF:
		return 1
	default:
		return 0
	}
}
