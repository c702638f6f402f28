package toolchain

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"

	"github.com/khevencolino/Pilha/internal/debug"
)

// Saida é o resultado capturado de um processo externo
type Saida struct {
	Stdout []byte
	Stderr []byte
	Codigo int // Código de saída do processo
}

// Executor roda um processo externo e espera o término
type Executor interface {
	Executar(comando string, args []string) (Saida, error)
}

// ExecutorSistema roda processos de verdade com os/exec
type ExecutorSistema struct{}

func NovoExecutorSistema() *ExecutorSistema {
	return &ExecutorSistema{}
}

// Executar retorna erro só quando o processo não pôde ser iniciado.
// Saídas com código diferente de zero voltam em Saida.Codigo.
func (e *ExecutorSistema) Executar(comando string, args []string) (Saida, error) {
	debug.Printf("  $ %s %v\n", comando, args)

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(comando, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	saida := Saida{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}

	var erroSaida *exec.ExitError
	if errors.As(err, &erroSaida) {
		saida.Codigo = erroSaida.ExitCode()
		return saida, nil
	}
	if err != nil {
		return saida, fmt.Errorf("falha ao executar %s: %w", comando, err)
	}
	return saida, nil
}
