package debug

import (
	"fmt"
	"io"
	"os"
)

var Enabled bool = false

// Saida recebe as mensagens de debug (stderr por padrão para não misturar com a saída do programa)
var Saida io.Writer = os.Stderr

func Printf(format string, args ...interface{}) {
	if Enabled {
		fmt.Fprintf(Saida, format, args...)
	}
}

func Println(args ...interface{}) {
	if Enabled {
		fmt.Fprintln(Saida, args...)
	}
}
