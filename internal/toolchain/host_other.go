//go:build !linux

package toolchain

import (
	"fmt"
	"runtime"
)

// VerificarHospedeiro falha fora do Linux: o programa gerado usa syscalls Linux
func VerificarHospedeiro() error {
	return fmt.Errorf("backend assembly linux só monta/linka em Linux; sistema atual: %s", runtime.GOOS)
}
