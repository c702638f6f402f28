//go:build linux

package toolchain

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// VerificarHospedeiro confirma que a máquina consegue montar e rodar ELF x86-64
func VerificarHospedeiro() error {
	var nome unix.Utsname
	if err := unix.Uname(&nome); err != nil {
		return fmt.Errorf("uname falhou: %w", err)
	}

	maquina := unix.ByteSliceToString(nome.Machine[:])
	if maquina != "x86_64" {
		return fmt.Errorf("backend assembly só monta/linka em x86_64; máquina atual: %s", maquina)
	}
	return nil
}
