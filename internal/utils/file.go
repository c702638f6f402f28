package utils

import (
	"os"
	"path/filepath"
)

// LerArquivo lê um arquivo e retorna seu conteúdo
func LerArquivo(nomeArquivo string) (string, error) {
	bytesConteudo, err := os.ReadFile(nomeArquivo)
	if err != nil {
		return "", NovoErroCategoria(ErrArquivo, "erro ao ler arquivo "+nomeArquivo, 0, 0, err.Error())
	}
	return string(bytesConteudo), nil
}

// EscreverArquivo escreve conteúdo em um arquivo, criando o diretório se preciso
func EscreverArquivo(nomeArquivo string, conteudo string) error {
	diretorio := filepath.Dir(nomeArquivo)
	if err := os.MkdirAll(diretorio, 0755); err != nil {
		return NovoErroCategoria(ErrArquivo, "erro ao criar diretório "+diretorio, 0, 0, err.Error())
	}

	if err := os.WriteFile(nomeArquivo, []byte(conteudo), 0644); err != nil {
		return NovoErroCategoria(ErrArquivo, "erro ao escrever arquivo "+nomeArquivo, 0, 0, err.Error())
	}

	return nil
}

// RemoverArquivos apaga arquivos intermediários, ignorando os que já não existem
func RemoverArquivos(nomes ...string) error {
	for _, nome := range nomes {
		if err := os.Remove(nome); err != nil && !os.IsNotExist(err) {
			return NovoErroCategoria(ErrArquivo, "erro ao remover "+nome, 0, 0, err.Error())
		}
	}
	return nil
}
