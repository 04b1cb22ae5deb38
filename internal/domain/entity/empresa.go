package entity

import "time"

// Empresa dados do emitente (razão social, CNPJ, IE) usados na NF-e e nos
// relatórios. Registro único.
type Empresa struct {
	ID                 string
	RazaoSocial        string
	NomeFantasia       string
	CNPJ               string
	InscricaoEstadual  string
	Endereco           string
	Cidade             string
	UF                 string
	CodigoUF           string // código IBGE (ex. "43")
	Telefone           string
	Email              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
