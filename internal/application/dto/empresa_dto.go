package dto

import "time"

// EmpresaRequest dados do emitente.
type EmpresaRequest struct {
	RazaoSocial       string `json:"razao_social"`
	NomeFantasia      string `json:"nome_fantasia"`
	CNPJ              string `json:"cnpj"`
	InscricaoEstadual string `json:"inscricao_estadual"`
	Endereco          string `json:"endereco"`
	Cidade            string `json:"cidade"`
	UF                string `json:"uf"`
	CodigoUF          string `json:"codigo_uf"`
	Telefone          string `json:"telefone"`
	Email             string `json:"email"`
}

// EmpresaResponse emitente configurado.
type EmpresaResponse struct {
	ID                string    `json:"id"`
	RazaoSocial       string    `json:"razao_social"`
	NomeFantasia      string    `json:"nome_fantasia"`
	CNPJ              string    `json:"cnpj"`
	InscricaoEstadual string    `json:"inscricao_estadual"`
	Endereco          string    `json:"endereco"`
	Cidade            string    `json:"cidade"`
	UF                string    `json:"uf"`
	CodigoUF          string    `json:"codigo_uf"`
	Telefone          string    `json:"telefone"`
	Email             string    `json:"email"`
	UpdatedAt         time.Time `json:"updated_at"`
}
