// seed popula dados mínimos de operação: unidades de medida padrão e um
// usuário administrador inicial, se ainda não existirem.
//
// Uso: go run ./cmd/seed [email] [senha]
// Sem argumentos cria admin@frigosul.local com senha "trocar123!".
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/frigosul/frigosul-api/internal/infrastructure/postgres"
	"github.com/frigosul/frigosul-api/pkg/config"
)

var unidadesPadrao = []struct{ nome, sigla string }{
	{"Quilograma", "KG"},
	{"Unidade", "UN"},
	{"Caixa", "CX"},
	{"Peça", "PC"},
	{"Litro", "LT"},
}

func main() {
	email := "admin@frigosul.local"
	senha := "trocar123!"
	if len(os.Args) > 1 {
		email = os.Args[1]
	}
	if len(os.Args) > 2 {
		senha = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "carregar configuração: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexão com PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	for _, u := range unidadesPadrao {
		_, err := pool.Exec(ctx, `
			INSERT INTO unidades (id, nome, sigla, created_at)
			VALUES ($1, $2, $3, now())
			ON CONFLICT (sigla) DO NOTHING`,
			uuid.New().String(), u.nome, u.sigla,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "inserir unidade %s: %v\n", u.sigla, err)
			os.Exit(1)
		}
	}
	fmt.Printf("Unidades padrão garantidas (%d)\n", len(unidadesPadrao))

	var existe bool
	if err := pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM usuarios WHERE email = $1)`, email).Scan(&existe); err != nil {
		fmt.Fprintf(os.Stderr, "verificar usuário: %v\n", err)
		os.Exit(1)
	}
	if existe {
		fmt.Printf("Usuário %s já existe, nada a fazer\n", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gerar hash: %v\n", err)
		os.Exit(1)
	}
	now := time.Now()
	_, err = pool.Exec(ctx, `
		INSERT INTO usuarios (id, email, senha_hash, nome, perfil, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'admin', 'ativo', $5, $5)`,
		uuid.New().String(), email, string(hash), "Administrador", now,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "inserir admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Usuário admin criado: %s\n", email)
}
