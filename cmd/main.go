package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ConsigMais/motor-cotacao/internal/convenio"
	"github.com/ConsigMais/motor-cotacao/internal/snapshot"
)

func main() {
	_ = godotenv.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := gorm.Open(postgres.Open(dsn()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Error),
	})
	if err != nil {
		log.Fatal("erro ao conectar no banco", zap.Error(err))
	}

	if err := convenio.Migrate(db); err != nil {
		log.Fatal("erro no migrate do catálogo", zap.Error(err))
	}
	if err := snapshot.Migrate(db); err != nil {
		log.Fatal("erro no migrate de snapshots", zap.Error(err))
	}

	catalogo := convenio.NewRepository(db, log)
	if err := seedSeVazio(catalogo); err != nil {
		log.Fatal("erro no seed do catálogo", zap.Error(err))
	}

	log.Info("motor de cotação pronto")
}

func dsn() string {
	host := env("DB_HOST", "localhost")
	user := env("DB_USER", "postgres")
	pass := env("DB_PASSWORD", "postgres")
	nome := env("DB_NAME", "cotacao")
	porta := env("DB_PORT", "5432")
	ssl := ""
	if env("DB_SSL_MODE_DISABLE", "true") == "true" {
		ssl = " sslmode=disable"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s%s",
		host, user, pass, nome, porta, ssl)
}

func env(chave, padrao string) string {
	if v := os.Getenv(chave); v != "" {
		return v
	}
	return padrao
}

// seedSeVazio carrega um catálogo mínimo na primeira subida, para ambiente
// de desenvolvimento.
func seedSeVazio(repo *convenio.Repository) error {
	n, err := repo.Count()
	if err != nil || n > 0 {
		return err
	}
	inss := convenio.Convenio{
		ID:     "inss",
		Rotulo: "INSS",
		Janelas: []convenio.Janela{
			{
				ID:     "inss-2026",
				Rotulo: "Vigência 2026",
				Inicio: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				Fim:    time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
			},
		},
		Taxas: []convenio.Taxa{
			{
				ID:         "bco-alfa-ouro",
				ProdutoID:  "emprestimo",
				BancoID:    "alfa",
				BancoNome:  "Banco Alfa",
				TabelaID:   "ouro",
				TabelaNome: "Tabela Ouro",
				Modalidade: "novo",
				TaxaMensal: 0.0185,
				Prazos:     []int{48, 60, 72, 84},
				TacFixa:    50,
				Ativa:      true,
				Rank:       1,
			},
			{
				ID:            "bco-beta-prata",
				ProdutoID:     "emprestimo",
				BancoID:       "beta",
				BancoNome:     "Banco Beta",
				TabelaID:      "prata",
				TabelaNome:    "Tabela Prata",
				Modalidade:    "novo",
				TaxaMensal:    0.0199,
				Prazos:        []int{60, 72, 84},
				TacPercentual: 0.015,
				Ativa:         true,
				Rank:          2,
			},
		},
	}
	return repo.Create(&inss)
}
