// Importa para o PostgreSQL um export JSON da coleção antiga de lançamentos
// (chaves em tailandês e _id do Mongo). Uso: go run ./infrastructure/migration/script export.json
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-ledger-api/infrastructure/repository"
	"github.com/vfg2006/sales-ledger-api/infrastructure/storeclient"
	"github.com/vfg2006/sales-ledger-api/internal/config"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/recording"
	"github.com/vfg2006/sales-ledger-api/pkg/utils"
)

const maxIDLength = 32

type importResult struct {
	Imported int
	Skipped  int
}

// importable rejeita o que a coluna recusaria ou arredondaria
func importable(r domain.Record) bool {
	if !r.Usable() || r.SoldQuantity < 0 || r.PurchasePrice.IsNegative() || r.SellPrice.IsNegative() {
		return false
	}
	return recording.PriceFits(r.PurchasePrice) && recording.PriceFits(r.SellPrice)
}

// importRecords grava os registros válidos; malformados, negativos ou fora da precisão são ignorados
func importRecords(ctx context.Context, repo repository.TransactionRepository, records []domain.Record) (importResult, error) {
	var result importResult

	for i := range records {
		record := records[i]
		if !importable(record) {
			logrus.WithFields(logrus.Fields{
				"index": i,
				"id":    record.ID,
			}).Warn("Registro inválido ignorado")
			result.Skipped++
			continue
		}

		if record.ID == "" || len(record.ID) > maxIDLength {
			id, err := utils.GenerateID()
			if err != nil {
				return result, fmt.Errorf("erro ao gerar ID: %w", err)
			}
			record.ID = id
		}

		if err := repo.Create(ctx, &record); err != nil {
			return result, fmt.Errorf("erro ao gravar registro %d (%s): %w", i, record.ID, err)
		}
		result.Imported++
	}

	return result, nil
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})

	if len(os.Args) < 2 {
		logrus.Fatal("Informe o caminho do arquivo JSON exportado")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	loc := cfg.Location()

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler arquivo de export")
	}

	records, err := storeclient.DecodeExport(data, loc)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao decodificar export")
	}
	logrus.Infof("Total de %d registros lidos do export", len(records))

	ctx := context.Background()
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := postgres.RunMigrations(conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	startTime := time.Now()
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar transação")
	}

	result, err := importRecords(ctx, repository.NewTransactionRepository(tx, loc), records)
	if err != nil {
		_ = tx.Rollback()
		logrus.WithError(err).Fatal("Importação revertida")
	}

	if err := tx.Commit(); err != nil {
		logrus.WithError(err).Fatal("Erro ao confirmar transação")
	}

	logrus.WithFields(logrus.Fields{
		"imported": result.Imported,
		"skipped":  result.Skipped,
		"duration": time.Since(startTime).String(),
	}).Info("Importação concluída")
}
