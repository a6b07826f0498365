// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

const (
	transactionsTable = "transactions t"
)

var transactionColumns = []string{
	"t.id",
	"t.date",
	"t.purchase_price",
	"t.sold_quantity",
	"t.sell_price",
	"t.created_at",
}

//go:generate mockgen -source=transaction.go -destination=mocks/transaction.go -package=mocks
type TransactionRepository interface {
	// List devolve todos os lançamentos, do mais recente para o mais antigo
	List(ctx context.Context) ([]domain.Record, error)
	// ListBetween devolve os lançamentos com data em [start, end]
	ListBetween(ctx context.Context, start, end time.Time) ([]domain.Record, error)
	Create(ctx context.Context, record *domain.Record) error
}

type transactionRepository struct {
	conn postgres.Queryer
	loc  *time.Location
}

func NewTransactionRepository(conn postgres.Queryer, loc *time.Location) TransactionRepository {
	if loc == nil {
		loc = time.UTC
	}

	return &transactionRepository{
		conn: conn,
		loc:  loc,
	}
}

func (r *transactionRepository) List(ctx context.Context) ([]domain.Record, error) {
	return r.query(ctx, selectTransactions())
}

func (r *transactionRepository) ListBetween(ctx context.Context, start, end time.Time) ([]domain.Record, error) {
	builder := selectTransactions().
		Where(squirrel.GtOrEq{"t.date": r.formatDate(start)}).
		Where(squirrel.LtOrEq{"t.date": r.formatDate(end)})

	return r.query(ctx, builder)
}

func (r *transactionRepository) Create(ctx context.Context, record *domain.Record) error {
	sqlQuery, args, err := r.insertTransaction(record).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, sqlQuery, args...)
	if err := row.Scan(&record.CreatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao inserir lançamento: %w", err)
	}

	return nil
}

func selectTransactions() squirrel.SelectBuilder {
	return squirrel.
		Select(transactionColumns...).
		From(transactionsTable).
		OrderBy("t.date DESC", "t.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *transactionRepository) insertTransaction(record *domain.Record) squirrel.InsertBuilder {
	return squirrel.StatementBuilder.
		Insert("transactions").
		Columns("id", "date", "purchase_price", "sold_quantity", "sell_price").
		Values(
			record.ID,
			r.formatDate(record.Date),
			record.PurchasePrice,
			record.SoldQuantity,
			record.SellPrice,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)
}

// formatDate envia apenas o dia do calendário para a coluna DATE
func (r *transactionRepository) formatDate(t time.Time) string {
	return t.In(r.loc).Format(time.DateOnly)
}

func (r *transactionRepository) query(ctx context.Context, builder squirrel.SelectBuilder) ([]domain.Record, error) {
	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.Record, 0)
	for rows.Next() {
		var (
			record domain.Record
			date   time.Time
		)

		err := rows.Scan(
			&record.ID,
			&date,
			&record.PurchasePrice,
			&record.SoldQuantity,
			&record.SellPrice,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento: %w", err)
		}

		// DATE chega como meia-noite UTC; reancora no fuso da aplicação
		record.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, r.loc)
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}
