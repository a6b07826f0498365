package cli

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/pkg/utils"
)

func newAddCmd(rc *RootConfig) *cobra.Command {
	var (
		dateStr     string
		purchaseStr string
		sellStr     string
		quantity    int64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Registra um lançamento (data padrão: hoje)",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := domain.CreateRecordInput{SoldQuantity: &quantity}

			if dateStr != "" {
				date, err := utils.ParseDate(dateStr, rc.location)
				if err != nil {
					return fmt.Errorf("--date inválida: %w", err)
				}
				input.Date = &date
			}

			purchase, err := decimal.NewFromString(purchaseStr)
			if err != nil {
				return fmt.Errorf("--purchase-price inválido: %w", err)
			}
			input.PurchasePrice = &purchase

			sell, err := decimal.NewFromString(sellStr)
			if err != nil {
				return fmt.Errorf("--sell-price inválido: %w", err)
			}
			input.SellPrice = &sell

			record, err := rc.client().Create(cmd.Context(), input)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if rc.Output == outputJSON {
				fmt.Fprintln(out, utils.PrettyJson(record))
				return nil
			}

			fmt.Fprintf(out, "Lançamento %s registrado em %s\n", record.ID, record.Date.Format(time.DateOnly))
			renderRecords(out, []domain.RecordView{domain.NewRecordView(*record)})
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "data do lançamento (YYYY-MM-DD)")
	cmd.Flags().StringVar(&purchaseStr, "purchase-price", "", "preço de compra por unidade")
	cmd.Flags().Int64Var(&quantity, "quantity", 0, "quantidade vendida")
	cmd.Flags().StringVar(&sellStr, "sell-price", "", "preço de venda por unidade")
	_ = cmd.MarkFlagRequired("purchase-price")
	_ = cmd.MarkFlagRequired("quantity")
	_ = cmd.MarkFlagRequired("sell-price")

	return cmd
}
