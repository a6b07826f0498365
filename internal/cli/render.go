package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/pkg/utils"
)

const emptyMessage = "Nenhum lançamento encontrado."

func renderRecords(w io.Writer, rows []domain.RecordView) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Data\tQtd\tCompra\tVenda\tCusto\tReceita\tLucro\t")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t\n",
			utils.ThaiDayLabel(r.Date),
			r.SoldQuantity,
			utils.FormatMoney(r.PurchasePrice),
			utils.FormatMoney(r.SellPrice),
			utils.FormatMoney(r.TotalCost),
			utils.FormatMoney(r.TotalRevenue),
			utils.FormatMoney(r.Profit),
		)
	}
	_ = tw.Flush()
}

func renderSummary(w io.Writer, s domain.Summary) {
	fmt.Fprintf(w, "Receita: %s | Custo: %s | Lucro: %s | Quantidade: %d\n",
		utils.FormatMoney(s.TotalRevenue),
		utils.FormatMoney(s.TotalCost),
		utils.FormatMoney(s.TotalProfit),
		s.TotalQty,
	)
}
