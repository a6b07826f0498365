package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-ledger-api/pkg/utils"
)

func newDashboardCmd(rc *RootConfig) *cobra.Command {
	var (
		year  int
		month int
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Mostra KPIs e consolidado mensal, com filtros opcionais de ano e mês",
		RunE: func(cmd *cobra.Command, args []string) error {
			var query domain.DashboardQuery
			if cmd.Flags().Changed("year") {
				query.Year = &year
			}
			if cmd.Flags().Changed("month") {
				if month < 1 || month > 12 {
					return fmt.Errorf("--month inválido: %d (use 1-12)", month)
				}
				query.Month = &month
			}

			service := reporting.NewService(rc.client(), rc.location, rc.PageSize)
			dashboard, err := service.Dashboard(cmd.Context(), query)
			if err != nil {
				return emptyOnUpstreamFailure(cmd.ErrOrStderr(), err)
			}

			out := cmd.OutOrStdout()
			if rc.Output == outputJSON {
				fmt.Fprintln(out, utils.PrettyJson(dashboard))
				return nil
			}

			renderSummary(out, dashboard.Summary)

			if len(dashboard.Monthly) == 0 {
				fmt.Fprintln(out, emptyMessage)
				return nil
			}

			fmt.Fprintln(out)
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "Mês\tQtd\tCusto\tReceita\tLucro\t")
			for _, b := range dashboard.Monthly {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t\n",
					b.Label,
					b.TotalQty,
					utils.FormatMoney(b.TotalCost),
					utils.FormatMoney(b.TotalRevenue),
					utils.FormatMoney(b.NetProfit),
				)
			}
			_ = tw.Flush()

			fmt.Fprintf(out, "\nAnos disponíveis: %v\n", dashboard.Years)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "ano (padrão: todos)")
	cmd.Flags().IntVar(&month, "month", 0, "mês 1-12 (padrão: todos)")

	return cmd
}
