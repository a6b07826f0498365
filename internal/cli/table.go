package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/ledger"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-ledger-api/pkg/utils"
)

func newTableCmd(rc *RootConfig) *cobra.Command {
	var (
		filterStr    string
		dateStr      string
		sortStr      string
		directionStr string
		page         int
		pageSize     int
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Mostra uma página da tabela com filtro, ordenação e resumo",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := domain.TableQuery{Page: page, PageSize: pageSize}

			mode, ok := ledger.ParseFilterMode(filterStr)
			if !ok {
				return fmt.Errorf("--filter inválido: %q (use all, day, month ou year)", filterStr)
			}
			query.Filter = mode

			if dateStr != "" {
				date, err := utils.ParseReferenceDate(dateStr, rc.location)
				if err != nil {
					return err
				}
				query.Date = date
			}

			key, ok := ledger.ParseSortKey(sortStr)
			if !ok {
				return fmt.Errorf("--sort inválido: %q", sortStr)
			}
			query.Sort = key

			direction, ok := ledger.ParseSortDirection(directionStr)
			if !ok {
				return fmt.Errorf("--direction inválida: %q (use asc ou desc)", directionStr)
			}
			query.Direction = direction

			service := reporting.NewService(rc.client(), rc.location, rc.PageSize)
			result, err := service.Table(cmd.Context(), query)
			if err != nil {
				return emptyOnUpstreamFailure(cmd.ErrOrStderr(), err)
			}

			out := cmd.OutOrStdout()
			if rc.Output == outputJSON {
				fmt.Fprintln(out, utils.PrettyJson(result))
				return nil
			}

			if result.TotalRecords == 0 {
				fmt.Fprintln(out, emptyMessage)
			} else {
				renderRecords(out, result.Rows)
				fmt.Fprintf(out, "\nPágina %d de %d (%d lançamentos)\n", result.Page, result.TotalPages, result.TotalRecords)
			}
			renderSummary(out, result.Summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&filterStr, "filter", string(domain.FilterAll), "janela de tempo: all, day, month ou year")
	cmd.Flags().StringVar(&dateStr, "date", "", "data de referência do filtro (YYYY-MM-DD, YYYY-MM ou YYYY; padrão: hoje)")
	cmd.Flags().StringVar(&sortStr, "sort", string(domain.SortByDate), "coluna de ordenação")
	cmd.Flags().StringVar(&directionStr, "direction", string(domain.Desc), "direção: asc ou desc")
	cmd.Flags().IntVar(&page, "page", 1, "página")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "linhas por página (padrão: LEDGER_PAGE_SIZE)")

	return cmd
}
