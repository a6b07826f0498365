package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/ledger"
	"github.com/vfg2006/sales-ledger-api/pkg/utils"
)

func newListCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista todos os lançamentos, do mais recente para o mais antigo",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := rc.client().List(cmd.Context())
			if err != nil {
				return emptyOnUpstreamFailure(cmd.ErrOrStderr(), err)
			}

			cfg := ledger.DefaultSortConfig()
			sorted := ledger.Sort(records, cfg.Key, cfg.Direction)

			out := cmd.OutOrStdout()
			if rc.Output == outputJSON {
				fmt.Fprintln(out, utils.PrettyJson(sorted))
				return nil
			}

			if len(sorted) == 0 {
				fmt.Fprintln(out, emptyMessage)
				return nil
			}

			views := make([]domain.RecordView, 0, len(sorted))
			for _, r := range sorted {
				views = append(views, domain.NewRecordView(r))
			}
			renderRecords(out, views)

			if skipped := len(records) - len(sorted); skipped > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d lançamento(s) ignorado(s) por dados inválidos\n", skipped)
			}
			return nil
		},
	}
}
