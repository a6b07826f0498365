// Package cli implementa o ledgerctl: lançamentos, tabela e dashboard a partir da API
package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-ledger-api/infrastructure/storeclient"
	"github.com/vfg2006/sales-ledger-api/internal/config"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// ClientFactory cria o cliente da API depois que as flags globais foram lidas
type ClientFactory func(cfg config.Client, loc *time.Location) storeclient.Client

// RootConfig são as opções compartilhadas por todos os subcomandos
type RootConfig struct {
	Output   string
	BaseURL  string
	Timeout  time.Duration
	PageSize int

	location  *time.Location
	newClient ClientFactory
}

func (rc *RootConfig) client() storeclient.Client {
	return rc.newClient(config.Client{BaseURL: rc.BaseURL, Timeout: rc.Timeout}, rc.location)
}

func DefaultClientFactory(cfg config.Client, loc *time.Location) storeclient.Client {
	return storeclient.NewClient(cfg, loc)
}

func New(cfg *config.Config, newClient ClientFactory) *cobra.Command {
	rc := &RootConfig{
		location:  cfg.Location(),
		newClient: newClient,
		PageSize:  cfg.Ledger.PageSize,
	}

	cmd := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "Registra e consulta lançamentos do livro de vendas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if rc.Output != outputText && rc.Output != outputJSON {
				return fmt.Errorf("--output inválido: %q (use text ou json)", rc.Output)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&rc.Output, "output", "o", outputText, "formato de saída: text ou json")
	cmd.PersistentFlags().StringVar(&rc.BaseURL, "api-url", cfg.Client.BaseURL, "URL base da API (LEDGER_API_URL)")
	cmd.PersistentFlags().DurationVar(&rc.Timeout, "timeout", cfg.Client.Timeout, "timeout das requisições (LEDGER_API_TIMEOUT)")

	cmd.AddCommand(
		newAddCmd(rc),
		newListCmd(rc),
		newTableCmd(rc),
		newDashboardCmd(rc),
	)

	return cmd
}

// emptyOnUpstreamFailure mostra o estado vazio quando a API não responde e repassa o erro
func emptyOnUpstreamFailure(w io.Writer, err error) error {
	if errors.Is(err, storeclient.ErrUpstreamFetch) {
		fmt.Fprintln(w, "Nenhum dado disponível: não foi possível consultar a API.")
	}
	return err
}
