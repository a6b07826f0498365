package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/internal/cli"
	"github.com/vfg2006/sales-ledger-api/internal/config"
)

func main() {
	// A saída do ledgerctl é para pessoas; só avisos do config aparecem no log
	logrus.SetLevel(logrus.WarnLevel)

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := cli.New(cfg, cli.DefaultClientFactory).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}
