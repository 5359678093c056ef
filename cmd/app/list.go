package main

import (
	"fmt"

	"github.com/prasetyowira/qrgen/config"
	"github.com/spf13/cobra"
)

func listCommand(getConfig func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the QR codes saved in the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(getConfig())
			if err != nil {
				return err
			}

			names, err := a.sink.List()
			if err != nil {
				return err
			}
			for _, name := range names {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), a.sink.Path(name)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
