package main

import (
	"fmt"
	"time"

	"github.com/prasetyowira/qrgen/config"
	"github.com/prasetyowira/qrgen/constant"
	appLogger "github.com/prasetyowira/qrgen/infrastructure/logger"
	"github.com/spf13/cobra"
)

func generateCommand(getConfig func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <url>",
		Short: "Generates the QR code for a single URL without opening the window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(getConfig())
			if err != nil {
				return err
			}

			ctx := appLogger.NewRequestContext()
			start := time.Now()

			artifact, err := a.service.Generate(ctx, args[0])
			if err != nil {
				appLogger.CtxError(ctx, "Generation from command line failed", appLogger.LoggerInfo{
					ContextFunction: constant.CtxGenerateOnce,
					Error: &appLogger.CustomError{
						Code:    constant.ErrCodeAppGenerateOnce,
						Message: err.Error(),
						Type:    constant.ErrTypeApp,
					},
					Data: map[string]interface{}{
						constant.DataRawInput: args[0],
					},
				})
				return err
			}

			appLogger.CtxInfo(ctx, "Generated from command line", appLogger.LoggerInfo{
				ContextFunction: constant.CtxGenerateOnce,
				Data: map[string]interface{}{
					constant.DataURL:         artifact.URL,
					constant.DataFilePath:    artifact.Path,
					constant.DataOverwritten: artifact.Overwritten,
					constant.DataElapsed:     time.Since(start).String(),
				},
			})

			_, err = fmt.Fprintln(cmd.OutOrStdout(), artifact.Path)
			return err
		},
	}
}
