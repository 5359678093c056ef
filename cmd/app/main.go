package main

import (
	"os"

	"github.com/prasetyowira/qrgen/api"
	"github.com/prasetyowira/qrgen/config"
	"github.com/prasetyowira/qrgen/constant"
	"github.com/prasetyowira/qrgen/domain/qrgen"
	"github.com/prasetyowira/qrgen/infrastructure/cache"
	appLogger "github.com/prasetyowira/qrgen/infrastructure/logger"
	"github.com/prasetyowira/qrgen/infrastructure/preview"
	"github.com/prasetyowira/qrgen/infrastructure/qrcode"
	"github.com/prasetyowira/qrgen/infrastructure/storage"
	"github.com/spf13/cobra"
)

// app holds the components shared by every command
type app struct {
	cfg     *config.Config
	sink    *storage.FileSink
	service *qrgen.Service
}

// newApp wires the generator from configuration. The output directory is
// created here so that it exists on every start.
func newApp(cfg *config.Config) (*app, error) {
	sink := storage.NewOSFileSink(cfg.OutputDir)
	if err := sink.EnsureDir(); err != nil {
		appLogger.Error(constant.MsgFailedToEnsureDir, appLogger.LoggerInfo{
			ContextFunction: constant.CtxEnsureOutput,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAppOutputDir,
				Message: err.Error(),
				Type:    constant.ErrTypeApp,
			},
			Data: map[string]interface{}{
				constant.DataOutputDir: cfg.OutputDir,
			},
		})
		return nil, err
	}

	encoder, err := qrcode.NewGenerator(cfg.ModuleSize)
	if err != nil {
		return nil, err
	}
	renderer, err := preview.NewRenderer(cfg.PreviewSize)
	if err != nil {
		return nil, err
	}
	previews := cache.NewNamespaceLRU[[]byte](cfg.PreviewCacheSize)

	return &app{
		cfg:     cfg,
		sink:    sink,
		service: qrgen.NewService(encoder, sink, renderer, previews),
	}, nil
}

func (a *app) router() *api.Router {
	handler := api.NewHandler(a.service, api.NewWindow(), a.cfg.PreviewSize)
	router := api.NewRouter(handler)
	router.SetupRoutes()
	return router
}

func main() {
	var (
		configPath string
		cfg        *config.Config
	)

	rootCmd := &cobra.Command{
		Use:           "qrgen",
		Short:         "Generates one QR code image per domain",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.LoadConfig(configPath)
			if err != nil {
				// the logger is not configured yet
				appLogger.Initialize(false)
				appLogger.Error(constant.MsgFailedToLoadConfig, appLogger.LoggerInfo{
					ContextFunction: constant.CtxMain,
					Error: &appLogger.CustomError{
						Code:    constant.ErrCodeAppConfig,
						Message: err.Error(),
						Type:    constant.ErrTypeApp,
					},
				})
				return err
			}

			appLogger.Initialize(cfg.IsProduction())
			appLogger.Info(constant.MsgApplicationStarting, appLogger.LoggerInfo{
				ContextFunction: constant.CtxMain,
				Data: map[string]interface{}{
					constant.DataAddr:        cfg.Addr,
					constant.DataOutputDir:   cfg.OutputDir,
					constant.DataModuleSize:  cfg.ModuleSize,
					constant.DataPreviewSize: cfg.PreviewSize,
					constant.DataEnvironment: cfg.LogLevel,
				},
			})
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML); environment variables are used when empty")

	serve := serveCommand(func() *config.Config { return cfg })
	rootCmd.RunE = serve.RunE
	rootCmd.AddCommand(
		serve,
		generateCommand(func() *config.Config { return cfg }),
		listCommand(func() *config.Config { return cfg }),
	)

	err := rootCmd.Execute()
	appLogger.Close()
	if err != nil {
		os.Exit(1)
	}
}
