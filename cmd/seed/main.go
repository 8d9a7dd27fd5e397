// Comando seed: carga usuarios y productos desde un archivo YAML en el
// almacén configurado (STORE_DRIVER).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/infrastructure/docrepo"
	"github.com/jhoicas/tienda-api/internal/infrastructure/store"
	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

func main() {
	var (
		file   string
		dryRun bool
	)

	root := &cobra.Command{
		Use:          "seed",
		Short:        "Carga datos iniciales (usuarios y productos) desde YAML",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fh, err := os.Open(file)
			if err != nil {
				return err
			}
			defer fh.Close()
			data, err := parseSeed(fh)
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Printf("%d usuarios, %d productos (sin escribir)\n", len(data.Usuarios), len(data.Productos))
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

			ctx := context.Background()
			gw, closeStore, err := store.Open(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			res, err := apply(ctx, data,
				usecase.NewUserUseCase(docrepo.NewUserRepository(gw), cfg.Auth.BcryptCost),
				usecase.NewProductUseCase(docrepo.NewProductRepository(gw)),
			)
			log.Info().
				Int("usuarios", res.Usuarios).
				Int("productos", res.Productos).
				Int("omitidos", res.Omitidos).
				Str("store", cfg.Store.Driver).
				Msg("seed finalizado")
			return err
		},
	}
	root.Flags().StringVarP(&file, "file", "f", "seed/seed.yaml", "archivo YAML con usuarios y productos")
	root.Flags().BoolVar(&dryRun, "dry-run", false, "solo valida el archivo")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
