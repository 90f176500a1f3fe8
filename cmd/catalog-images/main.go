package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"go-catalog-ws/internal/config"
	"go-catalog-ws/internal/imaging"
	"go-catalog-ws/internal/repository"
	"go-catalog-ws/pkg/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.Init(cfg.LogMode, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()
	if cfg.EnvFileLoaded {
		zap.S().Debug(".env file loaded")
	}

	app := newApp(cfg)
	if err := app.Run(os.Args); err != nil {
		zap.S().Errorw("catalog-images failed", "error", err)
		log.Sync()
		os.Exit(1)
	}
}

func newApp(cfg *config.Config) *cli.App {
	imageDirFlag := &cli.StringFlag{
		Name:    "images",
		Aliases: []string{"i"},
		Usage:   "directory holding the generated PNG files",
		Value:   cfg.ImageDir,
	}
	mappingFlag := &cli.StringFlag{
		Name:    "mapping",
		Aliases: []string{"m"},
		Usage:   "YAML file of {id, prefix, name} entries; built-in mapping when empty",
		Value:   cfg.ImageMapping,
	}

	return &cli.App{
		Name:  "catalog-images",
		Usage: "attach generated product images to the catalog",
		Commands: []*cli.Command{
			{
				Name:  "embed",
				Usage: "inline mapped images into imageUrl as PNG data URLs",
				Flags: []cli.Flag{
					imageDirFlag,
					mappingFlag,
					&cli.StringFlag{Name: "store", Usage: "store driver: file, bolt or postgres", Value: cfg.StoreDriver},
					&cli.StringFlag{Name: "data-file", Usage: "products JSON file for the file driver", Value: cfg.DataFile},
				},
				Action: func(c *cli.Context) error {
					mapping, err := imaging.LoadMapping(c.String("mapping"))
					if err != nil {
						return err
					}

					storeCfg := *cfg
					storeCfg.StoreDriver = c.String("store")
					storeCfg.DataFile = c.String("data-file")
					if storeCfg.StoreDriver == repository.DriverMemory {
						return errors.New("embed needs a persistent store: file, bolt or postgres")
					}
					store, closeStore, err := repository.OpenStore(&storeCfg)
					if err != nil {
						return err
					}
					defer func() {
						if err := closeStore(); err != nil {
							zap.S().Warnw("failed to close product store", "error", err)
						}
					}()

					embedder := &imaging.Embedder{
						Store:    store,
						ImageDir: c.String("images"),
						Mapping:  mapping,
					}
					res, err := embedder.Run()
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "updated %d products, %d missing images, %d unreadable\n",
						res.Updated, len(res.Missing), len(res.Failed))
					return nil
				},
			},
			{
				Name:  "copy",
				Usage: "copy mapped images into the public directory under their short names",
				Flags: []cli.Flag{
					imageDirFlag,
					mappingFlag,
					&cli.StringFlag{Name: "target", Aliases: []string{"t"}, Usage: "destination directory", Value: cfg.PublicImageDir},
				},
				Action: func(c *cli.Context) error {
					mapping, err := imaging.LoadMapping(c.String("mapping"))
					if err != nil {
						return err
					}
					n, err := imaging.CopyImages(c.String("images"), c.String("target"), mapping)
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "copied %d images\n", n)
					return nil
				},
			},
		},
	}
}
