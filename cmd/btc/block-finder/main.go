package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockfinder7000/internal/blkfile"
	"github.com/goodnatureofminers/blockfinder7000/internal/metrics"
	"github.com/goodnatureofminers/blockfinder7000/internal/render"
)

type config struct {
	BlockAtHeight uint64 `long:"block-at-height" short:"b" env:"BLOCK_FINDER_HEIGHT" description:"height of the block to search for" required:"true"`
	File          string `long:"file" short:"f" env:"BLOCK_FINDER_FILE" description:"path to the raw blk file" default:"blk00000.dat"`
	Network       string `long:"network" env:"BLOCK_FINDER_NETWORK" description:"network name" default:"mainnet"`
	MetricsAddr   string `long:"metrics-addr" env:"BLOCK_FINDER_METRICS_ADDR" description:"optional address serving /metrics during the scan"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("block finder failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	params, err := chainParamsForNetwork(cfg.Network)
	if err != nil {
		return err
	}

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv := &http.Server{Addr: cfg.MetricsAddr, Handler: mux}
		go func() {
			if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
				logger.Warn("metrics server failed", zap.Error(serveErr))
			}
		}()
		defer func() {
			_ = srv.Close()
		}()
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := os.ReadFile(cfg.File)
	if err != nil {
		return fmt.Errorf("read blk file: %w", err)
	}
	logger.Info("loaded blk file",
		zap.String("file", cfg.File),
		zap.Int("bytes", len(raw)),
		zap.String("network", cfg.Network),
	)

	scanner, err := blkfile.NewScanner(params.Net, metrics.NewScanner(cfg.Network), logger)
	if err != nil {
		return err
	}
	res, err := scanner.FindBlock(raw, cfg.BlockAtHeight)
	if err != nil {
		return fmt.Errorf("find block at height %d: %w", cfg.BlockAtHeight, err)
	}

	report, err := blkfile.BuildBlockReport(res.Frame, res.Block)
	if err != nil {
		return err
	}
	render.FormatBlock(os.Stdout, report)
	return nil
}

func chainParamsForNetwork(network string) (*chaincfg.Params, error) {
	switch strings.ToLower(network) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
