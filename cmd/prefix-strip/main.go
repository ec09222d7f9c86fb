package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/code-tool/prefix-strip/internal/openfiles"
	"github.com/code-tool/prefix-strip/internal/rewrite"
	"github.com/code-tool/prefix-strip/internal/zapx"
)

func warnHolders(log *zap.Logger, path string) {
	pids, err := openfiles.Holders(path)
	if err != nil {
		log.Debug("can't check open file holders", zap.Error(err))
		return
	}

	for _, pid := range pids {
		log.Warn("file is open in another process", zap.String("path", path), zap.Int("pid", pid))
	}
}

func run(ctx context.Context, cfg *Config, log *zap.Logger, stdin io.Reader, stdout io.Writer) error {
	path, err := promptFileName(stdin, stdout)
	if err != nil {
		return err
	}

	warnHolders(log, path)

	stats := rewrite.NewStats()
	res, err := rewrite.NewRewriter(log, stats, cfg.LineBufferSize).Rewrite(ctx, path)
	if err != nil {
		return err
	}

	log.Info("file rewritten",
		zap.String("path", path),
		zap.Int("lines", res.Lines),
		zapx.RuleCounts("rules", res.ByRule),
	)

	if cfg.MetricsTextfile != "" {
		if err = stats.WriteTextfile(cfg.MetricsTextfile); err != nil {
			return fmt.Errorf("can't write metrics: %w", err)
		}
	}

	return nil
}

func main() {
	cfg, err := createConfig()
	if err != nil {
		fmt.Printf("Can't create app config: %v\n", err)
		os.Exit(1)
	}

	log, err := createLogger(cfg.LogEncoding, cfg.LogLevel, zapcore.Lock(os.Stderr))
	if err != nil {
		fmt.Printf("Can't create logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err = run(ctx, cfg, log, os.Stdin, os.Stdout)
	stop()
	if err != nil {
		log.Error("rewrite failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}

	_ = log.Sync()
}
