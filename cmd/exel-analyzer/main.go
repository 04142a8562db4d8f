package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/KostinaAnya/Exel-Analyzer/internal/config"
	"github.com/KostinaAnya/Exel-Analyzer/internal/logging"
	"github.com/KostinaAnya/Exel-Analyzer/internal/server"
	"github.com/KostinaAnya/Exel-Analyzer/internal/util"
)

var (
	port    = flag.Int("port", 0, "server port (overrides config.toml)")
	devMode = flag.Bool("dev", false, "development mode")
	noOpen  = flag.Bool("no-open", false, "do not open the browser on start")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config, using defaults: %v\n", err)
		cfg = config.DefaultConfig()
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}

	log, err := logging.New(cfg.Server.DevMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	uploadDir, err := config.EnsureUploadDir(cfg)
	if err != nil {
		log.Fatal("cannot create upload dir", zap.Error(err))
	}

	srv := server.NewServer(cfg, uploadDir, log)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		log.Info("server starting",
			zap.Int("port", cfg.Server.Port),
			zap.String("upload_dir", uploadDir))
		if err := srv.Run(addr); err != nil {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	if !cfg.Server.DevMode && !*noOpen {
		if err := util.OpenBrowserWithFallback(url); err != nil {
			log.Warn("cannot open browser", zap.String("url", url), zap.Error(err))
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")
}
