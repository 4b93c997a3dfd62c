package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"chainflow/internal/balance"
	"chainflow/internal/config"
	"chainflow/internal/core"
	"chainflow/internal/db"
	"chainflow/internal/http/handler"
	"chainflow/internal/http/handler/middleware"
	"chainflow/internal/http/payload"
	"chainflow/internal/http/server"
	"chainflow/internal/ledger"
	"chainflow/internal/metrics"
	"chainflow/internal/network"
	"chainflow/internal/repository"
	"chainflow/pkg/jwt"
	"chainflow/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/google/uuid"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("chainflow", zapcore.InfoLevel)

	config, err := config.NewAppConfig()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	registry, err := network.LoadRegistry(config.NetworksFile)
	if err != nil {
		logger.Errorw("failed to load networks", "error", err, "file", config.NetworksFile)
		return err
	}

	gormDB, err := db.NewGormDB(config.DBConnectionString)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewFlowRepository(gormDB)

	var seed []repository.User
	if config.AdminUsername != "" {
		seed = append(seed, repository.User{
			ID:           uuid.NewString(),
			Username:     config.AdminUsername,
			PasswordHash: config.AdminPasswordHash,
		})
	}
	if err := repo.MigrateAndSeed(context.Background(), seed); err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("node connection failed", "error", err)
		return err
	}
	defer client.Close()

	chainID, err := client.ChainID(context.Background())
	if err != nil {
		logger.Errorw("failed to read chain id", "error", err)
		return err
	}
	logger.Infow("connected to node",
		"chain_id", chainID.Uint64(),
		"network", registry.NetworkName(chainID.Uint64()))

	// a nil signer leaves the ledger read-only
	var signer ledger.Signer
	if config.SignerPrivateKey != "" {
		keyed, err := ledger.NewKeyedSigner(config.SignerPrivateKey)
		if err != nil {
			logger.Errorw("invalid signer key", "error", err)
			return err
		}
		signer = keyed
		logger.Infow("signer loaded", "address", keyed.Address().Hex())
	} else {
		logger.Warnw("no signer configured, flows cannot be started")
	}

	chain := ledger.NewLedger(logger, client, signer, ledger.Options{
		ConfirmationTimeout: config.ConfirmationTimeout,
		PollInterval:        config.ReceiptPollInterval,
	})

	metricsRegistry := metrics.NewRegistry()

	refresher, err := balance.NewRefresher(logger, chain, registry, balance.Options{
		ChainID:  chainID.Uint64(),
		Recorder: metricsRegistry,
	})
	if err != nil {
		logger.Errorw("failed to create balance cache", "error", err)
		return err
	}
	defer refresher.Close()

	pollCtx, stopPolling := context.WithCancel(context.Background())
	defer stopPolling()
	go refresher.Poll(pollCtx, config.BalancePollInterval)

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret), "chainflow")

	flowService := core.NewFlowService(
		logger,
		repo,
		jwtService,
		chain,
		registry,
		refresher,
		core.Options{
			RefreshDelay: config.RefreshDelay,
			Recorder:     metricsRegistry,
		})

	// handler
	flowHlr := handler.NewFlowHandler(
		logger,
		payload.Decoder{},
		flowService,
		config.AllowedOrigins)

	// register routes
	mux := http.NewServeMux()
	flowHlr.Register(mux)
	mux.Handle(handler.Metrics, metricsRegistry.Handler())

	// middleware
	hdlr := middleware.NewMetricsMiddleware(metricsRegistry).Metrics(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	if sdErr := server.Shutdown(); sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
