package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	sheetv1alpha1 "github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
	abilitydraftrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/ability_draft"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

const shutdownTimeout = 30 * time.Second

var (
	envFiles []string
	grpcPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the rpg-sheet gRPC server backed by Redis.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides RPG_SHEET_GRPC_PORT)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.LoadOptions{EnvFiles: envFiles})
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := buildServer(ctx, cfg, logger)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return errors.Wrapf(err, "failed to listen on port %d", cfg.GRPCPort)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.InfoContext(gctx, "gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			return errors.Wrap(err, "failed to serve")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down gRPC server")
		gracefulStop(srv)
		return nil
	})

	return g.Wait()
}

// buildServer wires storage, the engine, the orchestrator and the gRPC services
func buildServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*grpc.Server, error) {
	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisclient.Ping(pingCtx, client); err != nil {
		return nil, err
	}

	var ruleset *rules.Ruleset
	if cfg.RulesPath != "" {
		ruleset, err = rules.LoadFile(cfg.RulesPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load rules from %s", cfg.RulesPath)
		}
		slog.InfoContext(ctx, "loaded rule tables", "path", cfg.RulesPath)
	}

	rulesEngine, err := engine.New(&engine.Config{Rules: ruleset})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	systemClock := clock.New()
	characterRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{
		Client: client,
		Clock:  systemClock,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character repository")
	}
	draftRepo, err := abilitydraftrepo.NewRedisRepository(&abilitydraftrepo.Config{
		Client: client,
		Clock:  systemClock,
		TTL:    cfg.DraftTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ability draft repository")
	}

	orchestrator, err := character.New(&character.Config{
		CharacterRepo:        characterRepo,
		AbilityDraftRepo:     draftRepo,
		Engine:               rulesEngine,
		CharacterIDGenerator: idgen.NewUUID("char"),
		DraftIDGenerator:     idgen.NewUUID("draft"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character orchestrator")
	}

	handler, err := sheetv1alpha1.NewHandler(&sheetv1alpha1.HandlerConfig{
		CharacterService: orchestrator,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sheet handler")
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	sheetv1alpha1.RegisterSheetServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(sheetv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv, nil
}

// gracefulStop drains in-flight calls, forcing a stop after shutdownTimeout
func gracefulStop(srv *grpc.Server) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-time.After(shutdownTimeout):
		slog.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("server stopped gracefully")
	}
}
