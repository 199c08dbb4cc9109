package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
	"gopkg.in/yaml.v3"

	grpc_adapter "github.com/escrowd/go-escrow-ledger/internal/app/core/adapter/in/grpc"
	memory_adapter "github.com/escrowd/go-escrow-ledger/internal/app/core/adapter/out/memory"
	mysql_adapter "github.com/escrowd/go-escrow-ledger/internal/app/core/adapter/out/mysql"
	"github.com/escrowd/go-escrow-ledger/internal/app/core/usecase"
	"github.com/escrowd/go-escrow-ledger/pkg/mysql"
	"github.com/escrowd/go-escrow-ledger/pkg/wal"
	pb "github.com/escrowd/go-escrow-ledger/proto"
)

type Config struct {
	Listen  string       `yaml:"listen"`
	WALPath string       `yaml:"wal_path"`
	Archive bool         `yaml:"archive"`
	MySQL   mysql.Config `yaml:"mysql"`
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := loadConfig(log)

	// 1. Authenticated in-memory store; state is rebuilt from the journal.
	db := memory_adapter.NewDatabase()

	// 2. Journal of committed envelopes.
	journal, err := wal.New(cfg.WALPath)
	if err != nil {
		log.Fatalf("Failed to open WAL: %v", err)
	}
	defer journal.Close()

	opts := []usecase.Option{
		usecase.WithJournal(journal),
		usecase.WithLogger(log),
	}

	// 3. Optional SQL archive (read model only).
	if cfg.Archive {
		dbClient, err := mysql.NewClient(cfg.MySQL)
		if err != nil {
			log.Fatalf("Failed to connect to MySQL: %v", err)
		}
		defer dbClient.Close()

		archive := mysql_adapter.NewArchive(dbClient)
		if err := archive.AutoMigrate(); err != nil {
			log.Fatalf("Failed to migrate archive tables: %v", err)
		}
		opts = append(opts, usecase.WithArchive(archive))
		log.Info("SQL archive enabled")
	}

	// 4. Core use case + replay.
	core := usecase.NewCoreUseCase(db, opts...)
	if err := core.Recover(); err != nil {
		log.Fatalf("Failed to recover from WAL: %v", err)
	}

	// 5. gRPC driving adapter.
	grpcServer := grpc_adapter.NewGrpcServer(core, log)

	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	s := grpc.NewServer()
	pb.RegisterLedgerServiceServer(s, grpcServer)
	reflection.Register(s)

	go func() {
		log.Infof("Starting gRPC server on %s", cfg.Listen)
		if err := s.Serve(lis); err != nil {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	s.GracefulStop()
	log.Info("Server exited")
}

func loadConfig(log *logrus.Logger) Config {
	cfgData, err := os.ReadFile("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	if cfg.Listen == "" {
		cfg.Listen = ":50051"
	}
	if cfg.WALPath == "" {
		cfg.WALPath = "wal.log"
	}
	if cfg.MySQL.MaxOpenConns == 0 {
		cfg.MySQL.MaxOpenConns = 100
	}
	if cfg.MySQL.MaxIdleConns == 0 {
		cfg.MySQL.MaxIdleConns = 10
	}
	if cfg.MySQL.ConnMaxLifetime == 0 {
		cfg.MySQL.ConnMaxLifetime = 30 * time.Minute
	}
	return cfg
}
