package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/bookrental-service/config"
	"github.com/Astemirdum/bookrental-service/internal/handler"
	"github.com/Astemirdum/bookrental-service/internal/identity"
	"github.com/Astemirdum/bookrental-service/internal/repository"
	"github.com/Astemirdum/bookrental-service/internal/server"
	"github.com/Astemirdum/bookrental-service/internal/service"
	"github.com/Astemirdum/bookrental-service/migrations"
	"github.com/Astemirdum/bookrental-service/pkg/kafka"
	"github.com/Astemirdum/bookrental-service/pkg/logger"
	"github.com/Astemirdum/bookrental-service/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "bookrental")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo init %v", err)
	}
	if err := repo.Seed(context.Background()); err != nil {
		return fmt.Errorf("seed %v", err)
	}

	var events *service.Publisher
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka producer %v", err)
		}
		defer producer.Close() //nolint:errcheck
		events = service.NewPublisher(producer, log)
	}

	svc := service.NewService(repo, events, log)
	idSvc := identity.NewService(repo, []byte(cfg.JWT.Secret), cfg.JWT.TokenTTL, log)
	h := handler.New(svc, idSvc, []byte(cfg.JWT.Secret), log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
