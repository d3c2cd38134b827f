package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/prasetyadi/pkl-placement/internal/config"
	"github.com/prasetyadi/pkl-placement/internal/db"
	"github.com/prasetyadi/pkl-placement/internal/handler"
	"github.com/prasetyadi/pkl-placement/internal/handler/server"
	"github.com/prasetyadi/pkl-placement/internal/logger"
	"github.com/prasetyadi/pkl-placement/internal/repository/postgres"
	"github.com/prasetyadi/pkl-placement/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zapLogger.Sync()

	database := db.MustLoad(cfg)
	defer database.Close()
	zapLogger.Info("connected to database")

	companyRepo := postgres.NewCompanyRepository(database)
	studentRepo := postgres.NewStudentRepository(database)
	groupRepo := postgres.NewGroupRepository(database)

	ledger := service.NewCapacityLedger(companyRepo)
	companyService := service.NewCompanyService(companyRepo)
	studentService := service.NewStudentService(studentRepo)
	groupService := service.NewGroupService(groupRepo, companyRepo, studentRepo, ledger, zapLogger)
	invitationService := service.NewInvitationService(groupRepo, studentRepo)
	approvalService := service.NewApprovalService(groupRepo, ledger, zapLogger)

	h := handler.NewHandler(companyService, studentService, groupService, invitationService, approvalService)
	srv := server.NewServer(h, cfg.HTTPAddr, zapLogger)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server forced to shutdown", zap.Error(err))
	}
}
