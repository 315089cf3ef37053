package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"aidbridge/internal/config"
	"aidbridge/internal/repository"
	"aidbridge/internal/store"
)

type Services struct {
	Auth      AuthService
	User      UserService
	Lifecycle LifecycleService
	Query     QueryService
	Demand    DemandService
	Email     EmailService
	Export    ExportService
}

func NewServices(st *store.Store, repos *repository.Repositories, rdb *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := NewEmailService(cfg)

	return &Services{
		Auth:      NewAuthService(st, repos.Session, cfg),
		User:      NewUserService(st),
		Lifecycle: NewLifecycleService(st, rdb, emailService),
		Query:     NewQueryService(st),
		Demand:    NewDemandService(st, rdb),
		Email:     emailService,
		Export:    NewExportService(st, minioClient, cfg),
	}
}
