package bootstrap

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"docflow/internal/config"
	"docflow/internal/model"
	mysqlClient "docflow/internal/platform/mysql"
	rabbitmqClient "docflow/internal/platform/rabbitmq"
	redisClient "docflow/internal/platform/redis"
	"docflow/internal/repository"
	"docflow/internal/worker"
)

type App struct {
	Config        *config.Config
	MySQL         *gorm.DB
	Redis         *redis.Client
	MQConn        *amqp.Connection
	CleanupWorker *worker.CleanupWorker

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	mysqlDB, err := mysqlClient.New(ctx, cfg.MySQLDSN())
	if err != nil {
		return nil, err
	}
	if err := mysqlDB.AutoMigrate(
		&model.User{},
		&model.Document{},
		&model.UserSetting{},
		&model.AIRequest{},
		&model.GeneratedDocument{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	redisCli, err := redisClient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	mqConn, err := rabbitmqClient.New(ctx, cfg.RabbitMQ.URL)
	if err != nil {
		return nil, err
	}

	cleanupWorker := worker.NewCleanupWorker(
		mqConn,
		repository.NewDocumentRepository(mysqlDB),
		repository.NewAIRequestRepository(mysqlDB),
		repository.NewGeneratedDocumentRepository(mysqlDB),
		repository.NewUserSettingRepository(mysqlDB),
		cfg.RabbitMQ.UserCleanupQueue,
	)
	if err := cleanupWorker.Start(ctx); err != nil {
		return nil, fmt.Errorf("start cleanup worker failed: %w", err)
	}

	return &App{
		Config:        cfg,
		MySQL:         mysqlDB,
		Redis:         redisCli,
		MQConn:        mqConn,
		CleanupWorker: cleanupWorker,
		StartedAt:     time.Now(),
	}, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.CleanupWorker != nil {
		a.CleanupWorker.Close()
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
