package database

import (
	"context"

	"github.com/somonplay/payment-service/internal/config"
	"github.com/somonplay/payment-service/pkg/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewConnection(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	return mysql.NewConnection(context.Background(), cfg.Database, logger)
}
