package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
)

var _ db.HealthChecker = (*Client)(nil)

// Client is a gorm connection to an embedded SQLite database.
type Client struct {
	*gorm.DB
}

// Open connects to the SQLite database identified by dsn and migrates the schema.
func Open(ctx context.Context, dsn string, logger *slog.Logger) (*Client, error) {
	gormDB, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{
		Logger:         newGormLogger(logger, 200*time.Millisecond),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	// SQLite serialises writers; one connection also keeps in-memory databases alive.
	sqlDB.SetMaxOpenConns(1)

	c := &Client{DB: gormDB}
	if err := c.Migrate(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// Migrate creates or updates the tables backing the gorm models.
func (c *Client) Migrate(ctx context.Context) error {
	if err := c.WithContext(ctx).AutoMigrate(&Product{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func (c *Client) IsHealthy(ctx context.Context) (bool, error) {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return false, fmt.Errorf("get sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return false, fmt.Errorf("ping database: %w", err)
	}
	return true, nil
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.Close()
}
