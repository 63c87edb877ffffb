package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Base struct {
	CreatedAt time.Time // autoCreateTime
	UpdatedAt time.Time // autoUpdateTime
}

// Open connects gorm to postgres with UTC timestamps and gorm's own logging silenced;
// query errors are logged by the callers through zerolog.
func Open(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("db.Open: %w", err)
	}

	return gdb, nil
}
