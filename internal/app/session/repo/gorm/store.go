package gorm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/66gu1/filmoradmin/internal/app/session"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TimeGenerator interface {
	Now() time.Time
}

type gormStore struct {
	db            *gorm.DB
	timeGenerator TimeGenerator
}

func NewStore(db *gorm.DB, timeGenerator TimeGenerator) (*gormStore, error) {
	if db == nil || timeGenerator == nil {
		return nil, fmt.Errorf("gorm.NewStore: nil dependency")
	}
	return &gormStore{db: db, timeGenerator: timeGenerator}, nil
}

func (s *gormStore) Save(ctx context.Context, rec session.Record) error {
	if rec.ID == "" {
		return fmt.Errorf("gormStore.Save: empty id")
	}

	model := fromRecord(rec)
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "data", "expires_at", "updated_at"}),
	}).Create(&model).Error
	if err != nil {
		return fmt.Errorf("gormStore.Save: %w", err)
	}

	return nil
}

func (s *gormStore) Load(ctx context.Context, id string) (session.Record, error) {
	var model dashboardSession
	err := s.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, s.timeGenerator.Now()).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = session.ErrNotFound
		}
		return session.Record{}, fmt.Errorf("gormStore.Load: %w", err)
	}

	return model.toRecord(), nil
}

func (s *gormStore) Delete(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&dashboardSession{}).Error
	if err != nil {
		return fmt.Errorf("gormStore.Delete: %w", err)
	}

	return nil
}

// DeleteExpired removes records past their expiry and reports how many were dropped.
func (s *gormStore) DeleteExpired(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Where("expires_at <= ?", s.timeGenerator.Now()).Delete(&dashboardSession{})
	if result.Error != nil {
		return 0, fmt.Errorf("gormStore.DeleteExpired: %w", result.Error)
	}

	return result.RowsAffected, nil
}
