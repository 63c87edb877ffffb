package gorm

import (
	"time"

	"github.com/66gu1/filmoradmin/internal/app/session"
	"github.com/66gu1/filmoradmin/internal/infrastructure/db"
)

type dashboardSession struct {
	ID        string
	UserID    string
	Data      []byte
	ExpiresAt time.Time
	db.Base
}

func (dashboardSession) TableName() string {
	return "dashboard_sessions"
}

func (s *dashboardSession) toRecord() session.Record {
	return session.Record{
		ID:        s.ID,
		UserID:    s.UserID,
		Data:      s.Data,
		ExpiresAt: s.ExpiresAt,
	}
}

func fromRecord(rec session.Record) dashboardSession {
	return dashboardSession{
		ID:        rec.ID,
		UserID:    rec.UserID,
		Data:      rec.Data,
		ExpiresAt: rec.ExpiresAt,
	}
}
