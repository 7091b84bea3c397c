package store

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/vpricescan/vpricego/internal/database"
	"github.com/vpricescan/vpricego/internal/models"
)

// DefaultRecentLimit is the history page size when the caller passes none.
const DefaultRecentLimit = 12

// Scans persists scan records. Every operation flattens the underlying gorm
// error into a logged success/failure outcome: callers never branch on error
// types, and cannot tell "not found" from "store unavailable".
type Scans struct {
	db *database.DB
}

// NewScans creates the adapter over an established connection.
func NewScans(db *database.DB) *Scans {
	return &Scans{db: db}
}

// Create persists a new record and reports its assigned id.
func (s *Scans) Create(ctx context.Context, rec *models.Scan) (string, bool) {
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		log.Printf("❌ Failed to save scan: %v", err)
		return "", false
	}
	return rec.ID, true
}

// ListRecent returns up to limit records, newest first. Failures degrade to
// an empty list.
func (s *Scans) ListRecent(ctx context.Context, limit int) []models.Scan {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	var scans []models.Scan
	err := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&scans).Error
	if err != nil {
		log.Printf("❌ Failed to read scan history: %v", err)
		return []models.Scan{}
	}
	return scans
}

// Get fetches one record by id. Missing records and store errors both report
// a plain miss; only unexpected errors are logged.
func (s *Scans) Get(ctx context.Context, id string) (*models.Scan, bool) {
	var rec models.Scan
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("❌ Failed to load scan %s: %v", id, err)
		}
		return nil, false
	}
	return &rec, true
}

// DeleteOne removes a single record. A missing id reports failure the same
// way a store error does.
func (s *Scans) DeleteOne(ctx context.Context, id string) bool {
	res := s.db.WithContext(ctx).Delete(&models.Scan{}, "id = ?", id)
	if res.Error != nil {
		log.Printf("❌ Failed to delete scan %s: %v", id, res.Error)
		return false
	}
	if res.RowsAffected == 0 {
		log.Printf("⚠️ Scan %s not found, nothing deleted", id)
		return false
	}
	return true
}

// DeleteAll wipes the whole history table, no filter.
func (s *Scans) DeleteAll(ctx context.Context) bool {
	if err := s.db.WithContext(ctx).Where("1 = 1").Delete(&models.Scan{}).Error; err != nil {
		log.Printf("❌ Failed to clear scan history: %v", err)
		return false
	}
	return true
}
