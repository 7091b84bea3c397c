package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Scan is one persisted valuation attempt.
// Convention: Go PascalCase -> DB snake_case (GORM auto) -> JSON camelCase
type Scan struct {
	ID             string         `gorm:"primaryKey" json:"id"`
	RawText        string         `json:"rawText"`
	ProductURL     *string        `json:"productUrl"`
	Title          string         `json:"title"`
	FairPrice      float64        `json:"fairPrice"`
	ListingPrice   *float64       `json:"listingPrice"`
	Verdict        string         `json:"verdict"`
	Category       string         `json:"category"`
	ComponentsJSON datatypes.JSON `json:"componentsJson"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// TableName specifies the table name for Scan
func (Scan) TableName() string {
	return "scans"
}

// BeforeCreate assigns a UUID primary key so records are addressable before
// the insert returns.
func (s *Scan) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
