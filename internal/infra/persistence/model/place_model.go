package model

import (
	"time"

	"github.com/google/uuid"
)

// PlaceModel mirrors the 'places' table. Coordinates are stored as fixed
// precision decimals so equality survives round trips. CreatedBy is nullable
// and set NULL when the submitting account is deleted, keeping the place.
type PlaceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Latitude    float64   `gorm:"type:decimal(9,6);not null;index:idx_places_lat_lon"`
	Longitude   float64   `gorm:"type:decimal(9,6);not null;index:idx_places_lat_lon"`
	Address     string    `gorm:"type:varchar(255)"`
	City        string    `gorm:"type:varchar(100)"`
	Country     string    `gorm:"type:varchar(100)"`
	Status      string    `gorm:"type:varchar(20);not null;default:'draft';index"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"index"`
	UpdatedAt   time.Time

	PhotoKey         *string `gorm:"type:varchar(255)"`
	PhotoContentType *string `gorm:"type:varchar(100)"`
	PhotoSize        *int64
	PhotoWidth       *int
	PhotoHeight      *int
	PhotoUploadedAt  *time.Time

	Creator *UserModel `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (PlaceModel) TableName() string {
	return "places"
}
