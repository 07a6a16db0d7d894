package models

import "time"

// LocationModel represents the database model for locations.
type LocationModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Country   string    `gorm:"type:varchar(120);not null"`
	Lat       float64   `gorm:"not null"`
	Lon       float64   `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (LocationModel) TableName() string {
	return "locations"
}
