package models

import "time"

// DeviceModel represents the database model for devices.
type DeviceModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Name       string    `gorm:"type:varchar(120);not null"`
	Type       string    `gorm:"type:varchar(50);not null"`
	IsOn       bool      `gorm:"not null;default:false"`
	LocationID int64     `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (DeviceModel) TableName() string {
	return "devices"
}

// DeviceLogModel represents the database model for device audit logs.
type DeviceLogModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	DeviceID    int64     `gorm:"not null;index"`
	Action      string    `gorm:"type:varchar(50);not null"`
	ActorUserID int64     `gorm:"not null"`
	Timestamp   time.Time `gorm:"not null"`
	Note        string    `gorm:"type:text"`
}

func (DeviceLogModel) TableName() string {
	return "device_logs"
}
