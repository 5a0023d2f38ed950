package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryModel is the GORM-specific struct for the 'exchange_deliveries' table.
// The address columns are a snapshot; saved addresses are never referenced by ID.
type DeliveryModel struct {
	ExchangeID    uuid.UUID `gorm:"type:uuid;primary_key"`
	DecidedBy     uuid.UUID `gorm:"type:uuid;not null"`
	Method        string    `gorm:"type:varchar(16);not null"`
	Name          string    `gorm:"type:varchar(50);not null;default:''"`
	StreetAddress string    `gorm:"type:varchar(100);not null;default:''"`
	Apartment     string    `gorm:"type:varchar(100);not null;default:''"`
	City          string    `gorm:"type:varchar(100);not null;default:''"`
	Region        string    `gorm:"type:varchar(100);not null;default:''"`
	Country       string    `gorm:"type:varchar(100);not null;default:''"`
	PostalCode    string    `gorm:"type:varchar(100);not null;default:''"`
	Latitude      *float64  `gorm:"type:decimal(10,8)"`
	Longitude     *float64  `gorm:"type:decimal(11,8)"`
	Message       string    `gorm:"type:text;not null;default:''"`
	DecidedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "exchange_deliveries"
}
