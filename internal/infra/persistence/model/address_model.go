package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// A null latitude/longitude pair means no position was chosen.
type AddressModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index:idx_addresses_on_user;uniqueIndex:idx_addresses_user_name,priority:1"`
	Name          string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_addresses_user_name,priority:2"`
	StreetAddress string    `gorm:"type:varchar(100);not null"`
	Apartment     string    `gorm:"type:varchar(100);not null;default:''"`
	City          string    `gorm:"type:varchar(100);not null"`
	Region        string    `gorm:"type:varchar(100);not null;default:''"`
	Country       string    `gorm:"type:varchar(100);not null"`
	PostalCode    string    `gorm:"type:varchar(100);not null"`
	Latitude      *float64  `gorm:"type:decimal(10,8)"`
	Longitude     *float64  `gorm:"type:decimal(11,8)"`
	Message       string    `gorm:"type:text;not null;default:''"`
	IsPrimary     bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
