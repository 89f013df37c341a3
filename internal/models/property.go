package models

import "time"

// Property is a single listed property. Records are created and maintained
// by the backing store; this service only reads them.
type Property struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:decimal(12,2)" json:"price"`
	Location    string    `gorm:"size:100" json:"location"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
