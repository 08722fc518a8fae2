package models

import "time"

// Ingredient represents a pantry item and its current stock level.
type Ingredient struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	UnitsAvailable float64   `gorm:"not null;default:0" json:"units_available"`
	UnitType       string    `gorm:"size:50;not null;default:pieces" json:"unit_type"`
}

// InStock reports whether any stock remains.
func (i Ingredient) InStock() bool {
	return i.UnitsAvailable > 0
}
