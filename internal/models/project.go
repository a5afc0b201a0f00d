package models

import (
	"time"
)

// Project is a named container of Tasks owned by exactly one principal.
// OwnerID holds the identity provider's opaque object identifier.
type Project struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OwnerID     string    `json:"owner_id" gorm:"size:100;index"`
	Name        string    `json:"name" gorm:"size:200"`
	Description string    `json:"description" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	Tasks       []Task    `json:"tasks,omitempty" gorm:"foreignKey:ProjectID"`
}
