package models

import (
	"time"

	"gorm.io/datatypes"
)

type Contact struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name    string  `gorm:"size:100;not null" json:"name"`
	Phone   *string `gorm:"size:30" json:"phone"`
	Email   *string `gorm:"size:100" json:"email"`
	Address *string `gorm:"size:255" json:"address"`
	Note    *string `gorm:"type:text" json:"note"`
	Level   *string `gorm:"size:2" json:"level"`

	Subjects datatypes.JSONSlice[string] `json:"subjects"`
	Tags     datatypes.JSONSlice[string] `json:"tags"`

	AvatarKey string `gorm:"size:255" json:"avatar_key"`

	Appointments []ContactAppointment `gorm:"constraint:OnDelete:CASCADE;" json:"appointments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
