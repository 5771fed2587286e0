package models

// ContactAppointment is one weekly slot of a contact. Value holds the
// canonical "HH:MM-HH:MM DAY" text; the numeric columns mirror it for
// querying.
type ContactAppointment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ContactID uint `gorm:"index;not null" json:"contact_id"`
	UserID    uint `gorm:"index;not null" json:"user_id"`

	Value    string `gorm:"size:20;not null" json:"value"`
	Day      int    `gorm:"not null" json:"day"`
	StartMin int    `gorm:"not null" json:"start_min"`
	EndMin   int    `gorm:"not null" json:"end_min"`

	// Position keeps insertion order.
	Position int `gorm:"not null" json:"position"`
}
