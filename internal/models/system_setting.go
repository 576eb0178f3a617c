package models

import "time"

// SystemSetting represents the system_settings table, a unique key/value
// pair with the last updating user kept as an audit reference.
type SystemSetting struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Key         string    `gorm:"uniqueIndex;not null;size:100" json:"key"`
	Value       *string   `gorm:"type:text" json:"value,omitempty"`
	Description *string   `gorm:"size:255" json:"description,omitempty"`
	UpdatedBy   *uint     `gorm:"index" json:"updated_by,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Updater *User `gorm:"foreignKey:UpdatedBy;constraint:OnDelete:SET NULL" json:"updater,omitempty"`
}

// TableName specifies the table name for SystemSetting model
func (SystemSetting) TableName() string {
	return "system_settings"
}
