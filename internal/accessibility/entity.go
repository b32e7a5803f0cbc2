package accessibility

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Profile struct {
	ID              uuid.UUID                           `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID                           `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	DisabilityTypes datatypes.JSONSlice[DisabilityType] `gorm:"type:jsonb;not null" json:"disability_types"`
	Preferences     datatypes.JSONMap                   `gorm:"type:jsonb" json:"preferences"`
	CreatedAt       time.Time                           `json:"created_at"`
	UpdatedAt       time.Time                           `json:"updated_at"`
}

func (Profile) TableName() string {
	return "accessibility_profiles"
}
