package course

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Lessons []Lesson `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"lessons,omitempty"`
}

type Lesson struct {
	ID                uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CourseID          uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	Title             string    `gorm:"type:text;not null" json:"title"`
	Content           string    `gorm:"type:text" json:"content"`
	SimplifiedContent string    `gorm:"type:text" json:"simplified_content,omitempty"`
	Transcript        string    `gorm:"type:text" json:"transcript,omitempty"`
	VideoURL          string    `gorm:"type:text" json:"video_url,omitempty"`
	Position          int       `gorm:"not null;default:0" json:"order"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type Enrollment struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_user_course" json:"user_id"`
	CourseID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_user_course" json:"course_id"`
	EnrolledAt time.Time `gorm:"autoCreateTime" json:"enrolled_at"`
}
