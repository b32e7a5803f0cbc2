package certificate

import (
	"time"

	"github.com/google/uuid"
)

// Certificate rows are written once and never updated.
type Certificate struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_certificate_user_course" json:"user_id"`
	CourseID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_certificate_user_course" json:"course_id"`
	CertificateURL string    `gorm:"type:text;not null" json:"certificate_url"`
	IssuedAt       time.Time `gorm:"not null" json:"issued_at"`
}
