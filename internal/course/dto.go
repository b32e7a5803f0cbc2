package course

import (
	"github.com/NowarkCodes/EduAble-sub000/internal/accessibility"
	"github.com/google/uuid"
)

type LessonView struct {
	ID         uuid.UUID           `json:"id"`
	CourseID   uuid.UUID           `json:"course_id"`
	Title      string              `json:"title"`
	Content    string              `json:"content"`
	Transcript string              `json:"transcript,omitempty"`
	VideoURL   string              `json:"video_url,omitempty"`
	Order      int                 `json:"order"`
	A11yMeta   *accessibility.Meta `json:"a11y_meta"`
}

// Tailor builds the learner view of a lesson. With nil capabilities the view is
// the stored lesson as is.
func Tailor(l *Lesson, caps *accessibility.Capabilities) LessonView {
	transcript := l.Transcript
	if t := caps.Transcript(l.Transcript, l.Content); t != "" {
		transcript = t
	}

	return LessonView{
		ID:         l.ID,
		CourseID:   l.CourseID,
		Title:      l.Title,
		Content:    caps.Text(l.Content, l.SimplifiedContent),
		Transcript: transcript,
		VideoURL:   l.VideoURL,
		Order:      l.Position,
		A11yMeta:   caps.LessonMeta(),
	}
}
