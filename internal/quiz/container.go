package quiz

import "gorm.io/gorm"

type Container struct {
	Handler *Handler
	Service Service
}

// NewContainer accepts a nil drafter when text generation is disabled.
func NewContainer(db *gorm.DB, lessons Lessons, drafter Drafter) *Container {
	repo := NewRepository(db)
	service := NewService(repo, lessons, drafter)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
