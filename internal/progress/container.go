package progress

import "gorm.io/gorm"

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB, lessons Lessons) *Container {
	repo := NewRepository(db)
	service := NewService(repo, lessons, nil)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
