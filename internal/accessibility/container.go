package accessibility

import "gorm.io/gorm"

type Container struct {
	Handler *Handler
	Repo    Repository
}

func NewContainer(db *gorm.DB) *Container {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Repo:    repo,
	}
}
