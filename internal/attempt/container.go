package attempt

import "github.com/NowarkCodes/EduAble-sub000/internal/feedback"

type Container struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

// NewContainer takes the repository from the caller so the certificate issuer
// can read passed attempts before this container exists.
func NewContainer(repo Repository, quizzes Quizzes, enrollment Enrollment, streaks Streaks, composer feedback.Composer, issuer CertificateIssuer) *Container {
	service := NewService(Deps{
		Repo:       repo,
		Quizzes:    quizzes,
		Enrollment: enrollment,
		Streaks:    streaks,
		Composer:   composer,
		Issuer:     issuer,
	})

	return &Container{
		Handler: NewHandler(service),
		Service: service,
		Repo:    repo,
	}
}
