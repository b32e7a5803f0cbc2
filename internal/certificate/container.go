package certificate

import (
	"context"

	"github.com/NowarkCodes/EduAble-sub000/internal/config"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
	Issuer  *Issuer
}

func NewContainer(ctx context.Context, db *gorm.DB, settings *config.Settings, src Sources, enrollment Enrollment) *Container {
	repo := NewRepository(db)
	issuer := NewIssuer(repo, src, NewGenerator(ctx, settings), nil)
	service := NewService(repo, issuer, enrollment)

	return &Container{
		Handler: NewHandler(service),
		Service: service,
		Issuer:  issuer,
	}
}

// NewGenerator uses the remote certificate service when one is configured.
func NewGenerator(ctx context.Context, settings *config.Settings) ArtifactGenerator {
	if settings.CertificateServiceURL == "" {
		return NewSignedURLGenerator(settings.CertificateBaseURL)
	}
	config.WithContext(ctx).Info("using remote certificate service")
	return NewRemoteArtifactGenerator(ctx, RemoteConfig{
		Endpoint:     settings.CertificateServiceURL,
		ClientID:     settings.CertificateClientID,
		ClientSecret: settings.CertificateClientSecret,
		TokenURL:     settings.CertificateTokenURL,
	})
}
