package certificate

import (
	"context"

	"github.com/NowarkCodes/EduAble-sub000/internal/apperror"
	"github.com/NowarkCodes/EduAble-sub000/internal/config"
	"github.com/google/uuid"
)

var (
	ErrCourseIncomplete = apperror.PolicyViolation("course requirements are not complete")
	ErrInvalidToken     = apperror.Validation("invalid verification token")
)

type Enrollment interface {
	EnsureEnrolled(ctx context.Context, userID, courseID uuid.UUID) error
}

type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]Certificate, error)
	Claim(ctx context.Context, userID, courseID uuid.UUID) (*ClaimResponse, error)
	Verify(ctx context.Context, token string) (*VerifyResponse, error)
}

type service struct {
	repo       Repository
	issuer     *Issuer
	enrollment Enrollment
}

func NewService(repo Repository, issuer *Issuer, enrollment Enrollment) Service {
	return &service{repo: repo, issuer: issuer, enrollment: enrollment}
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]Certificate, error) {
	certs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("failed to list certificates")
		return nil, err
	}
	return certs, nil
}

// Claim issues the certificate on demand, for courses completed while issuance
// was unavailable. Claiming twice returns the stored certificate.
func (s *service) Claim(ctx context.Context, userID, courseID uuid.UUID) (*ClaimResponse, error) {
	if err := s.enrollment.EnsureEnrolled(ctx, userID, courseID); err != nil {
		return nil, err
	}

	issued, err := s.issuer.Issue(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	cert, err := s.repo.Get(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return nil, ErrCourseIncomplete
	}
	return &ClaimResponse{Issued: issued, Certificate: cert}, nil
}

func (s *service) Verify(ctx context.Context, token string) (*VerifyResponse, error) {
	userID, courseID, err := ParseVerificationToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	cert, err := s.repo.Get(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return &VerifyResponse{Valid: false}, nil
	}
	return &VerifyResponse{Valid: true, Certificate: cert}, nil
}
