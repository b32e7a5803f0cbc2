package accessibility

import (
	"context"
	"time"

	"github.com/NowarkCodes/EduAble-sub000/internal/apperror"
	"github.com/NowarkCodes/EduAble-sub000/internal/config"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, dto UpsertProfileDTO) (*ProfileResponse, error)
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) Service {
	return &service{repo: repo, validate: validator.New()}
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error) {
	log := config.WithContext(ctx)

	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		log.WithError(err).Error("failed to load accessibility profile")
		return nil, err
	}
	return toResponse(p), nil
}

func (s *service) UpsertProfile(ctx context.Context, userID uuid.UUID, dto UpsertProfileDTO) (*ProfileResponse, error) {
	log := config.WithContext(ctx)

	if err := s.validate.Struct(dto); err != nil {
		log.WithError(err).Warn("invalid accessibility profile payload")
		return nil, apperror.Validation("disability_types must list known disability types")
	}

	now := time.Now().UTC()
	p := &Profile{
		ID:              uuid.New(),
		UserID:          userID,
		DisabilityTypes: datatypes.JSONSlice[DisabilityType](dedupe(dto.DisabilityTypes)),
		Preferences:     datatypes.JSONMap(dto.Preferences),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		log.WithError(err).Error("failed to save accessibility profile")
		return nil, err
	}

	stored, err := s.repo.GetByUserID(ctx, userID)
	if err != nil || stored == nil {
		log.WithError(err).Warn("could not reload saved accessibility profile")
		stored = p
	}

	log.WithField("disability_types", stored.DisabilityTypes).Info("accessibility profile saved")
	return toResponse(stored), nil
}

func toResponse(p *Profile) *ProfileResponse {
	caps := Derive(p)
	return &ProfileResponse{
		Profile:      p,
		Capabilities: caps.Names(),
		Meta:         caps.LessonMeta(),
	}
}

func dedupe(in []DisabilityType) []DisabilityType {
	seen := make(map[DisabilityType]bool, len(in))
	out := make([]DisabilityType, 0, len(in))
	for _, d := range in {
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}
