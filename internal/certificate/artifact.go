package certificate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/NowarkCodes/EduAble-sub000/internal/config"
	"github.com/google/uuid"
	"golang.org/x/oauth2/clientcredentials"
)

// ArtifactGenerator produces the certificateUrl for a completed course.
type ArtifactGenerator interface {
	Generate(ctx context.Context, userID, courseID uuid.UUID) (string, error)
}

// SignedURLGenerator points at the public verification route with an
// encrypted token naming the user and course.
type SignedURLGenerator struct {
	baseURL string
}

func NewSignedURLGenerator(baseURL string) *SignedURLGenerator {
	return &SignedURLGenerator{baseURL: strings.TrimRight(baseURL, "/")}
}

func (g *SignedURLGenerator) Generate(_ context.Context, userID, courseID uuid.UUID) (string, error) {
	token, err := NewVerificationToken(userID, courseID)
	if err != nil {
		return "", err
	}
	return g.baseURL + "/" + url.PathEscape(token), nil
}

func NewVerificationToken(userID, courseID uuid.UUID) (string, error) {
	return config.Encrypt(userID.String() + ":" + courseID.String())
}

// ParseVerificationToken reverses NewVerificationToken.
func ParseVerificationToken(token string) (userID, courseID uuid.UUID, err error) {
	plain, err := config.Decrypt(token)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	parts := strings.SplitN(plain, ":", 2)
	if len(parts) != 2 {
		return uuid.Nil, uuid.Nil, fmt.Errorf("malformed verification token")
	}
	if userID, err = uuid.Parse(parts[0]); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if courseID, err = uuid.Parse(parts[1]); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return userID, courseID, nil
}

// RemoteArtifactGenerator asks an external rendering service for the
// certificate, authenticating with OAuth2 client credentials.
type RemoteArtifactGenerator struct {
	client   *http.Client
	endpoint string
}

type RemoteConfig struct {
	Endpoint     string
	ClientID     string
	ClientSecret string
	TokenURL     string
}

func NewRemoteArtifactGenerator(ctx context.Context, cfg RemoteConfig) *RemoteArtifactGenerator {
	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
	}
	client := cc.Client(ctx)
	client.Timeout = 10 * time.Second
	return &RemoteArtifactGenerator{client: client, endpoint: cfg.Endpoint}
}

type remoteRequest struct {
	UserID   uuid.UUID `json:"user_id"`
	CourseID uuid.UUID `json:"course_id"`
}

type remoteResponse struct {
	CertificateURL string `json:"certificate_url"`
}

func (g *RemoteArtifactGenerator) Generate(ctx context.Context, userID, courseID uuid.UUID) (string, error) {
	payload, err := json.Marshal(remoteRequest{UserID: userID, CourseID: courseID})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("certificate service request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("certificate service returned %d", resp.StatusCode)
	}

	var out remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode certificate service response: %w", err)
	}
	if out.CertificateURL == "" {
		return "", fmt.Errorf("certificate service returned no url")
	}
	return out.CertificateURL, nil
}
