package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const usedTokenPrefix = "used_token:"

// SignedToken represents a presigned dashboard link token
type SignedToken struct {
	DeploymentID string
	TokenID      string
	ExpiresAt    time.Time
}

// URLSignerService generates and validates presigned URLs for read-only
// dashboard access to a deployment's stats. Burned token IDs are tracked in
// the shared cache so a token validates at most once per jti.
type URLSignerService struct {
	secretKey []byte
	store     CacheInterface
}

// NewURLSignerService creates a new URL signer service
func NewURLSignerService(secretKey []byte, store CacheInterface) *URLSignerService {
	return &URLSignerService{
		secretKey: secretKey,
		store:     store,
	}
}

// GeneratePresignedURL generates a single-use presigned URL token scoped to
// one deployment
func (s *URLSignerService) GeneratePresignedURL(deploymentID string, ttl time.Duration) (string, error) {
	tokenID := uuid.New().String()
	expiresAt := time.Now().Add(ttl)

	claims := jwt.MapClaims{
		"deployment_id": deploymentID,
		"jti":           tokenID,
		"exp":           expiresAt.Unix(),
		"iat":           time.Now().Unix(),
	}

	// Sign with HMAC
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a presigned URL token. A token that has already
// been marked as used is rejected.
func (s *URLSignerService) ValidateToken(ctx context.Context, tokenString string) (*SignedToken, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	deploymentID, ok := (*claims)["deployment_id"].(string)
	if !ok {
		return nil, errors.New("missing or invalid deployment_id claim")
	}

	tokenID, ok := (*claims)["jti"].(string)
	if !ok {
		return nil, errors.New("missing or invalid jti claim")
	}

	expFloat, ok := (*claims)["exp"].(float64)
	if !ok {
		return nil, errors.New("missing or invalid exp claim")
	}
	expiresAt := time.Unix(int64(expFloat), 0)

	if time.Now().After(expiresAt) {
		return nil, errors.New("token expired")
	}

	if s.IsTokenUsed(tokenID) {
		return nil, errors.New("token already used")
	}

	return &SignedToken{
		DeploymentID: deploymentID,
		TokenID:      tokenID,
		ExpiresAt:    expiresAt,
	}, nil
}

// MarkTokenAsUsed burns a token for the remainder of its lifetime. The entry
// only needs to outlive the token's exp claim.
func (s *URLSignerService) MarkTokenAsUsed(tokenID string, expiresAt time.Time) {
	s.store.Set(usedTokenPrefix+tokenID, "1", time.Until(expiresAt))
}

// IsTokenUsed reports whether a token has already been burned.
func (s *URLSignerService) IsTokenUsed(tokenID string) bool {
	_, found := s.store.Get(usedTokenPrefix + tokenID)
	return found
}
