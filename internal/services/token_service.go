package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fuel-ledger/internal/config"
	"fuel-ledger/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess = "access"

	// clockSkew tolerated between the login service and this API
	clockSkew = 30 * time.Second
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrInvalidTokenType  = errors.New("invalid token type")
	ErrInvalidRole       = errors.New("invalid role")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	ErrSigningDisabled   = errors.New("token signing is not configured")
)

// TokenService signs and verifies RS256 staff access tokens. Production
// deployments only hold the public key; tokens come from the back-office
// login service.
type TokenService struct {
	cfg    config.JWTConfig
	parser *jwt.Parser
	now    func() time.Time
}

// NewTokenService creates a new token service from JWT configuration
func NewTokenService(jwtConfig *config.JWTConfig) TokenServiceInterface {
	return newTokenService(jwtConfig, time.Now)
}

func newTokenService(jwtConfig *config.JWTConfig, now func() time.Time) *TokenService {
	return &TokenService{
		cfg: *jwtConfig,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithIssuer(jwtConfig.Issuer),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(clockSkew),
			jwt.WithTimeFunc(now),
		),
		now: now,
	}
}

// GenerateAccessToken signs a token for a staff member. It needs the
// private key, so it only works where tokens are minted locally.
func (ts *TokenService) GenerateAccessToken(staffID uuid.UUID, role string) (string, time.Time, error) {
	switch {
	case staffID == uuid.Nil:
		return "", time.Time{}, errors.New("staff ID cannot be nil")
	case !models.IsValidRole(role):
		return "", time.Time{}, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	case ts.cfg.PrivateKey == nil:
		return "", time.Time{}, ErrSigningDisabled
	}

	issuedAt := ts.now()
	expiresAt := issuedAt.Add(ts.cfg.AccessTokenDuration)

	claims := models.StaffClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.cfg.Issuer,
			Subject:   staffID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		StaffID:   staffID.String(),
		Role:      role,
		TokenType: TokenTypeAccess,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(ts.cfg.PrivateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateAccessToken verifies the signature and registered claims, then
// checks that the token is a staff access token with a known role
func (ts *TokenService) ValidateAccessToken(tokenString string) (*models.StaffClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	claims := &models.StaffClaims{}
	if _, err := ts.parser.ParseWithClaims(tokenString, claims, ts.verificationKey); err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenInvalidIssuer):
			return nil, ErrInvalidIssuer
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
	}

	if claims.TokenType != TokenTypeAccess {
		return nil, ErrInvalidTokenType
	}
	if !models.IsValidRole(claims.Role) {
		return nil, ErrInvalidRole
	}

	return claims, nil
}

// ExtractTokenFromHeader returns the credentials of a Bearer Authorization
// header. The scheme is case-insensitive.
func (ts *TokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidAuthHeader
	}
	return token, nil
}

func (ts *TokenService) verificationKey(*jwt.Token) (interface{}, error) {
	if ts.cfg.PublicKey == nil {
		return nil, errors.New("no public key configured")
	}
	return ts.cfg.PublicKey, nil
}
