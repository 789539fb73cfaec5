package services

import (
	"crypto/rsa"
	"testing"
	"time"

	"fuel-ledger/internal/config"
	"fuel-ledger/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	privateKey     *rsa.PrivateKey
	publicKey      *rsa.PublicKey
	service        TokenServiceInterface
	issuer         string
	accessDuration time.Duration
}

// SetupTest runs before each test
func (s *TokenServiceTestSuite) SetupTest() {
	var err error
	s.privateKey, s.publicKey, err = config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.issuer = "test-issuer"
	s.accessDuration = 12 * time.Hour

	s.service = NewTokenService(&config.JWTConfig{
		PrivateKey:          s.privateKey,
		PublicKey:           s.publicKey,
		Issuer:              s.issuer,
		AccessTokenDuration: s.accessDuration,
	})
}

// TestTokenServiceSuite runs the test suite
func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

// Test GenerateAccessToken
func (s *TokenServiceTestSuite) TestGenerateAccessToken() {
	token, expiresAt, err := s.service.GenerateAccessToken(uuid.New(), models.RoleAccountant)
	s.NoError(err)
	s.NotEmpty(token)
	s.True(expiresAt.After(time.Now()))
	s.True(expiresAt.Before(time.Now().Add(13 * time.Hour)))
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken_InvalidInput() {
	_, _, err := s.service.GenerateAccessToken(uuid.Nil, models.RoleAdmin)
	s.Error(err)

	_, _, err = s.service.GenerateAccessToken(uuid.New(), "customer")
	s.ErrorIs(err, ErrInvalidRole)
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken_PublicKeyOnly() {
	verifier := NewTokenService(&config.JWTConfig{
		PublicKey:           s.publicKey,
		Issuer:              s.issuer,
		AccessTokenDuration: s.accessDuration,
	})

	_, _, err := verifier.GenerateAccessToken(uuid.New(), models.RoleAdmin)
	s.ErrorIs(err, ErrSigningDisabled)
}

// Test ValidateAccessToken with valid token
func (s *TokenServiceTestSuite) TestValidateAccessToken_Success() {
	staffID := uuid.New()

	token, _, err := s.service.GenerateAccessToken(staffID, models.RoleManager)
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(token)
	s.NoError(err)
	s.NotNil(claims)
	s.Equal(staffID.String(), claims.StaffID)
	s.Equal(staffID.String(), claims.Subject)
	s.Equal(models.RoleManager, claims.Role)
	s.Equal(s.issuer, claims.Issuer)
	s.Equal(TokenTypeAccess, claims.TokenType)
}

// Test ValidateAccessToken with empty token
func (s *TokenServiceTestSuite) TestValidateAccessToken_EmptyToken() {
	claims, err := s.service.ValidateAccessToken("")
	s.Error(err)
	s.Contains(err.Error(), "empty token")
	s.Nil(claims)
}

// Test ValidateAccessToken with invalid format
func (s *TokenServiceTestSuite) TestValidateAccessToken_InvalidFormat() {
	claims, err := s.service.ValidateAccessToken("invalid.token.format")
	s.Error(err)
	s.Contains(err.Error(), "invalid token")
	s.Nil(claims)
}

// Test ValidateAccessToken with malformed token
func (s *TokenServiceTestSuite) TestValidateAccessToken_MalformedToken() {
	claims, err := s.service.ValidateAccessToken("eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9.invalid.signature")
	s.Error(err)
	s.Contains(err.Error(), "invalid token")
	s.Nil(claims)
}

// Test expired token
func (s *TokenServiceTestSuite) TestExpiredToken() {
	expired := NewTokenService(&config.JWTConfig{
		PrivateKey:          s.privateKey,
		PublicKey:           s.publicKey,
		Issuer:              s.issuer,
		AccessTokenDuration: -time.Minute,
	})

	token, _, err := expired.GenerateAccessToken(uuid.New(), models.RoleCashier)
	s.NoError(err)

	claims, err := expired.ValidateAccessToken(token)
	s.ErrorIs(err, ErrExpiredToken)
	s.Nil(claims)
}

// Test wrong issuer
func (s *TokenServiceTestSuite) TestWrongIssuer() {
	other := NewTokenService(&config.JWTConfig{
		PrivateKey:          s.privateKey,
		PublicKey:           s.publicKey,
		Issuer:              "another-station",
		AccessTokenDuration: time.Hour,
	})

	token, _, err := other.GenerateAccessToken(uuid.New(), models.RoleAdmin)
	s.NoError(err)

	claims, err := s.service.ValidateAccessToken(token)
	s.Error(err)
	s.Contains(err.Error(), "invalid issuer")
	s.Nil(claims)
}

// Test different keys
func (s *TokenServiceTestSuite) TestDifferentKeys() {
	privateKey2, publicKey2, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	other := NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey2,
		PublicKey:           publicKey2,
		Issuer:              s.issuer,
		AccessTokenDuration: time.Hour,
	})

	token, _, err := other.GenerateAccessToken(uuid.New(), models.RoleAdmin)
	s.NoError(err)

	claims, err := s.service.ValidateAccessToken(token)
	s.Error(err)
	s.Contains(err.Error(), "invalid token")
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestUnknownRoleRejected() {
	now := time.Now()
	claims := models.StaffClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		StaffID:   uuid.NewString(),
		Role:      "customer",
		TokenType: TokenTypeAccess,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	s.Require().NoError(err)

	parsed, err := s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidRole)
	s.Nil(parsed)
}

func (s *TokenServiceTestSuite) TestClockSkewTolerated() {
	issued := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)
	signer := newTokenService(&config.JWTConfig{
		PrivateKey:          s.privateKey,
		PublicKey:           s.publicKey,
		Issuer:              s.issuer,
		AccessTokenDuration: time.Hour,
	}, func() time.Time { return issued })

	token, expiresAt, err := signer.GenerateAccessToken(uuid.New(), models.RoleCashier)
	s.Require().NoError(err)

	slightlyLate := newTokenService(&signer.cfg, func() time.Time { return expiresAt.Add(10 * time.Second) })
	_, err = slightlyLate.ValidateAccessToken(token)
	s.NoError(err)

	tooLate := newTokenService(&signer.cfg, func() time.Time { return expiresAt.Add(time.Minute) })
	_, err = tooLate.ValidateAccessToken(token)
	s.ErrorIs(err, ErrExpiredToken)
}

func (s *TokenServiceTestSuite) TestMissingExpiryRejected() {
	claims := models.StaffClaims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: s.issuer},
		StaffID:          uuid.NewString(),
		Role:             models.RoleAdmin,
		TokenType:        TokenTypeAccess,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestHMACTokenRejected() {
	claims := models.StaffClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		StaffID:   uuid.NewString(),
		Role:      models.RoleAdmin,
		TokenType: TokenTypeAccess,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("shared-secret"))
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestWrongTokenType() {
	now := time.Now()
	claims := models.StaffClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		StaffID:   uuid.NewString(),
		Role:      models.RoleAdmin,
		TokenType: "refresh",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidTokenType)
}

// Test ExtractTokenFromHeader with valid bearer token
func (s *TokenServiceTestSuite) TestExtractTokenFromHeader_ValidBearer() {
	token, err := s.service.ExtractTokenFromHeader("Bearer eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9.token")
	s.NoError(err)
	s.Equal("eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9.token", token)
}

// Test ExtractTokenFromHeader with lowercase bearer
func (s *TokenServiceTestSuite) TestExtractTokenFromHeader_LowercaseBearer() {
	token, err := s.service.ExtractTokenFromHeader("bearer eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9.token")
	s.NoError(err)
	s.Equal("eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9.token", token)
}

// Test ExtractTokenFromHeader with malformed headers
func (s *TokenServiceTestSuite) TestExtractTokenFromHeader_Invalid() {
	for _, header := range []string{"", "Bearer", "Bearer ", "eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9.token", "Basic dXNlcjpwYXNz"} {
		s.Run(header, func() {
			token, err := s.service.ExtractTokenFromHeader(header)
			s.ErrorIs(err, ErrInvalidAuthHeader)
			s.Empty(token)
		})
	}
}

func BenchmarkTokenService_ValidateAccessToken(b *testing.B) {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	if err != nil {
		b.Fatal(err)
	}

	ts := NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "test-issuer",
		AccessTokenDuration: time.Hour,
	})

	token, _, err := ts.GenerateAccessToken(uuid.New(), models.RoleAccountant)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ts.ValidateAccessToken(token); err != nil {
			b.Fatal(err)
		}
	}
}
