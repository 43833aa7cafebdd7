package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// DefaultAccessExpiry is the access token lifetime
	DefaultAccessExpiry = 2 * time.Hour
	// DefaultRefreshExpiry is the refresh token lifetime (34 days)
	DefaultRefreshExpiry = 816 * time.Hour

	expirationLayout = time.RFC1123
)

var (
	ErrInvalidToken         = errors.New("invalid token")
	ErrSigningConfigMissing = errors.New("token signing key or issuer is not configured")
)

// Claims represents JWT claims. The identity id travels in the jti slot.
type Claims struct {
	Role         string `json:"role"`
	Expiration   string `json:"expiration"`
	LastIssuedAt int64  `json:"last_issued_at"`
	jwt.RegisteredClaims
}

// IdentityID returns the identity id carried by the token.
func (c *Claims) IdentityID() (uuid.UUID, error) {
	return uuid.Parse(c.ID)
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken      string    `json:"accessToken"`
	RefreshToken     string    `json:"refreshToken"`
	AccessExpiresAt  time.Time `json:"accessExpiresAt"`
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"`
}

// JWTService handles JWT operations
type JWTService struct {
	secret        []byte
	issuer        string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	parser        *jwt.Parser
}

var (
	signJWTToken = func(token *jwt.Token, secret []byte) (string, error) {
		return token.SignedString(secret)
	}
	timeNow = time.Now
)

// NewJWTService creates a new JWT service. Zero expiries fall back to the defaults.
func NewJWTService(secret, issuer string, accessExpiry, refreshExpiry time.Duration) *JWTService {
	if accessExpiry == 0 {
		accessExpiry = DefaultAccessExpiry
	}
	if refreshExpiry == 0 {
		refreshExpiry = DefaultRefreshExpiry
	}
	return &JWTService{
		secret:        []byte(secret),
		issuer:        issuer,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
		// no issuer or audience checks, no clock skew allowance
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithLeeway(0),
		),
	}
}

// IssueTokenPair signs an access and a refresh token over the same claim set.
func (s *JWTService) IssueTokenPair(subject, role string, identityID uuid.UUID) (*TokenPair, error) {
	if len(s.secret) == 0 || s.issuer == "" {
		return nil, ErrSigningConfigMissing
	}

	now := timeNow()
	accessExp := now.Add(s.accessExpiry)
	refreshExp := now.Add(s.refreshExpiry)

	accessToken, err := s.generateToken(subject, role, identityID, now, accessExp)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateToken(subject, role, identityID, now, refreshExp)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// ValidateToken checks signature and lifetime. Every failure is ErrInvalidToken.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrInvalidToken
	}

	token, err := s.parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *JWTService) generateToken(subject, role string, identityID uuid.UUID, now, expiresAt time.Time) (string, error) {
	claims := &Claims{
		Role:         role,
		Expiration:   expiresAt.UTC().Format(expirationLayout),
		LastIssuedAt: now.Unix(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			ID:        identityID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return signJWTToken(token, s.secret)
}
