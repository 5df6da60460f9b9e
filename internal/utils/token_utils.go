package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/news_aggregator_app/internal/apperrors"
	"github.com/golang-jwt/jwt/v5"
)

// Token verification failures. All of them wrap apperrors.ErrInvalidToken so
// callers that do not care about the reason can match a single sentinel.
var (
	ErrInvalidToken   = apperrors.ErrInvalidToken
	ErrTokenExpired   = fmt.Errorf("%w: expired", ErrInvalidToken)
	ErrTokenMalformed = fmt.Errorf("%w: malformed", ErrInvalidToken)
	ErrTokenSignature = fmt.Errorf("%w: bad signature", ErrInvalidToken)
	ErrTokenType      = fmt.Errorf("%w: wrong token type", ErrInvalidToken)
)

// AppClaims is the claim set carried by every token this service issues.
type AppClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	Type   string `json:"type,omitempty"`
	// PasswordState binds a reset token to the password it may replace.
	PasswordState string `json:"pst,omitempty"`
	jwt.RegisteredClaims
}

// GenerateJWT signs claims with HS256, filling in the registered claims.
func GenerateJWT(claims AppClaims, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   claims.UserID,
		ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a JWT token string, validates its signature, issuer and
// standard time claims. Failures are mapped onto the Err* sentinels of this package.
func ParseAndValidateJWT(tokenString string, secretKey string, issuer string) (*AppClaims, error) {
	claims := &AppClaims{}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	}, opts...)

	if err != nil {
		return nil, classifyJWTError(err)
	}
	if !token.Valid {
		return nil, ErrTokenSignature
	}
	if claims.UserID == "" {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}

func classifyJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenNotValidYet):
		return fmt.Errorf("%w: %v", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", ErrTokenSignature, err)
	default:
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}
}
