// Package auth implements JWT session tokens and the cookies that carry
// them. Signup and login issue a short-lived access token and a longer-lived
// refresh token; the refresh endpoint exchanges a valid refresh token for a
// new access token.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rekib0023/expense-sharing-backend/internal/config"
)

// Token types carried in the token_type claim.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Typed validation errors. Callers branch on these to produce distinct 401
// responses instead of matching on error strings.
var (
	ErrTokenMissing = errors.New("auth: token missing")
	ErrTokenExpired = errors.New("auth: token expired")
	ErrTokenInvalid = errors.New("auth: token invalid")
)

// Claims represents the claims in a session JWT.
type Claims struct {
	UserID    uint   `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

func signingKey() []byte {
	return []byte(config.Get().JWTSecret)
}

// IssueAccessToken generates a short-lived access token for a user.
func IssueAccessToken(userID uint) (string, error) {
	return issue(userID, TypeAccess, config.Get().AccessTokenTTL)
}

// IssueRefreshToken generates a long-lived refresh token for a user.
func IssueRefreshToken(userID uint) (string, error) {
	return issue(userID, TypeRefresh, config.Get().RefreshTokenTTL)
}

func issue(userID uint, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "expense-sharing-api",
			Subject:   strconv.FormatUint(uint64(userID), 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey())
}

// Parse validates a token's signature, expiry, and type. It returns
// ErrTokenMissing for an empty token, ErrTokenExpired for a token past its
// expiry, and ErrTokenInvalid for everything else that fails validation.
func Parse(tokenString, wantType string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrTokenMissing
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return signingKey(), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if !token.Valid || claims.TokenType != wantType {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// HashToken returns the SHA-256 hex digest of a token string. Only the
// digest of the refresh token is persisted.
func HashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}
