// Package service implements authentication: credential checks against the
// user store and the stateless JWT lifecycle. Tokens are self-contained;
// nothing is stored server-side and there is no revocation.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"portfolio-cms/backend/common"
	cmserrors "portfolio-cms/backend/common/errors"
	"portfolio-cms/backend/model"
	"portfolio-cms/backend/store"
)

const (
	tokenIssuer   = "portfolio-cms"
	tokenLifetime = 24 * time.Hour
)

// JWTClaims are the claims embedded in issued tokens.
type JWTClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed token for the user, valid for 24 hours.
func GenerateToken(user *model.User) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   user.Username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(common.JWTSecret))
}

// ValidateToken verifies signature and expiry and returns the claims.
// Malformed, expired and badly signed tokens all fail the same way.
func ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(common.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// Authenticate checks a username/password pair against the credential store.
// Unknown usernames and wrong passwords return the same error so callers
// cannot probe for existing accounts.
func Authenticate(users *store.UserStore, username, password string) (*model.User, error) {
	user, err := users.FindByUsername(username)
	if err != nil {
		return nil, cmserrors.ErrInvalidCredentials
	}
	if !common.ValidatePasswordAndHash(password, user.Password) {
		return nil, cmserrors.ErrInvalidCredentials
	}
	return user, nil
}
