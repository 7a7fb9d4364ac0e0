package middlewareprovider

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenIssuer signs and parses the session tokens. Both tokens carry the
// user id in "sub" and the session id in "sid".
type TokenIssuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewTokenIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

// GenerateJWT creates a new JWT access token for the session.
func (t *TokenIssuer) GenerateJWT(userID, sessionID string) (string, error) {
	return t.sign(t.accessSecret, "access", userID, sessionID, t.accessTTL)
}

func (t *TokenIssuer) GenerateRefreshToken(userID, sessionID string) (string, error) {
	return t.sign(t.refreshSecret, "refresh", userID, sessionID, t.refreshTTL)
}

func (t *TokenIssuer) sign(secret []byte, typ, userID, sessionID string, ttl time.Duration) (string, error) {
	now := t.now()
	claims := jwt.MapClaims{
		"sub": userID,
		"sid": sessionID,
		"typ": typ,
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseJWT validates an access token and returns its user and session ids.
func (t *TokenIssuer) ParseJWT(tokenStr string) (string, string, error) {
	return t.parse(t.accessSecret, "access", tokenStr)
}

func (t *TokenIssuer) ParseRefreshToken(tokenStr string) (string, string, error) {
	return t.parse(t.refreshSecret, "refresh", tokenStr)
}

func (t *TokenIssuer) parse(secret []byte, wantTyp, tokenStr string) (string, string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))

	if err != nil || !token.Valid {
		return "", "", errors.Wrap(ErrInvalidToken, fmt.Sprint(err))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid token claims")
	}

	if claims["typ"] != wantTyp {
		return "", "", errors.Errorf("token is not a %s token", wantTyp)
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", errors.New("invalid 'sub' claim")
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", "", errors.New("invalid 'sid' claim")
	}
	return sub, sid, nil
}
