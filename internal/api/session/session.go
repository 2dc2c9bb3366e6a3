package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "smc-agenda"

var (
	// ErrInvalidToken возвращается для неподписанного, испорченного или просроченного токена
	ErrInvalidToken = errors.New("session: invalid token")

	// ErrEmptySigningKey возвращается при создании менеджера без ключа подписи
	ErrEmptySigningKey = errors.New("session: empty signing key")
)

// Claims данные сессии специалиста
type Claims struct {
	jwt.RegisteredClaims
}

// Manager выпускает и проверяет токены сессии (HS256)
type Manager struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

// NewManager создает менеджер сессий
func NewManager(signingKey string, ttl time.Duration) (*Manager, error) {
	if signingKey == "" {
		return nil, ErrEmptySigningKey
	}
	return &Manager{
		signingKey: []byte(signingKey),
		ttl:        ttl,
		now:        time.Now,
	}, nil
}

// Issue выпускает токен для специалиста
func (m *Manager) Issue(professionalID string) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   professionalID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.signingKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("session: sign token: %w", err)
	}

	return token, expiresAt, nil
}

// Parse проверяет подпись и срок действия токена и возвращает id специалиста
func (m *Manager) Parse(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.signingKey, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}

	return claims.Subject, nil
}
