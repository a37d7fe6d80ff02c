package jwtmanager

import (
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const claimEmail = "email"

// JWTManager signs and verifies the session tokens handed out on user upsert.
// Tokens are HS256 with the user email as the only custom claim.
type JWTManager struct {
	log    *zap.Logger
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) contracts.TokenManager {
	return &JWTManager{
		log:    log,
		secret: []byte(cfg.JWT.Secret),
		ttl:    time.Duration(cfg.JWT.ExpTimeInHour) * time.Hour,
		now:    time.Now,
	}
}

func (j *JWTManager) Sign(email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", exceptions.ErrTokenGenerate(errors.New("email is required"))
	}

	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		claimEmail: email,
		"iat":      now.Unix(),
		"exp":      now.Add(j.ttl).Unix(),
	})

	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return signed, nil
}

func (j *JWTManager) Verify(tokenString string) (string, error) {
	if strings.TrimSpace(tokenString) == "" {
		return "", exceptions.ErrTokenMalformed(errors.New("empty token"))
	}

	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%s: %v", constvars.ErrDevAuthSigningMethod, t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorMalformed != 0 {
			return "", exceptions.ErrTokenMalformed(err)
		}
		j.log.Debug("JWTManager.Verify rejected token", zap.Error(err))
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return "", exceptions.ErrTokenInvalidOrExpired(errors.New("invalid claims"))
	}

	email, _ := claims[claimEmail].(string)
	if email == "" {
		return "", exceptions.ErrTokenInvalidOrExpired(errors.New(constvars.ErrDevAuthTokenMissingEmail))
	}
	return email, nil
}
