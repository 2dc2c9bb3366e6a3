package authenticate

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
)

// UseCase use case входа специалиста.
// Демо-режим: у всех специалистов один общий пароль
type UseCase struct {
	repo         ProfessionalRepository
	issuer       TokenIssuer
	sharedSecret []byte
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	repo ProfessionalRepository,
	issuer TokenIssuer,
	sharedSecret string,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		repo:         repo,
		issuer:       issuer,
		sharedSecret: []byte(sharedSecret),
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute проверяет учетные данные и выпускает токен сессии
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.Email) == "" || req.Secret == "" {
		return nil, fmt.Errorf("%w: email and secret are required", ErrInvalidInput)
	}

	p, err := uc.repo.GetByEmail(req.Email)
	// пароль сравнивается и для неизвестного email, чтобы оба отказа выглядели одинаково
	secretOK := subtle.ConstantTimeCompare([]byte(req.Secret), uc.sharedSecret) == 1
	if err != nil || !secretOK {
		uc.observe(false)
		uc.logger.Warn("Authenticate: rejected login for email=%q", req.Email)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := uc.issuer.Issue(p.ID)
	if err != nil {
		uc.logger.Error("Authenticate: failed to issue token for professional id=%s: %v", p.ID, err)
		return nil, fmt.Errorf("%w: issue token: %v", ErrInternal, err)
	}

	uc.observe(true)
	uc.logger.Info("Authenticate: professional id=%s logged in", p.ID)

	return &Response{
		Professional: p,
		Token:        token,
		ExpiresAt:    expiresAt,
	}, nil
}

func (uc *UseCase) observe(success bool) {
	if uc.metrics != nil {
		uc.metrics.ObserveAuthentication(success)
	}
}
