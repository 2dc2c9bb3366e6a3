package authenticate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/infra/storage/directory"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type issuerMock struct {
	mock.Mock
}

func (m *issuerMock) Issue(professionalID string) (string, time.Time, error) {
	args := m.Called(professionalID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type metricsMock struct {
	mock.Mock
}

func (m *metricsMock) ObserveAuthentication(success bool) {
	m.Called(success)
}

const secret = "123456"

func newRepo(t *testing.T) *directory.Repository {
	t.Helper()
	repo, err := directory.NewRepository([]*domain.Professional{
		{ID: "p-1", Name: "Dra. Camila Nogueira", Email: "camila.nogueira@gmail.com", DefaultDuration: domain.Duration60},
	})
	require.NoError(t, err)
	return repo
}

func TestUseCase_Execute_Success(t *testing.T) {
	expiresAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	issuer := &issuerMock{}
	issuer.On("Issue", "p-1").Return("token", expiresAt, nil).Once()
	metrics := &metricsMock{}
	metrics.On("ObserveAuthentication", true).Once()

	uc := NewUseCase(newRepo(t), issuer, secret, metrics, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Email: " Camila.Nogueira@GMAIL.com ", Secret: secret})

	require.NoError(t, err)
	assert.Equal(t, "p-1", resp.Professional.ID)
	assert.Equal(t, "token", resp.Token)
	assert.Equal(t, expiresAt, resp.ExpiresAt)
	issuer.AssertExpectations(t)
	metrics.AssertExpectations(t)
}

func TestUseCase_Execute_RejectionsAreIndistinguishable(t *testing.T) {
	issuer := &issuerMock{}
	metrics := &metricsMock{}
	metrics.On("ObserveAuthentication", false).Twice()

	uc := NewUseCase(newRepo(t), issuer, secret, metrics, logger.NewNop())

	_, unknownErr := uc.Execute(context.Background(), &Request{Email: "nobody@gmail.com", Secret: secret})
	_, wrongErr := uc.Execute(context.Background(), &Request{Email: "camila.nogueira@gmail.com", Secret: "654321"})

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	issuer.AssertNotCalled(t, "Issue", mock.Anything)
	metrics.AssertExpectations(t)
}

func TestUseCase_Execute_EmptyInput(t *testing.T) {
	uc := NewUseCase(newRepo(t), &issuerMock{}, secret, nil, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Email: " ", Secret: secret})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Email: "camila.nogueira@gmail.com"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_IssueFailure(t *testing.T) {
	issuer := &issuerMock{}
	issuer.On("Issue", "p-1").Return("", time.Time{}, errors.New("signing failed")).Once()

	uc := NewUseCase(newRepo(t), issuer, secret, nil, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Email: "camila.nogueira@gmail.com", Secret: secret})
	assert.ErrorIs(t, err, ErrInternal)
}
