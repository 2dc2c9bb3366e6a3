package confirmationservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для передачи подтвержденных записей во внешний сервис.
// С пустым baseURL клиент выключен: подтверждения только логируются
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ConfirmationService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Enabled возвращает true, если указан адрес внешнего сервиса
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// Send передает подтверждение и возвращает идентификатор, выданный внешним сервисом
func (c *Client) Send(ctx context.Context, confirmation *domain.BookingConfirmation) (*Receipt, error) {
	if !c.Enabled() {
		c.log.Info("Confirmation for professional id=%s on %s %s kept local: service is not configured",
			confirmation.ProfessionalID, confirmation.Date, confirmation.StartTime)
		return &Receipt{Local: true}, nil
	}

	body, err := json.Marshal(FromDomain(confirmation))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/confirmations", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusConflict:
		var errResp ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return nil, fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, errResp.Message)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var receipt Receipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &receipt, nil
}

// SendWithGracefulDegradation передает подтверждение с graceful degradation.
// Отказ внешнего сервиса пробрасывается как есть, любая другая ошибка превращается в ErrServiceDegraded
func (c *Client) SendWithGracefulDegradation(ctx context.Context, confirmation *domain.BookingConfirmation) (*Receipt, error) {
	if !c.Enabled() {
		return c.Send(ctx, confirmation)
	}

	receipt, err := c.Send(ctx, confirmation)
	if err != nil {
		if errors.Is(err, ErrRejected) {
			c.log.Warn("Confirmation rejected for professional id=%s: %v", confirmation.ProfessionalID, err)
			return nil, err
		}

		c.log.Error("ConfirmationService unavailable, applying graceful degradation for professional id=%s: %v",
			confirmation.ProfessionalID, err)
		return nil, fmt.Errorf("%w: professional_id=%s, error=%v", ErrServiceDegraded, confirmation.ProfessionalID, err)
	}

	c.log.Info("Confirmation delivered for professional id=%s, receipt=%q", confirmation.ProfessionalID, receipt.ID)
	return receipt, nil
}
