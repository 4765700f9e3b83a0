package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SIA-BookingService/internal/domain"
)

// Client клиент проверки токенов reCAPTCHA
type Client struct {
	verifyURL  string
	secret     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента reCAPTCHA.
// Пустой verifyURL заменяется на DefaultVerifyURL.
func NewClient(verifyURL, secret string, timeout time.Duration, log Logger) *Client {
	if verifyURL == "" {
		verifyURL = DefaultVerifyURL
	}
	return &Client{
		verifyURL: verifyURL,
		secret:    secret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Verify проверяет токен. Пустой токен не отправляется и считается непройденной проверкой.
// Сетевые ошибки и неожиданные ответы возвращаются как *domain.ExternalServiceError.
func (c *Client) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	if strings.TrimSpace(token) == "" {
		c.log.Warn("Verify: empty token")
		return false, nil
	}

	resp, err := c.siteVerify(ctx, token, remoteIP)
	if err != nil {
		c.log.Error("Verify: verification service unavailable: %v", err)
		return false, &domain.ExternalServiceError{Service: ServiceName, Err: err}
	}

	if !resp.Success {
		c.log.Warn("Verify: token rejected, error codes=%v", resp.ErrorCodes)
		return false, nil
	}

	c.log.Info("Verify: token accepted, hostname=%s", resp.Hostname)
	return true, nil
}

func (c *Client) siteVerify(ctx context.Context, token, remoteIP string) (*VerifyResponse, error) {
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result VerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return &result, nil
}

// NopVerifier пропускает любой непустой токен. Используется, когда проверка выключена в конфиге.
type NopVerifier struct{}

// Verify реализует проверку без обращения к внешнему сервису
func (NopVerifier) Verify(_ context.Context, token, _ string) (bool, error) {
	return strings.TrimSpace(token) != "", nil
}
