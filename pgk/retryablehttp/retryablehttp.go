package retryablehttp

import (
	"context"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"time"
)

type RetryConfig struct {
	MaxRetries int           // Повторы после первой попытки (0 - без повторов)
	BaseDelay  time.Duration // Базовая задержка (по умолчанию 100ms)
	MaxDelay   time.Duration // Максимальная задержка (по умолчанию 5s)
	MaxJitter  time.Duration // Максимальный jitter (по умолчанию 100ms)
	Timeout    time.Duration // Таймаут одного запроса (по умолчанию 30s)
}

type RetryableClient struct {
	client      *http.Client
	retryConfig RetryConfig
}

func NewRetryableClient(config RetryConfig) *RetryableClient {
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	if config.BaseDelay == 0 {
		config.BaseDelay = 100 * time.Millisecond
	}
	if config.MaxDelay == 0 {
		config.MaxDelay = 5 * time.Second
	}
	if config.MaxJitter == 0 {
		config.MaxJitter = 100 * time.Millisecond
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	return &RetryableClient{
		client:      &http.Client{Timeout: config.Timeout},
		retryConfig: config,
	}
}

// isRetryable определяет, нужно ли делать retry.
// Повторяются только запросы без тела и без побочных эффектов.
func (c *RetryableClient) isRetryable(req *http.Request, resp *http.Response, err error) bool {
	if req != nil && req.Method != http.MethodGet && req.Method != http.MethodHead {
		return false
	}

	if err != nil {
		// Сетевые ошибки всегда retry
		return true
	}

	if resp == nil {
		return false
	}

	// Retry для серверных ошибок и rate limiting
	statusCode := resp.StatusCode
	return statusCode == 0 || // Неизвестная ошибка
		(statusCode >= 500 && statusCode <= 599) || // 5xx, 502 Bad Gateway, 503 Service Unavailable, 504 Gateway Timeout etc
		statusCode == 429 || // Too Many Requests
		statusCode == 408 // Request Timeout
}

// Do выполняет запрос. Ответ последней попытки возвращается как есть,
// даже если его статус считается повторяемым.
func (c *RetryableClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	req = req.WithContext(ctx)

	for attempt := 0; ; attempt++ {
		// Проверка отмены контекста
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		resp, err := c.client.Do(req)
		if err != nil && ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if attempt >= c.retryConfig.MaxRetries || !c.isRetryable(req, resp, err) {
			return resp, err
		}

		delay := c.backoffDelay(attempt)

		// Закрываем тело ответа при retry
		if resp != nil && resp.Body != nil {
			if resp.StatusCode == http.StatusTooManyRequests {
				delay = c.retryAfter(resp, delay)
			}
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
}

// backoffDelay вычисляет задержку с экспоненциальным ростом и jitter
func (c *RetryableClient) backoffDelay(attempt int) time.Duration {
	backoff := time.Duration(1<<uint(attempt)) * c.retryConfig.BaseDelay
	if backoff > c.retryConfig.MaxDelay {
		backoff = c.retryConfig.MaxDelay
	}

	jitter := time.Duration(rand.Int63n(int64(c.retryConfig.MaxJitter)))
	return backoff + jitter
}

// retryAfter - задержка из заголовка Retry-After, не больше MaxDelay
func (c *RetryableClient) retryAfter(resp *http.Response, fallback time.Duration) time.Duration {
	retryAfter := resp.Header.Get("Retry-After")
	if retryAfter == "" {
		return fallback
	}

	seconds, err := strconv.ParseInt(retryAfter, 10, 64)
	if err != nil || seconds < 0 {
		return fallback
	}

	delay := time.Duration(seconds) * time.Second
	if delay > c.retryConfig.MaxDelay {
		return c.retryConfig.MaxDelay
	}

	return delay
}
