package bigcommerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ibeloyar/bcproxy/internal/model"
)

const (
	DefaultBaseURL = "https://api.bigcommerce.com"

	metafieldsPageLimit = 250
)

// HTTPClient - транспорт до BigCommerce (retryablehttp.RetryableClient)
type HTTPClient interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

type Repository struct {
	client     HTTPClient
	baseURL    string
	storeHash  string
	adminToken string
}

func New(client HTTPClient, baseURL, storeHash, adminToken string) *Repository {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Repository{
		client:     client,
		baseURL:    strings.TrimRight(baseURL, "/"),
		storeHash:  storeHash,
		adminToken: adminToken,
	}
}

type pagination struct {
	Total       int `json:"total"`
	Count       int `json:"count"`
	PerPage     int `json:"per_page"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// envelope - обёртка ответов v3 API: {"data": ..., "meta": {...}}
type envelope[T any] struct {
	Data T `json:"data"`
	Meta struct {
		Pagination *pagination `json:"pagination"`
	} `json:"meta"`
}

// ListOrderMetafields - все метаполя заказа, постранично
func (r *Repository) ListOrderMetafields(ctx context.Context, orderID int64) ([]model.Metafield, error) {
	result := make([]model.Metafield, 0)

	for page := 1; ; page++ {
		url := fmt.Sprintf("%s?limit=%d&page=%d", r.metafieldsURL(orderID), metafieldsPageLimit, page)

		var response envelope[[]model.Metafield]
		if err := r.do(ctx, http.MethodGet, url, nil, &response); err != nil {
			return nil, fmt.Errorf("list metafields of order %d: %w", orderID, err)
		}

		result = append(result, response.Data...)

		p := response.Meta.Pagination
		if p == nil || len(response.Data) == 0 || page >= p.TotalPages {
			break
		}
	}

	return result, nil
}

// GetOrder - заказ из v2 API
func (r *Repository) GetOrder(ctx context.Context, orderID int64) (*model.Order, error) {
	url := fmt.Sprintf("%s/stores/%s/v2/orders/%d", r.baseURL, r.storeHash, orderID)

	var order model.Order
	if err := r.do(ctx, http.MethodGet, url, nil, &order); err != nil {
		return nil, fmt.Errorf("get order %d: %w", orderID, err)
	}

	return &order, nil
}

// CreateOrderMetafield - создаёт метаполе. nil без ошибки, если в ответе нет записи.
func (r *Repository) CreateOrderMetafield(ctx context.Context, orderID int64, input model.MetafieldInput) (*model.Metafield, error) {
	var response envelope[*model.Metafield]
	if err := r.do(ctx, http.MethodPost, r.metafieldsURL(orderID), input, &response); err != nil {
		return nil, fmt.Errorf("create metafield of order %d: %w", orderID, err)
	}

	return response.Data, nil
}

// UpdateOrderMetafield - обновляет метаполе по id
func (r *Repository) UpdateOrderMetafield(ctx context.Context, orderID, metafieldID int64, input model.MetafieldInput) (*model.Metafield, error) {
	url := fmt.Sprintf("%s/%d", r.metafieldsURL(orderID), metafieldID)

	var response envelope[*model.Metafield]
	if err := r.do(ctx, http.MethodPut, url, input, &response); err != nil {
		return nil, fmt.Errorf("update metafield %d of order %d: %w", metafieldID, orderID, err)
	}

	return response.Data, nil
}

func (r *Repository) metafieldsURL(orderID int64) string {
	return fmt.Sprintf("%s/stores/%s/v3/orders/%d/metafields", r.baseURL, r.storeHash, orderID)
}

// do - выполняет запрос и декодирует ответ в out.
// Не-2xx ответ возвращается как *model.UpstreamError с исходным телом.
func (r *Repository) do(ctx context.Context, method, url string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}

	req.Header.Set("X-Auth-Token", r.adminToken)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	response, err := r.client.Do(ctx, req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return &model.UpstreamError{
			StatusCode:  response.StatusCode,
			ContentType: response.Header.Get("Content-Type"),
			Body:        raw,
		}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
