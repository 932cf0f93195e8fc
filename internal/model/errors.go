package model

import (
	"fmt"
	"net/http"
)

// APIError - ошибка, которую можно отдать клиенту как есть
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

const (
	ErrInternalServerMessage  = "internal server error"
	ErrOrderIDRequiredMessage = "missing order id"
)

// UpstreamError - ответ BigCommerce с не-2xx статусом, передаётся клиенту без изменений
type UpstreamError struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

type ErrorResponse struct {
	Error string `json:"error"`
}
