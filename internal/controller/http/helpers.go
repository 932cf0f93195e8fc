package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ibeloyar/bcproxy/internal/model"
)

var internalErrorBody = []byte(`{"error":"` + model.ErrInternalServerMessage + `"}`)

// writeJSON - записывает ответ в формате JSON и добавляет заголовок Content-Type: application/json
func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	response, err := json.Marshal(data)
	if err != nil {
		statusCode = http.StatusInternalServerError
		response = internalErrorBody
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(response)
}

// writeError - ответ BigCommerce отдаётся как есть, APIError - {"error": msg},
// всё остальное логируется и превращается в 500
func (c *Controller) writeError(w http.ResponseWriter, err error) {
	var upstreamErr *model.UpstreamError
	if errors.As(err, &upstreamErr) {
		c.lg.Infof("upstream error passthrough: %v", err)

		if upstreamErr.ContentType != "" {
			w.Header().Set("Content-Type", upstreamErr.ContentType)
		}
		w.WriteHeader(upstreamErr.StatusCode)
		w.Write(upstreamErr.Body)
		return
	}

	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code >= http.StatusInternalServerError {
			c.lg.Errorf("request failed: %v", err)
		}

		writeJSON(w, model.ErrorResponse{Error: apiErr.Message}, apiErr.Code)
		return
	}

	c.lg.Errorf("request failed: %v", err)
	writeJSON(w, model.ErrorResponse{Error: model.ErrInternalServerMessage}, http.StatusInternalServerError)
}
