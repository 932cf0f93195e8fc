package service

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ibeloyar/bcproxy/internal/model"
)

// parseOrderID - orderId из query: целое число больше нуля
func parseOrderID(raw string) (int64, error) {
	orderID, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || orderID <= 0 {
		return 0, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrOrderIDRequiredMessage,
		}
	}

	return orderID, nil
}
