package model

// TokenInfo - данные клиента из JWT для закрытых /api маршрутов
type TokenInfo struct {
	Client string `json:"client"`
}
