package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

const amountPlaces = 2

// Amount - денежная сумма. Из JSON читается и строкой, и числом;
// отсутствующее или нечисловое значение считается нулём.
type Amount struct {
	value decimal.Decimal
}

func NewAmount(value string) Amount {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return Amount{}
	}

	return Amount{value: d}
}

func (a Amount) Add(b Amount) Amount {
	return Amount{value: a.value.Add(b.value)}
}

// Round2 - округление до копеек, половина округляется от нуля (100.005 -> 100.01)
func (a Amount) Round2() Amount {
	return Amount{value: a.value.Round(amountPlaces)}
}

func (a Amount) Equal(b Amount) bool {
	return a.value.Equal(b.value)
}

func (a Amount) String() string {
	return a.value.StringFixed(amountPlaces)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	raw = strings.TrimPrefix(raw, `"`)
	raw = strings.TrimSuffix(raw, `"`)

	*a = NewAmount(raw)
	return nil
}
