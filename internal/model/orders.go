package model

// Order - поля заказа (v2 API), которые участвуют в расчёте суммы
type Order struct {
	TotalIncTax       Amount  `json:"total_inc_tax"`
	StoreCredit       *Amount `json:"store_credit"`
	StoreCreditAmount Amount  `json:"store_credit_amount"`
}

// Credit - store_credit, а если его нет в ответе, то store_credit_amount
func (o Order) Credit() Amount {
	if o.StoreCredit != nil {
		return *o.StoreCredit
	}

	return o.StoreCreditAmount
}

// Monto - сумма к оплате по счёту: total_inc_tax + store_credit
func (o Order) Monto() Amount {
	return o.TotalIncTax.Add(o.Credit()).Round2()
}

type OrderTotal struct {
	OrderID   int64      `json:"orderId"`
	Monto     Amount     `json:"monto"`
	Metafield *Metafield `json:"metafield"`
}
