package dto

type AddCartRequestDTO struct {
	OfferID string `json:"offer_id" example:"s2"`
}

type CartItemDTO struct {
	Index   int    `json:"index" example:"0"`
	OfferID string `json:"offer_id" example:"s2"`
	Name    string `json:"name" example:"Базовый набор"`
	Amount  string `json:"amount" example:"350 голды"`
	Line    string `json:"line" example:"in-app-gold"`
	Display string `json:"display" example:"550₽"`
}

type CartResponseDTO struct {
	Items    []CartItemDTO `json:"items"`
	Currency string        `json:"currency" example:"RUB"`
	Total    string        `json:"total" example:"1150₽"`
}

type CurrencyRequestDTO struct {
	Currency string `json:"currency" example:"EUR"`
}

type DeliveryRequestDTO struct {
	Line  string `json:"line" example:"in-app-gold"`
	Value string `json:"value" example:"player-777"`
}

type CheckoutRequestDTO struct {
	Card     string            `json:"card" example:"1234567812345678"`
	Delivery map[string]string `json:"delivery,omitempty"`
}

type CheckoutResponseDTO struct {
	Message string `json:"message"`
	OrderID int    `json:"order_id" example:"17"`
	Total   string `json:"total" example:"1150₽"`
	Link    string `json:"link" example:"https://t.me/gameshop_orders?text=..."`
}
