package dto

type OfferDTO struct {
	ID       string `json:"id" example:"s2"`
	Name     string `json:"name" example:"Базовый набор"`
	Amount   string `json:"amount" example:"350 голды"`
	Price    int    `json:"price" example:"550"`
	OldPrice int    `json:"old_price,omitempty" example:"700"`
	Badge    string `json:"badge,omitempty" example:"Выгодно"`
	Line     string `json:"line" example:"in-app-gold"`
	Display  string `json:"display" example:"550₽"`
	Economy  string `json:"economy,omitempty" example:"150₽"`
}
