package dto

type PromoRequestDTO struct {
	Code string `json:"code" example:"GAMESHOP2024"`
}

type PromoResponseDTO struct {
	Message string `json:"message"`
}

type LogEntryDTO struct {
	ID     int    `json:"id" example:"3"`
	Action string `json:"action" example:"checkout"`
	Detail string `json:"detail,omitempty" example:"order 17, 2 items"`
	At     string `json:"at" example:"2025-12-09T16:09:57+03:00"`
}
