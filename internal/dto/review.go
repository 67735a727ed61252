package dto

type SubmitReviewRequestDTO struct {
	Rating int    `json:"rating" example:"5"`
	Text   string `json:"text" example:"Всё пришло мгновенно, рекомендую"`
}

type ReviewResponseDTO struct {
	ID     int64  `json:"id" example:"1718000000000"`
	Name   string `json:"name" example:"Алексей"`
	Rating int    `json:"rating" example:"5"`
	Text   string `json:"text" example:"Всё пришло мгновенно, рекомендую"`
	Date   string `json:"date" example:"09.12.2025"`
}
