package request

type SubmitFeedbackRequest struct {
	ProductName string `json:"product_name"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
}

type ListFeedbackRequest struct {
	Sort      string `json:"sort" validate:"omitempty,oneof=id userName productName rating sentiment"`
	Direction string `json:"dir" validate:"omitempty,oneof=asc desc"`
}
