package response

import "customer-feedback/internal/widget"

type FormResponse struct {
	ProductName string `json:"product_name"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
}

// SubmissionResponse acknowledges a simulated submission. Reference only identifies
// the attempt in logs; nothing is stored under it.
type SubmissionResponse struct {
	Reference    string              `json:"reference"`
	Notification widget.Notification `json:"notification"`
	Form         FormResponse        `json:"form"`
}
