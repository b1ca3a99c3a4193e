package response

type ProductStatResponse struct {
	Rank          int     `json:"rank,omitempty"`
	Product       string  `json:"product"`
	AverageRating float64 `json:"average_rating"`
	Count         int     `json:"count"`
}

type AnalyticsResponse struct {
	All    []ProductStatResponse `json:"all"`
	Top    []ProductStatResponse `json:"top"`
	Bottom []ProductStatResponse `json:"bottom"`
}
