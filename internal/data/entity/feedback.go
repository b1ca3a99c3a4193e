package entity

import "time"

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Feedback is one customer's review of one product. Records are read-only once loaded.
type Feedback struct {
	ID          string
	UserName    string
	ProductName Product
	Rating      int // 1-5
	Comment     string
	Sentiment   Sentiment
	CreatedAt   time.Time
}
