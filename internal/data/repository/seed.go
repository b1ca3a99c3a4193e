package repository

import (
	"time"

	"customer-feedback/internal/data/entity"
)

func seedTime(day, hour int) time.Time {
	return time.Date(2024, time.March, day, hour, 0, 0, 0, time.UTC)
}

// seedFeedback is the snapshot the dashboard reads. It is never mutated at runtime.
var seedFeedback = []entity.Feedback{
	{ID: "FB001", UserName: "Sarah Johnson", ProductName: entity.ProductNebulaForce, Rating: 5, Sentiment: entity.SentimentPositive, CreatedAt: seedTime(1, 9),
		Comment: "Absolutely love Nebula Force! The flavor is amazing and it gives me great energy for my workouts without the jitters."},
	{ID: "FB002", UserName: "Michael Chen", ProductName: entity.ProductIronFist, Rating: 4, Sentiment: entity.SentimentPositive, CreatedAt: seedTime(1, 14),
		Comment: "Solid pre-workout. Mixes well and the pump is noticeable. Would like a slightly milder taste."},
	{ID: "FB003", UserName: "Emily Rodriguez", ProductName: entity.ProductQuantumLeap, Rating: 2, Sentiment: entity.SentimentNegative, CreatedAt: seedTime(2, 10),
		Comment: "Did not notice much of a difference and the powder clumps in the shaker."},
	{ID: "FB004", UserName: "David Kim", ProductName: entity.ProductThunderBurst, Rating: 3, Sentiment: entity.SentimentNeutral, CreatedAt: seedTime(2, 18),
		Comment: "It's okay. Energy boost is decent but the crash afterwards is real."},
	{ID: "FB005", UserName: "Jessica Williams", ProductName: entity.ProductAdrenalineShock, Rating: 5, Sentiment: entity.SentimentPositive, CreatedAt: seedTime(3, 8),
		Comment: "Best product I have tried this year. Focus and endurance both improved noticeably."},
	{ID: "FB006", UserName: "Robert Taylor", ProductName: entity.ProductSonicBoom, Rating: 1, Sentiment: entity.SentimentNegative, CreatedAt: seedTime(3, 20),
		Comment: "Tasted terrible and upset my stomach. Will not be buying again."},
	{ID: "FB007", UserName: "Amanda Brown", ProductName: entity.ProductInfernoX, Rating: 4, Sentiment: entity.SentimentPositive, CreatedAt: seedTime(4, 11),
		Comment: "Great thermogenic effect, I sweat a lot more during cardio. Packaging could be better."},
	{ID: "FB008", UserName: "Christopher Lee", ProductName: entity.ProductPlatinumPush, Rating: 3, Sentiment: entity.SentimentNeutral, CreatedAt: seedTime(4, 16),
		Comment: "Average at best. Nothing special but nothing bad either."},
	{ID: "FB009", UserName: "Olivia Martinez", ProductName: entity.ProductDragonFury, Rating: 5, Sentiment: entity.SentimentPositive, CreatedAt: seedTime(5, 7),
		Comment: "Dragon Fury lives up to the name. Incredible intensity in every session and the fruit punch flavor is spot on."},
	{ID: "FB010", UserName: "Daniel Anderson", ProductName: entity.ProductVelocityPunch, Rating: 2, Sentiment: entity.SentimentNegative, CreatedAt: seedTime(5, 13),
		Comment: "Too sweet and the effect wears off after twenty minutes."},
	{ID: "FB011", UserName: "Sophia Thomas", ProductName: entity.ProductNebulaForce, Rating: 4, Sentiment: entity.SentimentPositive, CreatedAt: seedTime(6, 9),
		Comment: "Really good energy and smooth taste. Slightly expensive for the serving size."},
	{ID: "FB012", UserName: "James Jackson", ProductName: entity.ProductIronFist, Rating: 5, Sentiment: entity.SentimentPositive, CreatedAt: seedTime(6, 15),
		Comment: "Hit new personal records on bench press two weeks in a row. Highly recommend."},
	{ID: "FB013", UserName: "Isabella White", ProductName: entity.ProductQuantumLeap, Rating: 3, Sentiment: entity.SentimentNeutral, CreatedAt: seedTime(7, 10),
		Comment: "Works fine on heavy days, but I expected more for the price."},
	{ID: "FB014", UserName: "Matthew Harris", ProductName: entity.ProductThunderBurst, Rating: 2, Sentiment: entity.SentimentNegative, CreatedAt: seedTime(7, 19),
		Comment: "Gave me headaches twice. The tingling sensation is too strong for me."},
	{ID: "FB015", UserName: "Mia Clark", ProductName: entity.ProductAdrenalineShock, Rating: 4, Sentiment: entity.SentimentPositive, CreatedAt: seedTime(8, 8),
		Comment: "Strong and clean energy. Took a star off because the tub arrived half empty looking."},
	{ID: "FB016", UserName: "Andrew Lewis", ProductName: entity.ProductSonicBoom, Rating: 2, Sentiment: entity.SentimentNegative, CreatedAt: seedTime(8, 17),
		Comment: "Flavor is artificial and the boost is barely there."},
	{ID: "FB017", UserName: "Charlotte Walker", ProductName: entity.ProductInfernoX, Rating: 3, Sentiment: entity.SentimentNeutral, CreatedAt: seedTime(9, 12),
		Comment: "Decent product. I noticed some results but nothing dramatic after a month."},
	{ID: "FB018", UserName: "Joshua Hall", ProductName: entity.ProductPlatinumPush, Rating: 4, Sentiment: entity.SentimentPositive, CreatedAt: seedTime(9, 18),
		Comment: "Better than I expected. Good pump and no crash afterwards."},
	{ID: "FB019", UserName: "Amelia Allen", ProductName: entity.ProductDragonFury, Rating: 4, Sentiment: entity.SentimentPositive, CreatedAt: seedTime(10, 9),
		Comment: "Very effective, though a bit too intense if I take it late in the afternoon."},
	{ID: "FB020", UserName: "Ryan Young", ProductName: entity.ProductVelocityPunch, Rating: 3, Sentiment: entity.SentimentNeutral, CreatedAt: seedTime(10, 14),
		Comment: "Middle of the road. Mixes easily, flavor is fine, effect is mild."},
}
