package usecase

import (
	"sort"

	"customer-feedback/internal/data/entity"
)

// RankedCount is how many products the top and bottom lists hold.
const RankedCount = 3

// ProductStat is the average rating of one product over every record naming it.
type ProductStat struct {
	Product       entity.Product
	AverageRating float64
	Count         int
}

type Analytics struct {
	// All holds one entry per product present in the records, by product name.
	All []ProductStat
	// Top is best first.
	Top []ProductStat
	// Bottom is worst first. It may share entries with Top when there are fewer
	// than 2*RankedCount products.
	Bottom []ProductStat
}

// ComputeAnalytics aggregates records per product. It is a pure function of records.
func ComputeAnalytics(records []entity.Feedback) Analytics {
	type acc struct {
		total int
		count int
	}

	// Grouping keeps first-appearance order; the ranking below is stable on it.
	var order []entity.Product
	stats := make(map[entity.Product]*acc)
	for _, rec := range records {
		a, ok := stats[rec.ProductName]
		if !ok {
			a = &acc{}
			stats[rec.ProductName] = a
			order = append(order, rec.ProductName)
		}
		a.total += rec.Rating
		a.count++
	}

	grouped := make([]ProductStat, 0, len(order))
	for _, p := range order {
		a := stats[p]
		grouped = append(grouped, ProductStat{
			Product:       p,
			AverageRating: float64(a.total) / float64(a.count),
			Count:         a.count,
		})
	}

	byRating := make([]ProductStat, len(grouped))
	copy(byRating, grouped)
	sort.SliceStable(byRating, func(i, j int) bool {
		return byRating[i].AverageRating > byRating[j].AverageRating
	})

	n := RankedCount
	if len(byRating) < n {
		n = len(byRating)
	}

	top := make([]ProductStat, n)
	copy(top, byRating[:n])

	bottom := make([]ProductStat, n)
	tail := byRating[len(byRating)-n:]
	for i := range tail {
		bottom[i] = tail[len(tail)-1-i]
	}

	col := newCollator()
	all := grouped
	sort.SliceStable(all, func(i, j int) bool {
		return col.CompareString(string(all[i].Product), string(all[j].Product)) < 0
	})

	return Analytics{All: all, Top: top, Bottom: bottom}
}
