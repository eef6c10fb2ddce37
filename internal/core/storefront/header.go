package storefront

import (
	"slices"
	"time"

	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/utils"
)

type bucket struct {
	matches func(date time.Time) bool
	header  domain.OrderCardHeader
	// selected is the id of the order showing this header, 0 while the bucket is open.
	selected int64
}

// HeaderGenerator groups orders into due date buckets and picks the order that shows each bucket's header.
// Feed it pages in due date order; it keeps its assignments until ResetHeaderChain.
type HeaderGenerator struct {
	now     func() time.Time
	chain   []*bucket
	headers map[int64]domain.OrderCardHeader
	buckets map[int64]domain.OrderCardHeader
}

func NewHeaderGenerator(now func() time.Time) *HeaderGenerator {
	if now == nil {
		now = time.Now
	}
	return &HeaderGenerator{
		now:     now,
		headers: make(map[int64]domain.OrderCardHeader),
		buckets: make(map[int64]domain.OrderCardHeader),
	}
}

// ResetHeaderChain rebuilds the buckets for the current day and forgets all assignments.
func (g *HeaderGenerator) ResetHeaderChain(includePast bool) {
	g.chain = createHeaderChain(domain.DateOf(g.now()), includePast)
	clear(g.headers)
	clear(g.buckets)
}

// Get returns the header to draw above the order, present only for the first order of a bucket.
func (g *HeaderGenerator) Get(orderID int64) (domain.OrderCardHeader, bool) {
	h, ok := g.headers[orderID]
	return h, ok
}

// BucketOf returns the bucket the order was sorted into.
func (g *HeaderGenerator) BucketOf(orderID int64) (domain.OrderCardHeader, bool) {
	h, ok := g.buckets[orderID]
	return h, ok
}

// OrdersRead processes a fetched page of orders.
func (g *HeaderGenerator) OrdersRead(orders []*domain.Order) {
	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, compareDue)

	cursor := 0
	for _, order := range sorted {
		idx := -1
		for i, b := range g.chain {
			if b.matches(order.DueDate) {
				idx = i
				break
			}
		}
		if idx < 0 {
			continue
		}
		b := g.chain[idx]
		g.buckets[order.ID] = b.header

		if b.selected == 0 && idx >= cursor {
			b.selected = order.ID
			g.headers[order.ID] = b.header
		}
		if idx > cursor {
			cursor = idx
		}
	}
}

func compareDue(a, b *domain.Order) int {
	if c := a.DueDate.Compare(b.DueDate); c != 0 {
		return c
	}
	if a.DueTime != b.DueTime {
		if a.DueTime < b.DueTime {
			return -1
		}
		return 1
	}
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	}
	return 0
}

func createHeaderChain(today time.Time, includePast bool) []*bucket {
	weekStart := domain.WeekStart(today)
	nextWeekStart := weekStart.AddDate(0, 0, 7)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)
	sunday := nextWeekStart.AddDate(0, 0, -1)

	chain := make([]*bucket, 0, 6)
	if includePast {
		chain = append(chain, &bucket{
			matches: func(d time.Time) bool { return domain.DateOf(d).Before(weekStart) },
			header:  domain.OrderCardHeader{Main: "Recent", Secondary: "Before this week"},
		})
		if weekStart.Before(yesterday) {
			chain = append(chain, &bucket{
				matches: func(d time.Time) bool {
					d = domain.DateOf(d)
					return !d.Before(weekStart) && d.Before(yesterday)
				},
				header: domain.OrderCardHeader{
					Main:      "This week before yesterday",
					Secondary: dateRange(weekStart, yesterday),
				},
			})
		}
		chain = append(chain, &bucket{
			matches: func(d time.Time) bool { return domain.DateOf(d).Equal(yesterday) },
			header:  domain.OrderCardHeader{Main: "Yesterday", Secondary: utils.FormatAsHeaderDate(yesterday)},
		})
	}

	thisWeek := "This week"
	if includePast {
		thisWeek = "This week starting tomorrow"
	}
	chain = append(chain,
		&bucket{
			matches: func(d time.Time) bool { return domain.DateOf(d).Equal(today) },
			header:  domain.OrderCardHeader{Main: "Today", Secondary: utils.FormatAsHeaderDate(today)},
		},
		&bucket{
			matches: func(d time.Time) bool {
				d = domain.DateOf(d)
				return d.After(today) && d.Before(nextWeekStart)
			},
			header: domain.OrderCardHeader{Main: thisWeek, Secondary: dateRange(tomorrow, sunday)},
		},
		&bucket{
			matches: func(d time.Time) bool { return !domain.DateOf(d).Before(nextWeekStart) },
			header:  domain.OrderCardHeader{Main: "Upcoming", Secondary: "After this week"},
		},
	)
	return chain
}

func dateRange(from, to time.Time) string {
	return utils.FormatAsHeaderDate(from) + " - " + utils.FormatAsHeaderDate(to)
}
