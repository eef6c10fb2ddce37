// Package dashboard turns delivery statistics into the counter tiles of the dashboard.
package dashboard

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/MikeRez0/bakery/internal/core/domain"
)

const (
	nextDeliveryPattern = "Next Delivery %s"
	lastOrderPattern    = "Last %d%s ago"
	lastOrderJustAdded  = "Last just added"
)

// TodaysOrdersCountData counts the orders still to deliver today.
// orders must be sorted by due date and time; the first READY order after now becomes the subtitle.
func TodaysOrdersCountData(stats domain.DeliveryStats, orders iter.Seq[*domain.Order],
	now time.Time) domain.OrdersCountData {
	overall := stats.DueToday
	data := domain.OrdersCountData{
		Title:   "Remaining Today",
		Count:   stats.DueToday - stats.DeliveredToday,
		Overall: &overall,
	}

	today := domain.DateOf(now)
	clock := domain.TimeOfDayOf(now)
	for order := range orders {
		if !isNextToDeliver(order, today, clock) {
			continue
		}
		due := domain.DateOf(order.DueDate)
		if due.Equal(today) {
			data.Subtitle = fmt.Sprintf(nextDeliveryPattern, order.DueTime)
		} else {
			data.Subtitle = fmt.Sprintf(nextDeliveryPattern, fmt.Sprintf("%d/%d", due.Month(), due.Day()))
		}
		break
	}
	return data
}

func isNextToDeliver(order *domain.Order, today time.Time, clock domain.TimeOfDay) bool {
	if order.State != domain.OrderStateReady {
		return false
	}
	due := domain.DateOf(order.DueDate)
	return (due.Equal(today) && order.DueTime > clock) || due.After(today)
}

// TomorrowOrdersCountData counts tomorrow's orders with the earliest due time as subtitle.
func TomorrowOrdersCountData(stats domain.DeliveryStats, orders iter.Seq[*domain.Order],
	now time.Time) domain.OrdersCountData {
	data := domain.OrdersCountData{
		Title: "Tomorrow",
		Count: stats.DueTomorrow,
	}

	tomorrow := domain.DateOf(now).AddDate(0, 0, 1)
	var (
		first domain.TimeOfDay
		found bool
	)
	for order := range orders {
		due := domain.DateOf(order.DueDate)
		if due.Before(tomorrow) {
			continue
		}
		if due.After(tomorrow) {
			break
		}
		if !found || order.DueTime < first {
			first = order.DueTime
			found = true
		}
	}
	if found {
		data.Subtitle = "First delivery " + first.String()
	}
	return data
}

// NewOrdersCountData counts new orders and tells how long ago the last one was placed.
func NewOrdersCountData(stats domain.DeliveryStats, lastOrder *domain.Order, now time.Time) domain.OrdersCountData {
	data := domain.OrdersCountData{
		Title: "New",
		Count: stats.NewOrders,
	}
	if lastOrder != nil && len(lastOrder.History) > 0 {
		data.Subtitle = lastOrderSubtitle(now.Sub(lastOrder.PlacedAt()))
	}
	return data
}

func lastOrderSubtitle(elapsed time.Duration) string {
	if days := int64(elapsed / (24 * time.Hour)); days > 0 {
		return fmt.Sprintf(lastOrderPattern, days, "d")
	}
	if hours := int64(elapsed / time.Hour); hours > 0 {
		return fmt.Sprintf(lastOrderPattern, hours, "h")
	}
	if minutes := int64(elapsed / time.Minute); minutes > 0 {
		return fmt.Sprintf(lastOrderPattern, minutes, "m")
	}
	return lastOrderJustAdded
}

func NotAvailableOrdersCountData(stats domain.DeliveryStats) domain.OrdersCountData {
	return domain.OrdersCountData{
		Title:    "Not Available",
		Subtitle: "Delivery tomorrow",
		Count:    stats.NotAvailableToday,
	}
}

// Counters builds the four counter tiles in display order.
func Counters(stats domain.DeliveryStats, orders []*domain.Order, lastOrder *domain.Order,
	now time.Time) []domain.OrdersCountData {
	return []domain.OrdersCountData{
		TodaysOrdersCountData(stats, slices.Values(orders), now),
		NotAvailableOrdersCountData(stats),
		NewOrdersCountData(stats, lastOrder, now),
		TomorrowOrdersCountData(stats, slices.Values(orders), now),
	}
}
