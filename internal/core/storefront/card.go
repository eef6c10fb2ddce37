package storefront

import (
	"time"

	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/utils"
)

// OrderCard holds the display fields of an order in the storefront list.
// Orders due today or yesterday show place and time, orders later this week add the day,
// all others show only the date.
type OrderCard struct {
	ID            int64                   `json:"id"`
	Header        *domain.OrderCardHeader `json:"header,omitempty"`
	State         string                  `json:"state"`
	FullName      string                  `json:"full_name"`
	Place         string                  `json:"place,omitempty"`
	Time          string                  `json:"time,omitempty"`
	ShortDay      string                  `json:"short_day,omitempty"`
	SecondaryTime string                  `json:"secondary_time,omitempty"`
	Month         string                  `json:"month,omitempty"`
	FullDay       string                  `json:"full_day,omitempty"`
	Items         []*domain.OrderItem     `json:"items"`
}

func NewOrderCard(order *domain.Order, header *domain.OrderCardHeader, now time.Time) OrderCard {
	today := domain.DateOf(now)
	due := domain.DateOf(order.DueDate)
	recent := due.Equal(today) || due.Equal(today.AddDate(0, 0, -1))
	inWeek := !recent && domain.WeekStart(due).Equal(domain.WeekStart(today))

	card := OrderCard{
		ID:       order.ID,
		Header:   header,
		State:    order.State.DisplayName(),
		FullName: order.Customer.FullName,
		Items:    order.Items,
	}
	if recent || inWeek {
		if order.PickupLocation != nil {
			card.Place = order.PickupLocation.Name
		}
	}
	switch {
	case recent:
		card.Time = utils.FormatAsHour(order.DueTime)
	case inWeek:
		card.ShortDay = utils.FormatAsShortDay(due)
		card.SecondaryTime = utils.FormatAsHour(order.DueTime)
	default:
		card.Month = utils.FormatAsMonthAndDay(due)
		card.FullDay = utils.WeekDayFullName(due)
	}
	return card
}
