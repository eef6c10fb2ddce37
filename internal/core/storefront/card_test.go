package storefront_test

import (
	"testing"

	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/storefront"
	"github.com/stretchr/testify/assert"
)

func TestNewOrderCard(t *testing.T) {
	store := &domain.PickupLocation{Name: "Store"}
	cardOf := func(due int) storefront.OrderCard {
		o := order(1, day(due), 14)
		o.State = domain.OrderStateReady
		o.Customer.FullName = "Jane Roe"
		o.PickupLocation = store
		return storefront.NewOrderCard(o, nil, now)
	}

	recent := cardOf(13)
	assert.Equal(t, "Store", recent.Place)
	assert.Equal(t, "2:00 PM", recent.Time)
	assert.Empty(t, recent.ShortDay)
	assert.Empty(t, recent.Month)
	assert.Equal(t, "Ready", recent.State)
	assert.Equal(t, "Jane Roe", recent.FullName)

	inWeek := cardOf(16)
	assert.Equal(t, "Store", inWeek.Place)
	assert.Empty(t, inWeek.Time)
	assert.Equal(t, "Sat 16", inWeek.ShortDay)
	assert.Equal(t, "2:00 PM", inWeek.SecondaryTime)

	later := cardOf(25)
	assert.Empty(t, later.Place)
	assert.Equal(t, "Mar 25", later.Month)
	assert.Equal(t, "Monday", later.FullDay)

	header := &domain.OrderCardHeader{Main: "Today"}
	card := storefront.NewOrderCard(order(2, day(14), 9), header, now)
	assert.Same(t, header, card.Header)
}
