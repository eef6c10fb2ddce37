package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/bakery/internal/core/domain"
)

func (r *Repository) DeliveryStats(ctx context.Context, today time.Time) (*domain.DeliveryStats, error) {
	today = domain.DateOf(today)
	tomorrow := today.AddDate(0, 0, 1)

	sql, args, err := r.db.QueryBuilder.
		Select().
		Column(sq.Expr("count(*) FILTER (WHERE due_date = ? AND state = ?)",
			dueDateValue(today), domain.OrderStateDelivered)).
		Column(sq.Expr("count(*) FILTER (WHERE due_date = ? AND state <> ?)",
			dueDateValue(today), domain.OrderStateCancelled)).
		Column(sq.Expr("count(*) FILTER (WHERE due_date = ? AND state <> ?)",
			dueDateValue(tomorrow), domain.OrderStateCancelled)).
		Column(sq.Expr("count(*) FILTER (WHERE due_date = ? AND state = ?)",
			dueDateValue(today), domain.OrderStateProblem)).
		Column(sq.Expr("count(*) FILTER (WHERE state = ?)", domain.OrderStateNew)).
		From("orders").
		ToSql()
	if err != nil {
		return nil, err
	}

	stats := domain.DeliveryStats{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&stats.DeliveredToday,
		&stats.DueToday,
		&stats.DueTomorrow,
		&stats.NotAvailableToday,
		&stats.NewOrders,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &stats, nil
}

// DeliveriesPerDay counts delivered orders per day of the month, index 0 being the first.
func (r *Repository) DeliveriesPerDay(ctx context.Context, year int, month time.Month) ([]int, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	days := to.AddDate(0, 0, -1).Day()

	counts, err := r.deliveredPer(ctx, "day", from, to, "count(*)")
	if err != nil {
		return nil, err
	}
	return intBuckets(counts, days), nil
}

// DeliveriesPerMonth counts delivered orders per month of the year, index 0 being January.
func (r *Repository) DeliveriesPerMonth(ctx context.Context, year int) ([]int, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	counts, err := r.deliveredPer(ctx, "month", from, from.AddDate(1, 0, 0), "count(*)")
	if err != nil {
		return nil, err
	}
	return intBuckets(counts, 12), nil
}

// SalesPerMonth sums the price of delivered items per month in cents.
func (r *Repository) SalesPerMonth(ctx context.Context, year int) ([]int64, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	sums, err := r.deliveredPer(ctx, "month", from, from.AddDate(1, 0, 0),
		"COALESCE(sum(i.quantity * p.price), 0)::bigint",
		"JOIN order_items i ON i.order_id = o.id", "JOIN products p ON p.id = i.product_id")
	if err != nil {
		return nil, err
	}

	sales := make([]int64, 12)
	for month, sum := range sums {
		if month >= 1 && month <= 12 {
			sales[month-1] = sum
		}
	}
	return sales, nil
}

func (r *Repository) ProductDeliveries(ctx context.Context, year int,
	month time.Month) ([]domain.ProductDeliveries, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	sql, args, err := r.db.QueryBuilder.
		Select("p.name", "sum(i.quantity)").
		From("orders o").
		Join("order_items i ON i.order_id = o.id").
		Join("products p ON p.id = i.product_id").
		Where(sq.Eq{"o.state": domain.OrderStateDelivered}).
		Where(sq.GtOrEq{"o.due_date": dueDateValue(from)}).
		Where(sq.Lt{"o.due_date": dueDateValue(from.AddDate(0, 1, 0))}).
		GroupBy("p.name").
		OrderBy("p.name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	list := make([]domain.ProductDeliveries, 0)
	for rows.Next() {
		pd := domain.ProductDeliveries{}
		if err := rows.Scan(&pd.ProductName, &pd.Quantity); err != nil {
			return nil, mapError(err)
		}
		list = append(list, pd)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return list, nil
}

// deliveredPer aggregates delivered orders due in [from, to) grouped by a date field of the due date.
func (r *Repository) deliveredPer(ctx context.Context, field string, from, to time.Time, aggregate string,
	joins ...string) (map[int]int64, error) {
	unit := "extract(" + field + " FROM o.due_date)::int"
	statement := r.db.QueryBuilder.
		Select(unit, aggregate).
		From("orders o")
	for _, j := range joins {
		statement = statement.JoinClause(j)
	}
	sql, args, err := statement.
		Where(sq.Eq{"o.state": domain.OrderStateDelivered}).
		Where(sq.GtOrEq{"o.due_date": dueDateValue(from)}).
		Where(sq.Lt{"o.due_date": dueDateValue(to)}).
		GroupBy(unit).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	result := make(map[int]int64)
	for rows.Next() {
		var (
			key   int
			value int64
		)
		if err := rows.Scan(&key, &value); err != nil {
			return nil, mapError(err)
		}
		result[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

// intBuckets spreads 1-based keyed counts into a zero filled slice of size n.
func intBuckets(counts map[int]int64, n int) []int {
	buckets := make([]int, n)
	for k, v := range counts {
		if k >= 1 && k <= n {
			buckets[k-1] = int(v)
		}
	}
	return buckets
}
