package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var orderColumns = []string{
	"o.id", "o.version", "o.state", "o.due_date", "o.due_time",
	"o.customer_full_name", "o.customer_phone_number", "o.customer_details", "o.paid",
	"l.id", "l.version", "l.name",
}

func (r *Repository) selectOrders() sq.SelectBuilder {
	return r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders o").
		Join("pickup_locations l ON l.id = o.pickup_location_id")
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		order    domain.Order
		location domain.PickupLocation
		dueDate  pgtype.Date
		dueTime  pgtype.Time
	)
	err := row.Scan(
		&order.ID,
		&order.Version,
		&order.State,
		&dueDate,
		&dueTime,
		&order.Customer.FullName,
		&order.Customer.PhoneNumber,
		&order.Customer.Details,
		&order.Paid,
		&location.ID,
		&location.Version,
		&location.Name,
	)
	if err != nil {
		return nil, mapError(err)
	}
	order.DueDate = domain.DateOf(dueDate.Time)
	order.DueTime = domain.TimeOfDay(time.Duration(dueTime.Microseconds) * time.Microsecond)
	order.PickupLocation = &location
	order.Items = make([]*domain.OrderItem, 0)
	order.History = make([]domain.HistoryItem, 0)
	return &order, nil
}

func dueDateValue(d time.Time) pgtype.Date {
	return pgtype.Date{Time: domain.DateOf(d), Valid: true}
}

func dueTimeValue(t domain.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: int64(time.Duration(t) / time.Microsecond), Valid: true}
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	var created *domain.Order
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		sql, args, err := r.db.QueryBuilder.
			Insert("orders").
			Columns("state", "due_date", "due_time",
				"customer_full_name", "customer_phone_number", "customer_details",
				"pickup_location_id", "paid").
			Values(order.State, dueDateValue(order.DueDate), dueTimeValue(order.DueTime),
				order.Customer.FullName, order.Customer.PhoneNumber, order.Customer.Details,
				pickupLocationID(order), order.Paid).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return err
		}

		var id int64
		if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
			return err
		}
		if err := r.insertItems(ctx, tx, id, order.Items); err != nil {
			return err
		}
		if err := r.insertHistory(ctx, tx, id, order.History); err != nil {
			return err
		}

		created, err = r.readOrder(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, mapError(err)
	}
	return created, nil
}

// UpdateOrder replaces the order row and its items and appends the history entries that have no id yet.
func (r *Repository) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	var updated *domain.Order
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.
			Update("orders").
			Set("state", order.State).
			Set("due_date", dueDateValue(order.DueDate)).
			Set("due_time", dueTimeValue(order.DueTime)).
			Set("customer_full_name", order.Customer.FullName).
			Set("customer_phone_number", order.Customer.PhoneNumber).
			Set("customer_details", order.Customer.Details).
			Set("pickup_location_id", pickupLocationID(order)).
			Set("paid", order.Paid)

		if _, err := r.updateVersioned(ctx, tx, "orders", order, statement); err != nil {
			return err
		}

		sql, args, err := r.db.QueryBuilder.
			Delete("order_items").
			Where(sq.Eq{"order_id": order.ID}).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}
		if err := r.insertItems(ctx, tx, order.ID, order.Items); err != nil {
			return err
		}

		fresh := make([]domain.HistoryItem, 0, 1)
		for _, h := range order.History {
			if h.ID == 0 {
				fresh = append(fresh, h)
			}
		}
		if err := r.insertHistory(ctx, tx, order.ID, fresh); err != nil {
			return err
		}

		updated, err = r.readOrder(ctx, tx, order.ID)
		return err
	})
	if err != nil {
		return nil, mapError(err)
	}
	return updated, nil
}

func pickupLocationID(order *domain.Order) any {
	if order.PickupLocation == nil || order.PickupLocation.ID == 0 {
		return nil
	}
	return order.PickupLocation.ID
}

func (r *Repository) insertItems(ctx context.Context, tx pgx.Tx, orderID int64, items []*domain.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	statement := r.db.QueryBuilder.
		Insert("order_items").
		Columns("order_id", "product_id", "quantity", "comment")
	for _, item := range items {
		var productID any
		if item.Product != nil && item.Product.ID != 0 {
			productID = item.Product.ID
		}
		statement = statement.Values(orderID, productID, item.Quantity, item.Comment)
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) insertHistory(ctx context.Context, tx pgx.Tx, orderID int64, history []domain.HistoryItem) error {
	if len(history) == 0 {
		return nil
	}
	statement := r.db.QueryBuilder.
		Insert("history_items").
		Columns("order_id", "new_state", "message", "created_at", "created_by_id")
	for _, h := range history {
		createdBy := pgtype.Int8{Int64: h.CreatedByID, Valid: h.CreatedByID != 0}
		statement = statement.Values(orderID, h.NewState, h.Message, h.Timestamp, createdBy)
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) DeleteOrder(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "orders", id)
}

func (r *Repository) ReadOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return r.readOrder(ctx, r.db, id)
}

func (r *Repository) readOrder(ctx context.Context, q querier, id int64) (*domain.Order, error) {
	sql, args, err := r.selectOrders().
		Where(sq.Eq{"o.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}
	if err := r.loadDetails(ctx, q, []*domain.Order{order}); err != nil {
		return nil, err
	}
	return order, nil
}

func orderFilter(filter string, dueAfter *time.Time) sq.And {
	where := sq.And{anyColumnContains(filter, "o.customer_full_name")}
	if dueAfter != nil {
		where = append(where, sq.Gt{"o.due_date": dueDateValue(*dueAfter)})
	}
	return where
}

func (r *Repository) ListOrders(ctx context.Context, filter string, dueAfter *time.Time,
	page domain.PageRequest) ([]*domain.Order, error) {
	sql, args, err := r.selectOrders().
		Where(orderFilter(filter, dueAfter)).
		OrderBy("o.due_date", "o.due_time", "o.id").
		Offset(page.Offset()).
		Limit(page.Limit()).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryOrders(ctx, sql, args)
}

func (r *Repository) CountOrders(ctx context.Context, filter string, dueAfter *time.Time) (int64, error) {
	return r.count(ctx, "orders o", orderFilter(filter, dueAfter))
}

func (r *Repository) LastCreatedOrder(ctx context.Context) (*domain.Order, error) {
	sql, args, err := r.selectOrders().
		OrderBy("o.id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	orders, err := r.queryOrders(ctx, sql, args)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domain.ErrDataNotFound
	}
	return orders[0], nil
}

func (r *Repository) queryOrders(ctx context.Context, sql string, args []any) ([]*domain.Order, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	if err := r.loadDetails(ctx, r.db, list); err != nil {
		return nil, err
	}
	return list, nil
}

// loadDetails fills the items and history of the orders with one query each.
func (r *Repository) loadDetails(ctx context.Context, q querier, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[int64]*domain.Order, len(orders))
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	if err := r.loadItems(ctx, q, ids, byID); err != nil {
		return err
	}
	return r.loadHistory(ctx, q, ids, byID)
}

func (r *Repository) loadItems(ctx context.Context, q querier, ids []int64, byID map[int64]*domain.Order) error {
	sql, args, err := r.db.QueryBuilder.
		Select("i.order_id", "i.id", "i.quantity", "i.comment", "p.id", "p.version", "p.name", "p.price").
		From("order_items i").
		Join("products p ON p.id = i.product_id").
		Where(sq.Eq{"i.order_id": ids}).
		OrderBy("i.id").
		ToSql()
	if err != nil {
		return err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return mapError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID int64
			item    domain.OrderItem
			product domain.Product
		)
		err := rows.Scan(&orderID, &item.ID, &item.Quantity, &item.Comment,
			&product.ID, &product.Version, &product.Name, &product.Price)
		if err != nil {
			return mapError(err)
		}
		item.Product = &product
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, &item)
		}
	}
	return mapError(rows.Err())
}

func (r *Repository) loadHistory(ctx context.Context, q querier, ids []int64, byID map[int64]*domain.Order) error {
	sql, args, err := r.db.QueryBuilder.
		Select("h.order_id", "h.id", "h.new_state", "h.message", "h.created_at", "h.created_by_id",
			"COALESCE(u.first_name || ' ' || u.last_name, '')").
		From("history_items h").
		LeftJoin("users u ON u.id = h.created_by_id").
		Where(sq.Eq{"h.order_id": ids}).
		OrderBy("h.id").
		ToSql()
	if err != nil {
		return err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return mapError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID   int64
			item      domain.HistoryItem
			createdBy pgtype.Int8
		)
		err := rows.Scan(&orderID, &item.ID, &item.NewState, &item.Message, &item.Timestamp,
			&createdBy, &item.CreatedByName)
		if err != nil {
			return mapError(err)
		}
		item.CreatedByID = createdBy.Int64
		if o, ok := byID[orderID]; ok {
			o.History = append(o.History, item)
		}
	}
	return mapError(rows.Err())
}
