package domain

import "time"

// HistoryItem is one entry of the order audit trail. Entries are only ever appended.
type HistoryItem struct {
	ID            int64       `json:"id"`
	NewState      *OrderState `json:"new_state,omitempty"`
	Message       string      `json:"message"`
	Timestamp     time.Time   `json:"timestamp"`
	CreatedByID   int64       `json:"created_by_id"`
	CreatedByName string      `json:"created_by"`
}

func newHistoryItem(actor *User, message string, state *OrderState, at time.Time) HistoryItem {
	item := HistoryItem{
		NewState:  state,
		Message:   message,
		Timestamp: at,
	}
	if actor != nil {
		item.CreatedByID = actor.ID
		item.CreatedByName = actor.FullName()
	}
	return item
}
