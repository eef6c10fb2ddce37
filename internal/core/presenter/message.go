package presenter

import "fmt"

// Message is the text of a confirmation dialog.
type Message struct {
	Caption    string `json:"caption"`
	OkText     string `json:"ok_text"`
	CancelText string `json:"cancel_text"`
	Message    string `json:"message"`
}

var (
	UnsavedChanges = Message{
		Caption:    "Unsaved Changes",
		OkText:     "Discard",
		CancelText: "Continue Editing",
		Message:    "There are unsaved modifications to the %s. Discard changes?",
	}
	ConfirmDelete = Message{
		Caption:    "Confirm Delete",
		OkText:     "Delete",
		CancelText: "Cancel",
		Message:    "Are you sure you want to delete the selected Item? This action cannot be undone.",
	}
)

func (m Message) Format(args ...any) Message {
	if len(args) > 0 {
		m.Message = fmt.Sprintf(m.Message, args...)
	}
	return m
}
