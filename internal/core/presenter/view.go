package presenter

// Notifier shows operation failures to the user.
type Notifier interface {
	ShowError(msg ErrorMessage)
}

// EntityView is the editing surface an EntityPresenter drives.
type EntityView[T any] interface {
	Notifier
	// Confirm asks the user c.Message and eventually calls c.Confirm or c.Cancel.
	Confirm(c *Confirmation)
	IsDirty() bool
	// Write applies the edited values to entity and validates them.
	Write(entity T) error
	Clear()
}
