package presenter

// Confirmation is a pending yes/no question. Only the first of Confirm, Cancel or Dispose has an effect.
type Confirmation struct {
	Message   Message
	onConfirm func()
	onCancel  func()
	done      bool
}

func newConfirmation(msg Message, onConfirm func(), onCancel func()) *Confirmation {
	return &Confirmation{Message: msg, onConfirm: onConfirm, onCancel: onCancel}
}

func (c *Confirmation) Confirm() {
	if c.done {
		return
	}
	c.done = true
	if c.onConfirm != nil {
		c.onConfirm()
	}
}

func (c *Confirmation) Cancel() {
	if c.done {
		return
	}
	c.done = true
	if c.onCancel != nil {
		c.onCancel()
	}
}

// Dispose drops the question without running any callback.
func (c *Confirmation) Dispose() {
	c.done = true
}

func (c *Confirmation) Pending() bool {
	return !c.done
}
