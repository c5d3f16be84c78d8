package component

// Trigger runs command text when the player enters, leaves or uses its area.
type Trigger struct {
	PrevInside bool
	Inside     bool
	OnEnter    string
	OnExit     string
	OnUse      string
}

// Entered reports a false to true transition this tick.
func (t *Trigger) Entered() bool {
	return t.Inside && !t.PrevInside
}

// Exited reports a true to false transition this tick.
func (t *Trigger) Exited() bool {
	return !t.Inside && t.PrevInside
}

var TriggerComponent = NewComponent[Trigger]()
