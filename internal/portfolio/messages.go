package portfolio

// Msg is an event delivered by the host. Each one is reduced atomically by Update.
type Msg interface{ msg() }

// ResizeMsg reports a new viewport size in pixels.
type ResizeMsg struct{ Width, Height float64 }

// NavigateMsg selects a tab.
type NavigateMsg struct{ Tab Tab }

// HoverNavMsg is pointer entry on a tab.
type HoverNavMsg struct{ Tab Tab }

// LeaveNavMsg is pointer exit from the hovered tab.
type LeaveNavMsg struct{}

// HoverProjectMsg is pointer entry on a tile.
type HoverProjectMsg struct{ Project Project }

// LeaveProjectMsg is pointer exit from the hovered tile.
type LeaveProjectMsg struct{}

// ClickProjectMsg is a click on a tile.
type ClickProjectMsg struct{ Project Project }

// UpdateFieldMsg carries the full new value of a form field.
type UpdateFieldMsg struct {
	Field Field
	Value string
}

// Submit button gestures.
type (
	SubmitHoverMsg   struct{}
	SubmitLeaveMsg   struct{}
	SubmitPressMsg   struct{}
	SubmitReleaseMsg struct{}
)

// SubmissionResultMsg is the outcome of a SubmitEffect. It never changes state.
type SubmissionResultMsg struct{ Err error }

func (ResizeMsg) msg()           {}
func (NavigateMsg) msg()         {}
func (HoverNavMsg) msg()         {}
func (LeaveNavMsg) msg()         {}
func (HoverProjectMsg) msg()     {}
func (LeaveProjectMsg) msg()     {}
func (ClickProjectMsg) msg()     {}
func (UpdateFieldMsg) msg()      {}
func (SubmitHoverMsg) msg()      {}
func (SubmitLeaveMsg) msg()      {}
func (SubmitPressMsg) msg()      {}
func (SubmitReleaseMsg) msg()    {}
func (SubmissionResultMsg) msg() {}
