package tui

import (
	"errors"
	"time"
)

// Message types for Bubble Tea update loop.

// scrollFrameMsg advances the scroll animation with the given id.
type scrollFrameMsg struct {
	id int
	at time.Time
}

// submissionDoneMsg carries the outcome of a contact POST.
type submissionDoneMsg struct{ err error }

// statusMsg shows a transient footer message.
type statusMsg struct{ text string }

// clearStatusMsg clears the footer message if it is still the one with id.
type clearStatusMsg struct{ id int }

// ErrNoSubmitter is reported when the form is sent without a configured endpoint.
var ErrNoSubmitter = errors.New("no contact endpoint configured")
