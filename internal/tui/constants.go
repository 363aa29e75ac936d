package tui

import "time"

// Package-level constants to avoid magic numbers and improve readability.
const (
	// defaultCellWidth and defaultCellHeight map one terminal cell to CSS pixels.
	defaultCellWidth  = 8.0
	defaultCellHeight = 16.0

	defaultSubmitTimeout = 10 * time.Second

	// scrollFPS drives the eased scroll animation.
	scrollFPS           = 60
	scrollFrameInterval = time.Second / scrollFPS

	// footerLines is the status/help line pinned under the viewport.
	footerLines = 1
	// statusTTL is how long a transient footer message stays visible.
	statusTTL = 2 * time.Second

	// maxGapRows caps vertical gaps so large widths do not push content off screen.
	maxGapRows = 3
	// maxPadRows caps vertical padding for the same reason.
	maxPadRows = 1

	// inputChrome is border plus inner padding columns around a text input.
	inputChrome = 4
	// messageRows is the visible height of the message textarea.
	messageRows = 4
	// maxMessageLength bounds the message textarea.
	maxMessageLength = 5000
	// maxFieldLength bounds single-line inputs.
	maxFieldLength = 254
)
