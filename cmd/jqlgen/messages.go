package main

import (
	"time"

	"jqlgen/pkg/jql"
)

// completeMsg is returned by the tea.Cmd that calls the generator. The id
// ties the response to the request that issued it; the model ignores any
// completion that is not the latest issued.
type completeMsg struct {
	id       uint64
	result   jql.Result
	err      error
	duration time.Duration
}

// copiedMsg clears the "copied" status flash after a short delay.
type copiedMsg struct{}

// tickMsg drives the processing spinner animation.
type tickMsg time.Time
