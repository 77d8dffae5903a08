package orchestrator

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"google.golang.org/adk/session"
)

// ErrEmptyResult is returned when a run ends without any text from the
// terminal step.
var ErrEmptyResult = errors.New("pipeline produced no result")

// Collect drains a run's events and returns the text of the last final
// response authored by terminal. Every event is passed to observe first, when
// it is set.
func Collect(events iter.Seq2[*session.Event, error], terminal string, observe func(*session.Event)) (string, error) {
	var result string
	for event, err := range events {
		if err != nil {
			return "", fmt.Errorf("pipeline failed: %w", err)
		}
		if event == nil {
			continue
		}
		if observe != nil {
			observe(event)
		}
		if event.Author != terminal || !event.IsFinalResponse() {
			continue
		}
		// the model occasionally answers with a literal None
		if text := EventText(event); text != "" && text != "None" {
			result = text
		}
	}

	if result == "" {
		return "", ErrEmptyResult
	}
	return result, nil
}

// EventText joins the non-thought text parts of an event.
func EventText(event *session.Event) string {
	if event == nil || event.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range event.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return strings.TrimSpace(b.String())
}
