// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

// explainCommand is the CLI invocation that renders a catalog entry.
const explainCommand = "csvcheck explain"

type (
	// ActionableError is a failure the user can act on: what csvcheck was
	// doing, which file was involved, how to fix it, and which catalog
	// entry explains it.
	//
	//	err := issue.NewErrorContext().
	//		WithOperation("validate data file").
	//		WithResource("_data/store-data.csv").
	//		WithIssue(issue.InvalidEncodingId).
	//		Wrap(cause).
	//		BuildError()
	ActionableError struct {
		// Operation is a verb phrase such as "load configuration".
		Operation string
		Resource  string
		// Issue is the catalog entry shown as an explain hint (optional).
		Issue       Id
		Suggestions []string
		Cause       error
	}

	// ErrorContext accumulates the parts of an ActionableError.
	ErrorContext struct {
		err ActionableError
	}
)

// NewErrorContext starts an empty ErrorContext.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// Error returns "failed to <operation>[: <resource>][: <cause>]".
func (e *ActionableError) Error() string {
	var msg strings.Builder

	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)
	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Resource)
	}
	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}

	return msg.String()
}

func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// ExplainHint returns the command that documents this failure, or "" when
// the error names no known catalog entry.
func (e *ActionableError) ExplainHint() string {
	if e.Issue == "" || Get(e.Issue) == nil {
		return ""
	}
	return fmt.Sprintf("Run '%s %s' for details", explainCommand, e.Issue)
}

// Format renders the message followed by one bullet per suggestion and the
// explain hint. With verbose set, the unwrapped cause chain is appended.
//
//	failed to <operation>: <resource>: <cause>
//
//	  • <suggestion>
//	  • Run 'csvcheck explain <issue>' for details
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder
	msg.WriteString(e.Error())

	bullets := e.Suggestions
	if hint := e.ExplainHint(); hint != "" {
		bullets = append(bullets[:len(bullets):len(bullets)], hint)
	}
	if len(bullets) > 0 {
		msg.WriteString("\n")
		for _, b := range bullets {
			msg.WriteString("\n  • ")
			msg.WriteString(b)
		}
	}

	if verbose && e.Cause != nil {
		msg.WriteString("\n\nError chain:")
		for depth, err := 1, e.Cause; err != nil; depth, err = depth+1, errors.Unwrap(err) {
			fmt.Fprintf(&msg, "\n  %d. %s", depth, err.Error())
		}
	}

	return msg.String()
}

func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.err.Operation = op
	return c
}

func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.err.Resource = res
	return c
}

// WithIssue links the error to a catalog entry.
func (c *ErrorContext) WithIssue(id Id) *ErrorContext {
	c.err.Issue = id
	return c
}

// WithSuggestion appends one or more fixes, in display order.
func (c *ErrorContext) WithSuggestion(sugs ...string) *ErrorContext {
	c.err.Suggestions = append(c.err.Suggestions, sugs...)
	return c
}

func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.err.Cause = err
	return c
}

// BuildError returns the accumulated *ActionableError, or nil when no
// operation was set.
func (c *ErrorContext) BuildError() error {
	if c.err.Operation == "" {
		return nil
	}
	built := c.err
	built.Suggestions = append([]string(nil), c.err.Suggestions...)
	return &built
}
