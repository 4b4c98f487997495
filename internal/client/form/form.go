// Package form validates a letter composition before it is submitted.
package form

import (
	"errors"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	DefaultTime   = "00:00"
	DefaultSender = "Anonymous"
	DefaultTitle  = "Untitled letter"
)

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

type Rule string

const (
	RuleMissingFields Rule = "missing_fields"
	RuleInvalidEmail  Rule = "invalid_email"
	RuleInvalidDate   Rule = "invalid_date"
	RulePastDelivery  Rule = "past_delivery"
)

var ruleMessages = map[Rule]string{
	RuleMissingFields: "Letter content, recipient email and delivery date are required.",
	RuleInvalidEmail:  "Recipient email format is not valid.",
	RuleInvalidDate:   "Delivery date or time could not be read. Use YYYY-MM-DD and HH:MM.",
	RulePastDelivery:  "Delivery date and time must be in the future.",
}

// ValidationError is a user-correctable input problem.
type ValidationError struct {
	Rule Rule
	Err  error
}

func (e *ValidationError) Error() string {
	return ruleMessages[e.Rule]
}

// Title is the heading shown with the notice.
func (e *ValidationError) Title() string {
	if e.Rule == RulePastDelivery {
		return "Invalid delivery time"
	}
	return "Validation failed"
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Input is the raw form as typed by the user.
type Input struct {
	Title          string
	Content        string
	RecipientEmail string
	SenderName     string
	DeliveryDate   string
	DeliveryTime   string
}

// Draft is a validated letter ready to submit.
type Draft struct {
	Title             string
	Content           string
	RecipientEmail    string
	SenderName        string
	DeliveryTimestamp int64
	DeliveryAt        time.Time
}

// Validate checks in against the rules in order and returns the first
// failure. Date and time are read in loc; delivery must be after now.
func Validate(in Input, now time.Time, loc *time.Location) (Draft, error) {
	content := strings.TrimSpace(in.Content)
	email := strings.TrimSpace(in.RecipientEmail)
	date := strings.TrimSpace(in.DeliveryDate)

	if content == "" || email == "" || date == "" {
		return Draft{}, &ValidationError{Rule: RuleMissingFields}
	}

	if !strings.Contains(email, "@") {
		return Draft{}, &ValidationError{Rule: RuleInvalidEmail}
	}

	clock := strings.TrimSpace(in.DeliveryTime)
	if clock == "" {
		clock = DefaultTime
	}

	if loc == nil {
		loc = time.Local
	}
	at, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+clock, loc)
	if err != nil {
		return Draft{}, &ValidationError{Rule: RuleInvalidDate, Err: err}
	}

	if !at.After(now) {
		return Draft{}, &ValidationError{Rule: RulePastDelivery}
	}

	d := Draft{
		Title:             strings.TrimSpace(in.Title),
		Content:           content,
		RecipientEmail:    email,
		SenderName:        strings.TrimSpace(in.SenderName),
		DeliveryTimestamp: at.UnixMilli(),
		DeliveryAt:        at,
	}
	if d.Title == "" {
		d.Title = DefaultTitle
	}
	if d.SenderName == "" {
		d.SenderName = DefaultSender
	}
	return d, nil
}
