package form

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func validInput() Input {
	return Input{
		Title:          "  Hello  ",
		Content:        "  Dear future me  ",
		RecipientEmail: " me@example.com ",
		SenderName:     " Past me ",
		DeliveryDate:   "2030-01-02",
		DeliveryTime:   "09:30",
	}
}

func ruleOf(t *testing.T, err error) Rule {
	t.Helper()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected *ValidationError, got %v", err)
	return ve.Rule
}

func TestValidate_OK(t *testing.T) {
	d, err := Validate(validInput(), now, time.UTC)
	require.NoError(t, err)

	want := time.Date(2030, 1, 2, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, Draft{
		Title:             "Hello",
		Content:           "Dear future me",
		RecipientEmail:    "me@example.com",
		SenderName:        "Past me",
		DeliveryTimestamp: want.UnixMilli(),
		DeliveryAt:        want,
	}, d)
}

func TestValidate_Defaults(t *testing.T) {
	in := validInput()
	in.Title = "   "
	in.SenderName = ""
	in.DeliveryTime = ""

	d, err := Validate(in, now, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, DefaultTitle, d.Title)
	assert.Equal(t, DefaultSender, d.SenderName)
	assert.Equal(t, time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC).UnixMilli(), d.DeliveryTimestamp)
}

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
		want   Rule
	}{
		{"blank content", func(in *Input) { in.Content = "   " }, RuleMissingFields},
		{"blank email", func(in *Input) { in.RecipientEmail = "" }, RuleMissingFields},
		{"blank date", func(in *Input) { in.DeliveryDate = "" }, RuleMissingFields},
		{"missing fields wins over bad email", func(in *Input) { in.Content = ""; in.RecipientEmail = "nope" }, RuleMissingFields},
		{"email without at", func(in *Input) { in.RecipientEmail = "me.example.com" }, RuleInvalidEmail},
		{"bad email wins over past date", func(in *Input) { in.RecipientEmail = "x"; in.DeliveryDate = "2000-01-01" }, RuleInvalidEmail},
		{"unparseable date", func(in *Input) { in.DeliveryDate = "02/01/2030" }, RuleInvalidDate},
		{"unparseable time", func(in *Input) { in.DeliveryTime = "9am" }, RuleInvalidDate},
		{"past date", func(in *Input) { in.DeliveryDate = "2020-01-01" }, RulePastDelivery},
		{"exactly now", func(in *Input) { in.DeliveryDate = "2026-03-10"; in.DeliveryTime = "12:00" }, RulePastDelivery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := Validate(in, now, time.UTC)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tt.want, ruleOf(t, err))
		})
	}
}

func TestValidate_OneMinuteAheadIsAccepted(t *testing.T) {
	in := validInput()
	in.DeliveryDate = "2026-03-10"
	in.DeliveryTime = "12:01"

	_, err := Validate(in, now, time.UTC)
	require.NoError(t, err)
}

func TestValidate_UsesLocation(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	in := validInput()
	in.DeliveryDate = "2026-03-10"
	in.DeliveryTime = "18:30"

	// 18:30 WIB is 11:30 UTC, before now.
	_, err := Validate(in, now, jakarta)
	assert.Equal(t, RulePastDelivery, ruleOf(t, err))

	_, err = Validate(in, now, time.UTC)
	require.NoError(t, err)
}

func TestValidationError_Messages(t *testing.T) {
	inner := errors.New("parse")
	e := &ValidationError{Rule: RuleInvalidDate, Err: inner}

	assert.ErrorIs(t, e, inner)
	assert.NotEmpty(t, e.Error())
	assert.Equal(t, "Validation failed", e.Title())
	assert.Equal(t, "Invalid delivery time", (&ValidationError{Rule: RulePastDelivery}).Title())
}
