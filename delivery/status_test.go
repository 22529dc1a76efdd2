package delivery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sweet-paradise/models"
)

func TestStatusCountdownLabel(t *testing.T) {
	expected := time.Date(2025, 3, 1, 12, 10, 0, 0, time.UTC)

	tests := []struct {
		name  string
		now   time.Time
		label string
	}{
		{"full window remaining", expected.Add(-models.DeliveryWindow), "Delivery in 10m 0s"},
		{"partway through", expected.Add(-3*time.Minute - 25*time.Second), "Delivery in 3m 25s"},
		{"under a minute", expected.Add(-42 * time.Second), "Delivery in 0m 42s"},
		{"one second left", expected.Add(-time.Second), "Delivery in 0m 1s"},
		{"sub-second remainder floors", expected.Add(-1500 * time.Millisecond), "Delivery in 0m 1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Status(tt.now, expected)
			assert.Equal(t, tt.label, p.Label)
			assert.False(t, p.Delivered)
		})
	}
}

func TestStatusDeliveredAtDeadlineExactly(t *testing.T) {
	expected := time.Date(2025, 3, 1, 12, 10, 0, 0, time.UTC)

	p := Status(expected, expected)
	assert.Equal(t, "Delivered", p.Label)
	assert.Equal(t, 1.0, p.FractionComplete)
	assert.True(t, p.Delivered)
}

func TestStatusNeverOscillatesBack(t *testing.T) {
	expected := time.Date(2025, 3, 1, 12, 10, 0, 0, time.UTC)

	for _, after := range []time.Duration{0, time.Second, time.Minute, 24 * time.Hour} {
		p := Status(expected.Add(after), expected)
		assert.True(t, p.Delivered, "after %v", after)
		assert.Equal(t, 1.0, p.FractionComplete)
	}
}

func TestStatusFractionProportional(t *testing.T) {
	expected := time.Date(2025, 3, 1, 12, 10, 0, 0, time.UTC)

	start := Status(expected.Add(-models.DeliveryWindow), expected)
	assert.Equal(t, 0.0, start.FractionComplete)

	halfway := Status(expected.Add(-models.DeliveryWindow/2), expected)
	assert.InDelta(t, 0.5, halfway.FractionComplete, 1e-9)

	almost := Status(expected.Add(-time.Second), expected)
	assert.Greater(t, almost.FractionComplete, 0.99)
	assert.Less(t, almost.FractionComplete, 1.0)
}

func TestStatusFractionClampedBeforeWindow(t *testing.T) {
	// An order fetched before its clock skewed createdAt would put "now"
	// ahead of the window start; the fraction must not go negative.
	expected := time.Date(2025, 3, 1, 12, 10, 0, 0, time.UTC)

	p := Status(expected.Add(-models.DeliveryWindow-30*time.Second), expected)
	assert.Equal(t, 0.0, p.FractionComplete)
}

func TestStatusTransitionHappensOnce(t *testing.T) {
	expected := time.Date(2025, 3, 1, 12, 10, 0, 0, time.UTC)

	transitions := 0
	prev := false
	for now := expected.Add(-5 * time.Second); !now.After(expected.Add(5 * time.Second)); now = now.Add(time.Second) {
		delivered := Status(now, expected).Delivered
		if delivered != prev {
			transitions++
			prev = delivered
		}
	}
	assert.Equal(t, 1, transitions)
}
