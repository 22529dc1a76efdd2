// Package delivery derives the customer-facing delivery status of an
// order from the clock and the order's expected delivery time. It is a
// projection only: nothing here touches persisted state.
package delivery

import (
	"fmt"
	"time"

	"sweet-paradise/models"
)

type Projection struct {
	Label            string  `json:"label"`
	FractionComplete float64 `json:"fractionComplete"`
	Delivered        bool    `json:"delivered"`
}

// Status reports the countdown toward expectedDeliveryAt. Once now
// reaches the deadline the order counts as delivered and stays that way;
// the transition happens exactly at now == expectedDeliveryAt.
// FractionComplete is the elapsed share of the fixed delivery window,
// so a freshly placed order starts near 0 and a delivered one is 1.
func Status(now, expectedDeliveryAt time.Time) Projection {
	remaining := expectedDeliveryAt.Sub(now)
	if remaining <= 0 {
		return Projection{Label: "Delivered", FractionComplete: 1, Delivered: true}
	}

	minutes := int(remaining / time.Minute)
	seconds := int(remaining/time.Second) % 60

	fraction := 1 - remaining.Seconds()/models.DeliveryWindow.Seconds()
	if fraction < 0 {
		fraction = 0
	}

	return Projection{
		Label:            fmt.Sprintf("Delivery in %dm %ds", minutes, seconds),
		FractionComplete: fraction,
	}
}
