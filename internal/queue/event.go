// Package queue defines message payloads exchanged over the message broker.
package queue

import "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"

// QueueName is the durable queue carrying new-booking events.
const QueueName = "booking.created"

// BookingCreatedEvent is published when the public booking form creates
// a booking. It carries the full booking so downstream consumers can
// notify the studio without querying the primary database.
type BookingCreatedEvent struct {
    Booking   model.Booking `json:"booking"`
    CreatedAt string        `json:"created_at"`
}
