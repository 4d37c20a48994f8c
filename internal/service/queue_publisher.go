// Package queue_publisher provides functions to publish domain events
// to RabbitMQ. Errors are logged and returned so callers can ignore
// failures without interrupting the main request flow: a booking must
// succeed even when the broker is down.
package queue_publisher

import (
    "context"
    "encoding/json"
    "log/slog"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"

    q "github.com/francislozanostudio-wq/francis-final-sub001/internal/queue"
)

// PublishBookingCreated publishes a BookingCreatedEvent to the
// booking.created queue. Messages are marked persistent so they survive
// broker restarts.
func PublishBookingCreated(ctx context.Context, event q.BookingCreatedEvent) error {
    conn, err := amqp.Dial(q.BrokerURL())
    if err != nil {
        slog.Warn("rabbitmq: dial failed", "error", err)
        return err
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        slog.Warn("rabbitmq: channel open failed", "error", err)
        return err
    }
    defer func() { _ = ch.Close() }()

    // Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
    if _, err := ch.QueueDeclare(
        q.QueueName, // name
        true,        // durable
        false,       // autoDelete
        false,       // exclusive
        false,       // noWait
        nil,         // args
    ); err != nil {
        slog.Warn("rabbitmq: queue declare failed", "error", err)
        return err
    }

    body, err := json.Marshal(event)
    if err != nil {
        slog.Warn("rabbitmq: marshal event failed", "error", err)
        return err
    }

    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent, // store on disk
        Timestamp:    time.Now().UTC(),
        Body:         body,
    }

    if err := ch.PublishWithContext(ctx,
        "",          // default exchange
        q.QueueName, // routing key = queue name
        false,       // mandatory
        false,       // immediate
        pub,
    ); err != nil {
        slog.Warn("rabbitmq: publish failed", "error", err)
        return err
    }

    return nil
}
