package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"jobswipe/internal/config"
	"jobswipe/internal/domain/event"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher pushes domain events to the message broker.
type Publisher interface {
	Publish(ctx context.Context, evt event.Event) error
}

const defaultDialTimeout = 2 * time.Second

type rabbit struct {
	url         string
	exchange    string
	dialTimeout time.Duration
	log         *zap.Logger
}

// New returns a RabbitMQ publisher, or a Dummy when no broker is configured.
func New(cfg config.RabbitMQConfig, log *zap.Logger) Publisher {
	if log == nil {
		log = zap.NewNop()
	}
	if !cfg.Enabled() {
		log.Info("rabbitmq not configured, events are not published")
		return &Dummy{}
	}
	exchange := cfg.Exchange
	if exchange == "" {
		exchange = "jobswipe.events"
	}
	dialTimeout := cfg.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = defaultDialTimeout
	}
	return &rabbit{url: cfg.URL, exchange: exchange, dialTimeout: dialTimeout, log: log}
}

// Encode renders the wire body of an event.
func Encode(evt event.Event) ([]byte, error) {
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now().UTC()
	}
	return json.Marshal(evt)
}

// Publish sends evt to the topic exchange with the event type as routing key.
func (r *rabbit) Publish(ctx context.Context, evt event.Event) error {
	body, err := Encode(evt)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	conn, err := amqp.DialConfig(r.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      r.dialer(ctx),
	})
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(r.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	err = ch.PublishWithContext(ctx, r.exchange, evt.Type, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    evt.OccurredAt,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", evt.Type, err)
	}

	r.log.Debug("event published", zap.String("type", evt.Type), zap.String("exchange", r.exchange))
	return nil
}

// dialer bounds the TCP connect and the AMQP handshake by dialTimeout and by
// ctx. amqp clears the deadline once the connection is open.
func (r *rabbit) dialer(ctx context.Context) func(network, addr string) (net.Conn, error) {
	return func(network, addr string) (net.Conn, error) {
		d := net.Dialer{Timeout: r.dialTimeout}
		conn, err := d.DialContext(ctx, network, addr)
		if err != nil {
			return nil, err
		}
		deadline := time.Now().Add(r.dialTimeout)
		if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
			deadline = dl
		}
		if err := conn.SetDeadline(deadline); err != nil {
			_ = conn.Close()
			return nil, err
		}
		return conn, nil
	}
}

type Dummy struct{}

func (*Dummy) Publish(context.Context, event.Event) error {
	return nil
}
