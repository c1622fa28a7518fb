package messaging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"meeting-room-reservation/internal/pkg/config"
	"meeting-room-reservation/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Message is one outbound event. RoutingKey selects subscribers on the topic exchange.
type Message struct {
	ID         string
	RoutingKey string
	Body       []byte
	Timestamp  time.Time
}

// AMQPPublisher publishes to a durable topic exchange. The channel is reopened lazily
// after the broker drops it.
type AMQPPublisher struct {
	url      string
	exchange string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(cfg config.BrokerConfig) *AMQPPublisher {
	return &AMQPPublisher{url: cfg.URL, exchange: cfg.Exchange}
}

func (p *AMQPPublisher) Connect() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.connectLocked()
}

func (p *AMQPPublisher) connectLocked() error {
	if p.ch != nil && !p.ch.IsClosed() {
		return nil
	}
	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.url)
		if err != nil {
			return errs.Wrap(err, "failed to connect to broker")
		}
		p.conn = conn
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return errs.Wrap(err, "failed to open broker channel")
	}

	err = ch.ExchangeDeclare(
		p.exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		return errs.Wrapf(err, "failed to declare exchange %s", p.exchange)
	}

	p.ch = ch
	slog.Info("Broker channel opened", "exchange", p.exchange)
	return nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, msg Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.connectLocked(); err != nil {
		return err
	}

	err := p.ch.PublishWithContext(
		ctx,
		p.exchange,
		msg.RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    msg.ID,
			Timestamp:    msg.Timestamp,
			Body:         msg.Body,
		},
	)
	if err != nil {
		return errs.Wrapf(err, "failed to publish %s", msg.RoutingKey)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		if err != nil && !errs.Is(err, amqp.ErrClosed) {
			return errs.Wrap(err, "failed to close broker connection")
		}
	}
	return nil
}

// LogPublisher writes events to the log instead of a broker. Used when the broker
// is disabled.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, msg Message) error {
	p.logger.InfoContext(ctx, "reservation event",
		"message_id", msg.ID,
		"routing_key", msg.RoutingKey,
		"body", string(msg.Body),
	)
	return nil
}
