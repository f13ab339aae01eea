package notifier

import (
	"context"
	"fmt"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/exceptions"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// RabbitMQNotifier listens on a topic exchange for payment approvals. Each
// subscription owns a channel and an exclusive auto-deleted queue bound to
// payment.approved.<userID>.
type RabbitMQNotifier struct {
	conn     *amqp.Connection
	exchange string
	log      *zap.Logger
	mu       sync.Mutex
}

var _ contracts.PaymentNotifier = (*RabbitMQNotifier)(nil)

func NewRabbitMQNotifier(conn *amqp.Connection, exchange string, log *zap.Logger) (*RabbitMQNotifier, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	defer ch.Close()

	err = declareExchange(ch, exchange)
	if err != nil {
		return nil, err
	}

	return &RabbitMQNotifier{
		conn:     conn,
		exchange: exchange,
		log:      log,
	}, nil
}

func (n *RabbitMQNotifier) Subscribe(ctx context.Context, userID string) (<-chan struct{}, error) {
	routingKey := fmt.Sprintf(constvars.RabbitMQPaymentApprovedRoutingKeyFormat, userID)
	n.log.Info("rabbitMQNotifier.Subscribe called",
		zap.String(constvars.LoggingExchangeKey, n.exchange),
		zap.String(constvars.LoggingRoutingKey, routingKey),
	)

	ch, err := n.conn.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQSubscribe(err, routingKey)
	}

	queue, err := ch.QueueDeclare(
		"",    // name
		false, // durable
		true,  // autoDelete
		true,  // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		ch.Close()
		return nil, exceptions.ErrRabbitMQSubscribe(err, routingKey)
	}

	err = ch.QueueBind(queue.Name, routingKey, n.exchange, false, nil)
	if err != nil {
		ch.Close()
		return nil, exceptions.ErrRabbitMQSubscribe(err, routingKey)
	}

	deliveries, err := ch.ConsumeWithContext(ctx, queue.Name, "", true, true, false, false, nil)
	if err != nil {
		ch.Close()
		return nil, exceptions.ErrRabbitMQSubscribe(err, routingKey)
	}

	signals := make(chan struct{}, 1)
	go func() {
		defer close(signals)
		defer ch.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-deliveries:
				if !ok {
					n.log.Warn("rabbitMQNotifier.Subscribe deliveries closed",
						zap.String(constvars.LoggingRoutingKey, routingKey),
					)
					return
				}
				// Coalesce bursts: one pending signal is enough to trigger a check.
				select {
				case signals <- struct{}{}:
				default:
				}
			}
		}
	}()

	return signals, nil
}

// Publish announces an approved payment for userID. The backend is the real
// publisher; this is used by operators and integration tests.
func (n *RabbitMQNotifier) Publish(ctx context.Context, userID string) error {
	routingKey := fmt.Sprintf(constvars.RabbitMQPaymentApprovedRoutingKeyFormat, userID)

	n.mu.Lock()
	defer n.mu.Unlock()

	ch, err := n.conn.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err, routingKey)
	}
	defer ch.Close()

	msg := amqp.Publishing{
		ContentType: constvars.MIMEApplicationJSON,
		Body:        []byte(fmt.Sprintf(`{"userId":%q}`, userID)),
	}
	err = ch.PublishWithContext(ctx, n.exchange, routingKey, false, false, msg)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err, routingKey)
	}
	return nil
}

func declareExchange(ch *amqp.Channel, exchange string) error {
	return ch.ExchangeDeclare(
		exchange,           // name
		amqp.ExchangeTopic, // kind
		true,               // durable
		false,              // autoDelete
		false,              // internal
		false,              // noWait
		nil,                // args
	)
}
