package notifier

import (
	"context"
	"mediboard-service/internal/app/config"
	"mediboard-service/internal/app/contracts"
	"mediboard-service/internal/pkg/dto/responses"
	"mediboard-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ChannelProvider is the part of *amqp.Connection the notifier needs.
type ChannelProvider interface {
	Channel() (*amqp.Channel, error)
}

var (
	notifierInstance contracts.Notifier
	muNotifier       sync.Mutex
)

type rabbitMQNotifier struct {
	channel   *amqp.Channel
	queueName string
	log       *zap.Logger
	mu        sync.Mutex
}

// NewRabbitMQNotifier declares the durable notification queue and returns the
// shared publisher. A failed init does not poison the singleton; the next call
// retries the channel and queue declaration.
func NewRabbitMQNotifier(conn ChannelProvider, internalConfig *config.InternalConfig, logger *zap.Logger) (contracts.Notifier, error) {
	muNotifier.Lock()
	defer muNotifier.Unlock()

	if notifierInstance != nil {
		return notifierInstance, nil
	}

	channel, err := conn.Channel()
	if err != nil {
		return nil, exceptions.ErrQueueDeclare(err)
	}

	_, err = channel.QueueDeclare(
		internalConfig.Notification.QueueName, // name
		true,                                  // durable
		false,                                 // autoDelete
		false,                                 // exclusive
		false,                                 // noWait
		nil,                                   // args
	)
	if err != nil {
		return nil, exceptions.ErrQueueDeclare(err)
	}

	notifierInstance = &rabbitMQNotifier{
		channel:   channel,
		queueName: internalConfig.Notification.QueueName,
		log:       logger,
	}
	return notifierInstance, nil
}

func (n *rabbitMQNotifier) Publish(ctx context.Context, notification responses.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	err = n.channel.PublishWithContext(ctx,
		"",          // exchange
		n.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         payload,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return exceptions.ErrQueuePublish(err)
	}
	return nil
}
