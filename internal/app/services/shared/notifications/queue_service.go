package notifications

import (
	"context"
	"hospadmin-service/internal/app/contracts"
	"hospadmin-service/internal/pkg/constvars"
	"hospadmin-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Service manages the RabbitMQ queue carrying discharge notices between the
// episode service and the mail worker.
type Service struct {
	ch  *amqp.Channel
	log *zap.Logger
	mu  sync.Mutex
}

// NewService declares the durable discharge queues and sets QoS.
func NewService(conn *amqp.Connection, log *zap.Logger, prefetch int) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		constvars.DischargeQueueName, // name
		true,                         // durable
		false,                        // autoDelete
		false,                        // exclusive
		false,                        // noWait
		nil,                          // args
	)
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		constvars.DischargeQueueDLQName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	return &Service{
		ch:  ch,
		log: log,
	}, nil
}

func (s *Service) PublishDischarge(ctx context.Context, notice *contracts.DischargeNotice) error {
	body, err := json.Marshal(notice)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.ch.PublishWithContext(ctx,
		"",                           // default exchange
		constvars.DischargeQueueName, // routing key
		false,                        // mandatory
		false,                        // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err)
	}

	s.log.Info("discharge notice published",
		zap.String("episode_id", notice.EpisodeID),
		zap.String("patient_id", notice.PatientID),
	)
	return nil
}

// Consume hands deliveries to the worker. Acknowledgement is the consumer's
// responsibility.
func (s *Service) Consume() (<-chan amqp.Delivery, error) {
	return s.ch.Consume(
		constvars.DischargeQueueName,
		"",    // consumer tag
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
}

// Reject moves a poisoned message to the dead-letter queue.
func (s *Service) Reject(ctx context.Context, delivery amqp.Delivery) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.ch.PublishWithContext(ctx,
		"",
		constvars.DischargeQueueDLQName,
		false,
		false,
		amqp.Publishing{
			ContentType:  delivery.ContentType,
			DeliveryMode: amqp.Persistent,
			Body:         delivery.Body,
		},
	)
	if err != nil {
		return err
	}
	return delivery.Ack(false)
}
