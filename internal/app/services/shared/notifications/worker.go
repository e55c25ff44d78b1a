package notifications

import (
	"context"
	"fmt"
	"hospadmin-service/internal/app/config"
	"hospadmin-service/internal/app/contracts"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Worker consumes discharge notices and mails the summary to the configured
// recipient, with at-least-once semantics.
type Worker struct {
	log    *zap.Logger
	cfg    *config.InternalConfig
	queue  *Service
	mailer contracts.Mailer
	stop   chan struct{}
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, queue *Service, mailer contracts.Mailer) *Worker {
	return &Worker{
		log:    log,
		cfg:    cfg,
		queue:  queue,
		mailer: mailer,
		stop:   make(chan struct{}),
	}
}

// Start begins consuming. It returns a stop function to halt execution.
func (w *Worker) Start(ctx context.Context) (stop func(), err error) {
	deliveries, err := w.queue.Consume()
	if err != nil {
		return nil, err
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.processDelivery(ctx, delivery)
			}
		}
	}()

	w.log.Info("discharge notification worker started")
	return func() {
		close(w.stop)
		<-stopped
	}, nil
}

func (w *Worker) processDelivery(ctx context.Context, delivery amqp.Delivery) {
	var notice contracts.DischargeNotice
	if err := json.Unmarshal(delivery.Body, &notice); err != nil {
		w.log.Error("discharge notice does not parse; moving to dead-letter queue",
			zap.Error(err))
		if rerr := w.queue.Reject(ctx, delivery); rerr != nil {
			w.log.Error("failed to dead-letter discharge notice", zap.Error(rerr))
		}
		return
	}

	recipient := w.cfg.App.DischargeMailRecipient
	if recipient == "" {
		w.log.Warn("no discharge mail recipient configured; dropping notice",
			zap.String("episode_id", notice.EpisodeID))
		delivery.Ack(false)
		return
	}

	subject := fmt.Sprintf("Alta hospitalaria: %s", notice.PatientName)
	body := fmt.Sprintf(
		"Paciente: %s\nDepartamento: %s\nDiagnóstico final: %s\nCondición al alta: %s\nFecha de alta: %s\nAlta registrada por: %s\n",
		notice.PatientName,
		notice.Department,
		notice.FinalDiagnosis,
		notice.Condition,
		notice.DischargedAt,
		notice.DischargedBy,
	)

	if err := w.mailer.Send(recipient, subject, body); err != nil {
		w.log.Error("failed to send discharge mail; requeueing",
			zap.String("episode_id", notice.EpisodeID),
			zap.Error(err))
		delivery.Nack(false, true)
		return
	}

	w.log.Info("discharge mail sent",
		zap.String("episode_id", notice.EpisodeID),
		zap.String("recipient", recipient))
	delivery.Ack(false)
}
