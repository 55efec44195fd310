// Package tasks runs background work on an asynq queue backed by the same
// Redis the store mirrors into.
package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/hibiken/asynq"
)

const (
	TypeReceiptDelivery = "receipt:deliver"

	queueDefault = "default"
	maxRetry     = 5
)

type ReceiptPayload struct {
	Receipt entity.Receipt `json:"receipt"`
}

func NewReceiptDeliveryTask(r entity.Receipt) (*asynq.Task, error) {
	payload, err := json.Marshal(ReceiptPayload{Receipt: r})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal receipt task payload: %w", err)
	}
	return asynq.NewTask(TypeReceiptDelivery, payload, asynq.MaxRetry(maxRetry), asynq.Queue(queueDefault), asynq.Timeout(time.Minute)), nil
}

// Enqueuer hands receipts to the background queue.
type Enqueuer struct {
	client *asynq.Client
	log    logger.Logger
}

func NewEnqueuer(opt asynq.RedisClientOpt, log logger.Logger) *Enqueuer {
	return &Enqueuer{client: asynq.NewClient(opt), log: log}
}

func (e *Enqueuer) EnqueueReceipt(ctx context.Context, r entity.Receipt) error {
	task, err := NewReceiptDeliveryTask(r)
	if err != nil {
		return err
	}
	info, err := e.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue receipt for transaction %s: %w", r.TransactionID, err)
	}
	e.log.Debugf("Enqueued receipt task %s for transaction %s", info.ID, r.TransactionID)
	return nil
}

func (e *Enqueuer) Close() error {
	return e.client.Close()
}

// Deliverer sends a rendered receipt to the buyer.
type Deliverer interface {
	Deliver(ctx context.Context, r entity.Receipt) error
}

type TaskProcessor struct {
	deliverer Deliverer
	log       logger.Logger
}

func NewTaskProcessor(deliverer Deliverer, log logger.Logger) *TaskProcessor {
	return &TaskProcessor{deliverer: deliverer, log: log}
}

func (p *TaskProcessor) HandleReceiptDeliveryTask(ctx context.Context, t *asynq.Task) error {
	var payload ReceiptPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal receipt task payload: %v: %w", err, asynq.SkipRetry)
	}
	if payload.Receipt.BuyerEmail == "" {
		return fmt.Errorf("receipt %s has no recipient: %w", payload.Receipt.TransactionID, asynq.SkipRetry)
	}
	if err := p.deliverer.Deliver(ctx, payload.Receipt); err != nil {
		p.log.Warnf("Receipt delivery for transaction %s failed, will retry: %v", payload.Receipt.TransactionID, err)
		return err
	}
	return nil
}

func (p *TaskProcessor) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReceiptDelivery, p.HandleReceiptDeliveryTask)
	return mux
}

func NewServer(opt asynq.RedisClientOpt, concurrency int, log logger.Logger) *asynq.Server {
	return asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{queueDefault: 1},
		ErrorHandler: asynq.ErrorHandlerFunc(func(_ context.Context, task *asynq.Task, err error) {
			log.Errorf("Task %s failed: %v", task.Type(), err)
		}),
	})
}

// InlineEnqueuer delivers immediately on the caller's goroutine. It stands in
// for the queue when background tasks are disabled.
type InlineEnqueuer struct {
	deliverer Deliverer
}

func NewInlineEnqueuer(d Deliverer) *InlineEnqueuer {
	return &InlineEnqueuer{deliverer: d}
}

func (e *InlineEnqueuer) EnqueueReceipt(ctx context.Context, r entity.Receipt) error {
	return e.deliverer.Deliver(ctx, r)
}
