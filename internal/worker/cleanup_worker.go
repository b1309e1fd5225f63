package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"docflow/internal/platform/rabbitmq"
	"docflow/internal/repository"
)

// CleanupWorker consumes account-deletion events and removes everything
// the user owned. The user row itself is already gone by the time the
// event is published.
type CleanupWorker struct {
	conn        *amqp.Connection
	docRepo     *repository.DocumentRepository
	requestRepo *repository.AIRequestRepository
	genRepo     *repository.GeneratedDocumentRepository
	settingRepo *repository.UserSettingRepository
	queueName   string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewCleanupWorker(
	conn *amqp.Connection,
	docRepo *repository.DocumentRepository,
	requestRepo *repository.AIRequestRepository,
	genRepo *repository.GeneratedDocumentRepository,
	settingRepo *repository.UserSettingRepository,
	queueName string,
) *CleanupWorker {
	return &CleanupWorker{
		conn:        conn,
		docRepo:     docRepo,
		requestRepo: requestRepo,
		genRepo:     genRepo,
		settingRepo: settingRepo,
		queueName:   queueName,
	}
}

func (w *CleanupWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	_, err = ch.QueueDeclare(
		w.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("declare cleanup queue failed: %w", err)
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume cleanup queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}

				var event rabbitmq.UserCleanupEvent
				if err := json.Unmarshal(d.Body, &event); err != nil {
					log.Printf("worker decode cleanup event failed: %v", err)
					_ = d.Nack(false, false)
					continue
				}

				if err := w.cleanup(event.UserID); err != nil {
					log.Printf("worker cleanup user %d failed: %v", event.UserID, err)
					_ = d.Nack(false, false)
					continue
				}

				_ = d.Ack(false)
			}
		}
	}()

	return nil
}

func (w *CleanupWorker) cleanup(userID uint) error {
	if userID == 0 {
		return nil
	}

	docIDs, err := w.docRepo.ListIDsByUserID(userID)
	if err != nil {
		return err
	}
	if err := w.genRepo.DeleteByDocumentIDs(docIDs); err != nil {
		return err
	}
	if err := w.requestRepo.DeleteByUserID(userID); err != nil {
		return err
	}
	if err := w.docRepo.DeleteByUserID(userID); err != nil {
		return err
	}
	return w.settingRepo.DeleteByUserID(userID)
}

func (w *CleanupWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
