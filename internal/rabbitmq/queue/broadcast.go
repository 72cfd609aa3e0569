package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/config"
)

// BroadcastMessage announces a persisted broadcast job to the workers.
type BroadcastMessage struct {
	JobID  uuid.UUID `json:"job_id"`
	SendAt time.Time `json:"send_at"`
}

// BroadcastQueue publishes and consumes broadcast job announcements.
type BroadcastQueue struct {
	Publisher  *rabbitmq.Publisher
	Consumer   *rabbitmq.Consumer
	routingKey string
	retryKey   string
	dlqKey     string
}

// NewBroadcastQueue declares the exchange, the main queue, its retry queue and the DLQ.
//
// The retry queue holds deferred messages for cfg.RabbitMQ.RetryTTL, then expires
// them back into the main queue. The DLQ keeps announcements of jobs that gave up,
// for inspection.
func NewBroadcastQueue(ch *rabbitmq.Channel, cfg *config.Config) (*BroadcastQueue, error) {
	mq := cfg.RabbitMQ

	exchange := rabbitmq.NewExchange(mq.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(mq.DLQ, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": mq.Queue,
		"x-message-ttl":             int32(mq.RetryTTL.Milliseconds()),
	}

	_, err = qm.DeclareQueue(mq.RetryQueue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	mainQ, err := qm.DeclareQueue(mq.Queue, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	bindings := map[string]string{
		mainQ.Name:    mq.RoutingKey,
		mq.RetryQueue: mq.RetryQueue,
		mq.DLQ:        mq.DLQ,
	}
	for name, key := range bindings {
		if err := ch.QueueBind(name, key, exchange.Name(), false, nil); err != nil {
			return nil, fmt.Errorf("failed to bind the exchange to queue %s: %w", name, err)
		}
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &BroadcastQueue{
		Publisher:  pub,
		Consumer:   cons,
		routingKey: mq.RoutingKey,
		retryKey:   mq.RetryQueue,
		dlqKey:     mq.DLQ,
	}, nil
}

// Publish sends msg to the main queue.
func (q *BroadcastQueue) Publish(msg BroadcastMessage, strategy retry.Strategy) error {
	return q.publish(msg, q.routingKey, strategy)
}

// Defer parks msg in the retry queue. It comes back to the main queue after the retry TTL.
func (q *BroadcastQueue) Defer(msg BroadcastMessage, strategy retry.Strategy) error {
	return q.publish(msg, q.retryKey, strategy)
}

// DeadLetter moves msg to the DLQ.
func (q *BroadcastQueue) DeadLetter(msg BroadcastMessage, strategy retry.Strategy) error {
	return q.publish(msg, q.dlqKey, strategy)
}

func (q *BroadcastQueue) publish(msg BroadcastMessage, routingKey string, strategy retry.Strategy) error {
	body, err := Encode(msg)
	if err != nil {
		return err
	}

	return q.Publisher.PublishWithRetry(body, routingKey, "application/json", strategy)
}

// Consume decodes messages from the main queue into out until ctx is done.
func (q *BroadcastQueue) Consume(ctx context.Context, out chan<- BroadcastMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-msgChan:
				if !ok {
					return
				}

				msg, err := Decode(m)
				if err != nil {
					zlog.Logger.Error().Err(err).Msg("failed to unmarshal message")
					continue
				}

				select {
				case out <- msg:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}

// Encode serialises msg as a queue message body.
func Encode(msg BroadcastMessage) ([]byte, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return body, nil
}

// Decode parses a queue message body.
func Decode(body []byte) (BroadcastMessage, error) {
	var msg BroadcastMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return BroadcastMessage{}, err
	}

	if msg.JobID == uuid.Nil {
		return BroadcastMessage{}, fmt.Errorf("message without job id")
	}

	return msg, nil
}
