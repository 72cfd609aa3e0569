package worker

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/model"
	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/rabbitmq/queue"
)

//go:generate mockgen -source=broadcaster.go -destination=../mocks/worker/mock.go -package=mocks
type broadcastConsumer interface {
	Consume(ctx context.Context, out chan<- queue.BroadcastMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.BroadcastMessage, strategy retry.Strategy)
}

type broadcastService interface {
	GetJobStatus(context.Context, retry.Strategy, uuid.UUID) (string, error)
}

// Broadcaster is a pool of workers running broadcast jobs from the queue.
type Broadcaster struct {
	queue   broadcastConsumer
	handler messageHandler
	service broadcastService
}

func NewBroadcaster(q broadcastConsumer, h messageHandler, s broadcastService) *Broadcaster {
	return &Broadcaster{
		queue:   q,
		handler: h,
		service: s,
	}
}

// Run consumes job announcements and hands them to workerCount workers.
// It blocks until ctx is done and every worker has returned.
func (b *Broadcaster) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	msgChan := make(chan queue.BroadcastMessage, workerCount*10)

	go func() {
		if err := b.queue.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume messages")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Info().Int("worker", id).Msg("worker started")

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Info().Int("worker", id).Msg("worker shutting down")
					return
				case msg, ok := <-msgChan:
					if !ok {
						zlog.Logger.Info().Int("worker", id).Msg("channel closed, worker shutting down")
						return
					}

					b.process(ctx, id, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Info().Msg("broadcaster stopped")
}

func (b *Broadcaster) process(ctx context.Context, worker int, msg queue.BroadcastMessage, strategy retry.Strategy) {
	status, err := b.service.GetJobStatus(ctx, strategy, msg.JobID)
	if err != nil {
		zlog.Logger.Error().Err(err).Int("worker", worker).Str("id", msg.JobID.String()).Msg("failed to get broadcast job status")
		return
	}

	switch status {
	case model.JobCancelled, model.JobCompleted, model.JobFailed:
		zlog.Logger.Info().Int("worker", worker).Str("id", msg.JobID.String()).Str("status", status).Msg("broadcast job skipped")
		return
	}

	b.handler.HandleMessage(ctx, msg, strategy)
}
