package broadcast

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/model"
	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/rabbitmq/queue"
	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/repository/broadcast"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/broadcast/mock.go -package=mocks
type broadcastService interface {
	RunJob(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error
	SetStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status string) error
}

type deadLetterer interface {
	DeadLetter(msg queue.BroadcastMessage, strategy retry.Strategy) error
}

// Handler runs broadcast jobs announced on the queue.
type Handler struct {
	service broadcastService
	dlq     deadLetterer
}

func NewHandler(svc broadcastService, dlq deadLetterer) *Handler {
	return &Handler{
		service: svc,
		dlq:     dlq,
	}
}

// HandleMessage runs the announced job, retrying with strategy.
// A retry resumes from the last saved cursor. A job that still fails is marked
// failed and its message is moved to the DLQ.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.BroadcastMessage, strategy retry.Strategy) {
	zlog.Logger.Info().Str("id", msg.JobID.String()).Time("send_at", msg.SendAt).Msg("handle message: got broadcast job")

	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return h.service.RunJob(ctx, strategy, msg.JobID)
		}
	}, strategy)

	if err == nil {
		return
	}

	if errors.Is(err, broadcast.ErrJobNotFound) {
		zlog.Logger.Warn().Str("id", msg.JobID.String()).Err(err).Msg("broadcast job not found, dropping message")
		return
	}

	if errors.Is(err, context.Canceled) {
		zlog.Logger.Info().Str("id", msg.JobID.String()).Msg("broadcast job interrupted by shutdown")
		return
	}

	zlog.Logger.Error().Err(err).Str("id", msg.JobID.String()).Msg("broadcast job failed")

	if setErr := h.service.SetStatus(ctx, strategy, msg.JobID, model.JobFailed); setErr != nil {
		zlog.Logger.Error().Err(setErr).Str("id", msg.JobID.String()).Msg("failed to set status=failed")
	}

	if dlqErr := h.dlq.DeadLetter(msg, strategy); dlqErr != nil {
		zlog.Logger.Error().Err(dlqErr).Str("id", msg.JobID.String()).Msg("failed to dead-letter broadcast job")
	}
}
