package broadcast

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/dispatch"
	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/model"
	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/rabbitmq/queue"
	broadcastrepo "github.com/EdilKulzhabay/tochkaLi-sub001/internal/repository/broadcast"
	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/sanitizer"
)

var (
	ErrNoRecipients = errors.New("no recipients matched")
	ErrJobFinished  = errors.New("broadcast job already finished")
	ErrEmptyMessage = errors.New("message is empty after sanitizing")
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/broadcast/mock.go -package=mocks

type jobPublisher interface {
	Publish(msg queue.BroadcastMessage, strategy retry.Strategy) error
	Defer(msg queue.BroadcastMessage, strategy retry.Strategy) error
}

type jobRepository interface {
	CreateJob(context.Context, model.Job) (uuid.UUID, error)
	GetJob(context.Context, uuid.UUID) (model.Job, error)
	GetJobStatus(context.Context, uuid.UUID) (string, error)
	GetAllJobs(context.Context) ([]model.Job, error)
	RequeueUnfinishedJobs(context.Context) ([]uuid.UUID, error)
	UpdateStatus(context.Context, uuid.UUID, string) error
	TransitionStatus(ctx context.Context, id uuid.UUID, to string, from ...string) error
	SaveProgress(ctx context.Context, id uuid.UUID, cursor, success, failed int, failure *model.Result) error
}

type recipientRepository interface {
	FindRecipients(context.Context, model.RecipientFilter) ([]model.User, error)
	FindByTelegramIDs(context.Context, []int64) ([]model.User, error)
}

type dispatcher interface {
	Dispatch(ctx context.Context, p model.Payload, recipients []model.Recipient) model.Report
	DispatchFrom(ctx context.Context, p model.Payload, recipients []model.Recipient, start int, observe dispatch.Observer) model.Report
}

// Notifier delivers broadcast summaries to an administrator.
type Notifier interface {
	Send(to string, msg string) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// ReportOptions selects where job summaries are sent.
// An empty Channel disables reporting.
type ReportOptions struct {
	Channel string // key in the notifiers map, e.g. "telegram" or "email"
	To      string // chat id or email address
}

// Service implements sending broadcasts now or as persisted background jobs.
type Service struct {
	jobs       jobRepository
	recipients recipientRepository
	queue      jobPublisher
	dispatcher dispatcher
	notifiers  map[string]Notifier
	cache      cache
	report     ReportOptions
}

func NewService(
	jobs jobRepository,
	recipients recipientRepository,
	queue jobPublisher,
	dispatcher dispatcher,
	notifiers map[string]Notifier,
	cache cache,
	report ReportOptions,
) *Service {
	return &Service{
		jobs:       jobs,
		recipients: recipients,
		queue:      queue,
		dispatcher: dispatcher,
		notifiers:  notifiers,
		cache:      cache,
		report:     report,
	}
}

// Broadcast sends p to every recipient and blocks until all sends are done.
// Cancelling ctx does not stop a broadcast that has started.
// It returns ErrEmptyMessage without sending anything if p has nothing left to send.
func (s *Service) Broadcast(ctx context.Context, p model.Payload, recipients []model.Recipient) (model.Report, error) {
	p, err := prepare(p)
	if err != nil {
		return model.Report{}, err
	}

	zlog.Logger.Info().Int("recipients", len(recipients)).Msg("broadcast started")

	report := s.dispatcher.Dispatch(context.WithoutCancel(ctx), p, recipients)

	zlog.Logger.Info().
		Int("total", report.Total()).
		Int("success", len(report.Succeeded())).
		Int("failed", len(report.Failed())).
		Msg("broadcast finished")

	return report, nil
}

// FindRecipients returns the users matching filter.
func (s *Service) FindRecipients(ctx context.Context, filter model.RecipientFilter) ([]model.User, error) {
	users, err := s.recipients.FindRecipients(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find recipients: %w", err)
	}

	return users, nil
}

// ResolveRecipients builds recipients for ids in the given order.
// Photo URLs come from photos first and from stored users otherwise.
func (s *Service) ResolveRecipients(ctx context.Context, ids []int64, photos map[int64]string) ([]model.Recipient, error) {
	missing := make([]int64, 0)
	for _, id := range ids {
		if photos[id] == "" {
			missing = append(missing, id)
		}
	}

	stored := make(map[int64]string, len(missing))
	if len(missing) > 0 {
		users, err := s.recipients.FindByTelegramIDs(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("find users by telegram ids: %w", err)
		}

		for _, u := range users {
			stored[u.TelegramID] = u.PhotoURL
		}
	}

	recipients := make([]model.Recipient, 0, len(ids))
	for _, id := range ids {
		photo := photos[id]
		if photo == "" {
			photo = stored[id]
		}

		recipients = append(recipients, model.Recipient{TelegramID: id, PhotoURL: photo})
	}

	return recipients, nil
}

// BroadcastToSegment resolves the users matching filter and broadcasts p to them.
func (s *Service) BroadcastToSegment(ctx context.Context, p model.Payload, filter model.RecipientFilter) (model.Report, error) {
	if _, err := prepare(p); err != nil {
		return model.Report{}, err
	}

	recipients, err := s.resolve(ctx, filter)
	if err != nil {
		return model.Report{}, err
	}

	return s.Broadcast(ctx, p, recipients)
}

// CreateJob persists a background broadcast and announces it to the workers.
func (s *Service) CreateJob(
	ctx context.Context,
	strategy retry.Strategy,
	p model.Payload,
	recipients []model.Recipient,
	sendAt time.Time,
) (uuid.UUID, error) {
	p, err := prepare(p)
	if err != nil {
		return uuid.Nil, err
	}

	job := model.Job{
		Payload:    p,
		Recipients: recipients,
		Status:     model.JobPending,
		SendAt:     sendAt,
	}

	id, err := s.jobs.CreateJob(ctx, job)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create broadcast job: %w", err)
	}

	s.cacheStatus(ctx, strategy, id, job.Status)

	if err := s.queue.Publish(queue.BroadcastMessage{JobID: id, SendAt: sendAt}, strategy); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to publish broadcast job")

		if setErr := s.SetStatus(ctx, strategy, id, model.JobFailed); setErr != nil {
			zlog.Logger.Error().Err(setErr).Str("id", id.String()).Msg("failed to mark broadcast job failed")
		}

		return uuid.Nil, fmt.Errorf("publish broadcast job: %w", err)
	}

	return id, nil
}

// CreateSegmentJob snapshots the users matching filter and creates a job for them.
func (s *Service) CreateSegmentJob(
	ctx context.Context,
	strategy retry.Strategy,
	p model.Payload,
	filter model.RecipientFilter,
	sendAt time.Time,
) (uuid.UUID, error) {
	if _, err := prepare(p); err != nil {
		return uuid.Nil, err
	}

	recipients, err := s.resolve(ctx, filter)
	if err != nil {
		return uuid.Nil, err
	}

	return s.CreateJob(ctx, strategy, p, recipients, sendAt)
}

// GetJobStatus returns the job status, preferring the cache.
func (s *Service) GetJobStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error) {
	status, err := s.cache.GetWithRetry(ctx, strategy, cacheKey(id))
	if err == nil {
		return status, nil
	}

	if !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get broadcast job status from cache")
	}

	status, err = s.jobs.GetJobStatus(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get broadcast job status: %w", err)
	}

	s.cacheStatus(ctx, strategy, id, status)

	return status, nil
}

// GetJob returns a job with its progress and failures.
func (s *Service) GetJob(ctx context.Context, id uuid.UUID) (model.Job, error) {
	job, err := s.jobs.GetJob(ctx, id)
	if err != nil {
		return model.Job{}, fmt.Errorf("get broadcast job: %w", err)
	}

	return job, nil
}

// GetAllJobs returns the broadcast history, newest first.
func (s *Service) GetAllJobs(ctx context.Context) ([]model.Job, error) {
	jobs, err := s.jobs.GetAllJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all broadcast jobs: %w", err)
	}

	return jobs, nil
}

// SetStatus stores a new job status and refreshes the cache.
func (s *Service) SetStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status string) error {
	if err := s.jobs.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update broadcast job status: %w", err)
	}

	s.cacheStatus(ctx, strategy, id, status)

	return nil
}

// CancelJob cancels a job that has not started yet.
// A job that is already running is not interrupted and ErrJobFinished is returned.
func (s *Service) CancelJob(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error {
	err := s.jobs.TransitionStatus(ctx, id, model.JobCancelled, model.JobPending)
	if errors.Is(err, broadcastrepo.ErrStatusConflict) {
		return fmt.Errorf("%w: job is not pending", ErrJobFinished)
	}
	if err != nil {
		return fmt.Errorf("cancel broadcast job: %w", err)
	}

	s.cacheStatus(ctx, strategy, id, model.JobCancelled)

	return nil
}

// RunJob dispatches a persisted job, starting at its saved cursor.
//
// A job whose send time has not come yet goes back to the retry queue instead of
// holding a worker. Otherwise the job is claimed by moving it from pending to running,
// so a cancelled job or one claimed by another delivery is skipped. Progress is
// checkpointed after each recipient, and once started the dispatch runs to
// completion even if ctx is cancelled.
func (s *Service) RunJob(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error {
	job, err := s.jobs.GetJob(ctx, id)
	if err != nil {
		return fmt.Errorf("get broadcast job: %w", err)
	}

	if job.Done() {
		zlog.Logger.Info().Str("id", id.String()).Str("status", job.Status).Msg("broadcast job already done, skipping")
		return nil
	}

	if time.Until(job.SendAt) > 0 {
		if err := s.queue.Defer(queue.BroadcastMessage{JobID: id, SendAt: job.SendAt}, strategy); err != nil {
			return fmt.Errorf("defer broadcast job: %w", err)
		}

		zlog.Logger.Debug().Str("id", id.String()).Time("send_at", job.SendAt).Msg("broadcast job deferred")
		return nil
	}

	err = s.jobs.TransitionStatus(ctx, id, model.JobRunning, model.JobPending)
	if errors.Is(err, broadcastrepo.ErrStatusConflict) {
		zlog.Logger.Info().Str("id", id.String()).Msg("broadcast job is no longer pending, skipping")
		return nil
	}
	if err != nil {
		return fmt.Errorf("claim broadcast job: %w", err)
	}

	s.cacheStatus(ctx, strategy, id, model.JobRunning)

	zlog.Logger.Info().
		Str("id", id.String()).
		Int("recipients", len(job.Recipients)).
		Int("cursor", job.Cursor).
		Msg("broadcast job started")

	runCtx := context.WithoutCancel(ctx)
	success, failed := job.Success, job.Failed

	s.dispatcher.DispatchFrom(runCtx, job.Payload, job.Recipients, job.Cursor, func(i int, res model.Result) {
		var failure *model.Result
		if res.OK {
			success++
		} else {
			failed++
			failure = &res
		}

		if err := s.jobs.SaveProgress(runCtx, id, i+1, success, failed, failure); err != nil {
			zlog.Logger.Error().Err(err).Str("id", id.String()).Int("cursor", i+1).Msg("failed to save broadcast progress")
		}
	})

	if err := s.SetStatus(runCtx, strategy, id, model.JobCompleted); err != nil {
		return err
	}

	zlog.Logger.Info().
		Str("id", id.String()).
		Int("success", success).
		Int("failed", failed).
		Msg("broadcast job completed")

	s.sendReport(id, len(job.Recipients), success, failed)

	return nil
}

// ResumeInterrupted republishes every unfinished job left by a previous process.
// Jobs cut short while running go back to pending and continue from their cursor.
// It must run before the workers start.
func (s *Service) ResumeInterrupted(ctx context.Context, strategy retry.Strategy) (int, error) {
	ids, err := s.jobs.RequeueUnfinishedJobs(ctx)
	if err != nil {
		return 0, fmt.Errorf("requeue unfinished broadcast jobs: %w", err)
	}

	resumed := 0
	for _, id := range ids {
		s.cacheStatus(ctx, strategy, id, model.JobPending)

		if err := s.queue.Publish(queue.BroadcastMessage{JobID: id}, strategy); err != nil {
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to republish unfinished broadcast job")
			continue
		}

		resumed++
	}

	return resumed, nil
}

func (s *Service) resolve(ctx context.Context, filter model.RecipientFilter) ([]model.Recipient, error) {
	users, err := s.FindRecipients(ctx, filter)
	if err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return nil, ErrNoRecipients
	}

	recipients := make([]model.Recipient, 0, len(users))
	for _, u := range users {
		recipients = append(recipients, u.Recipient())
	}

	return recipients, nil
}

func (s *Service) cacheStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status string) {
	if err := s.cache.SetWithRetry(ctx, strategy, cacheKey(id), status); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache broadcast job status")
	}
}

func (s *Service) sendReport(id uuid.UUID, total, success, failed int) {
	if s.report.Channel == "" {
		return
	}

	if s.report.To == "" {
		zlog.Logger.Warn().Str("channel", s.report.Channel).Msg("report channel has no recipient, skipping report")
		return
	}

	notifier, ok := s.notifiers[s.report.Channel]
	if !ok {
		zlog.Logger.Warn().Str("channel", s.report.Channel).Msg("unknown report channel")
		return
	}

	msg := fmt.Sprintf(
		"<b>Broadcast finished</b>\nJob: <code>%s</code>\nRecipients: %d\nDelivered: %d\nFailed: %d",
		id, total, success, failed,
	)

	if err := notifier.Send(s.report.To, msg); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to send broadcast report")
	}
}

func cacheKey(id uuid.UUID) string {
	return "broadcast:job:" + id.String()
}

// prepare normalises a payload before it is sent.
func prepare(p model.Payload) (model.Payload, error) {
	empty := strings.TrimSpace(p.Text) == ""
	if p.ParseMode == model.ParseModeHTML {
		p.Text = sanitizer.Sanitize(p.Text)
		empty = sanitizer.Empty(p.Text)
	}

	if empty && p.ImageURL == "" {
		return model.Payload{}, ErrEmptyMessage
	}

	return p, nil
}
