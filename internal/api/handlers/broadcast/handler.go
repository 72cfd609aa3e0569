package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/api/dto"
	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/api/respond"
	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/config"
	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/model"
	broadcastrepo "github.com/EdilKulzhabay/tochkaLi-sub001/internal/repository/broadcast"
	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/repository/user"
	broadcastsvc "github.com/EdilKulzhabay/tochkaLi-sub001/internal/service/broadcast"
)

// broadcastService defines the business logic the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/broadcast/mock.go -package=mocks
type broadcastService interface {
	Broadcast(ctx context.Context, p model.Payload, recipients []model.Recipient) (model.Report, error)
	ResolveRecipients(ctx context.Context, ids []int64, photos map[int64]string) ([]model.Recipient, error)
	BroadcastToSegment(ctx context.Context, p model.Payload, filter model.RecipientFilter) (model.Report, error)
	FindRecipients(ctx context.Context, filter model.RecipientFilter) ([]model.User, error)
	CreateJob(ctx context.Context, strategy retry.Strategy, p model.Payload, recipients []model.Recipient, sendAt time.Time) (uuid.UUID, error)
	CreateSegmentJob(ctx context.Context, strategy retry.Strategy, p model.Payload, filter model.RecipientFilter, sendAt time.Time) (uuid.UUID, error)
	GetJobStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error)
	GetJob(ctx context.Context, id uuid.UUID) (model.Job, error)
	GetAllJobs(ctx context.Context) ([]model.Job, error)
	CancelJob(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error
}

// Handler handles HTTP requests for broadcasts and broadcast jobs.
type Handler struct {
	service   broadcastService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(s broadcastService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// Broadcast sends a message to the given Telegram ids and waits for the result.
//
// Partial delivery is still a 200: the body lists every recipient's outcome.
func (h *Handler) Broadcast(c *ginext.Context) {
	var req dto.BroadcastRequest
	if !h.decode(c, &req) {
		return
	}

	recipients, err := h.service.ResolveRecipients(c.Request.Context(), req.TelegramIDs, req.Photos())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to resolve recipients")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	report, err := h.service.Broadcast(c.Request.Context(), req.Payload(), recipients)
	if err != nil {
		h.failRecipients(c, err)
		return
	}

	respond.JSON(c.Writer, http.StatusOK, dto.NewBroadcastResponse(report))
}

// Segment sends a message to every user matching a status and search filter.
func (h *Handler) Segment(c *ginext.Context) {
	var req dto.SegmentRequest
	if !h.decode(c, &req) {
		return
	}

	report, err := h.service.BroadcastToSegment(c.Request.Context(), req.Payload(), req.Filter())
	if err != nil {
		h.failRecipients(c, err)
		return
	}

	respond.JSON(c.Writer, http.StatusOK, dto.NewBroadcastResponse(report))
}

// Recipients lists the users matching the status and search query parameters.
func (h *Handler) Recipients(c *ginext.Context) {
	filter := model.RecipientFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}

	users, err := h.service.FindRecipients(c.Request.Context(), filter)
	if err != nil {
		h.failRecipients(c, err)
		return
	}

	respond.OK(c.Writer, users)
}

// CreateJob schedules a background broadcast and returns its id.
func (h *Handler) CreateJob(c *ginext.Context) {
	var req dto.JobRequest
	if !h.decode(c, &req) {
		return
	}

	if len(req.TelegramIDs) == 0 && req.Status == "" {
		zlog.Logger.Warn().Msg("job request without recipients")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: telegramIds or status is required"))
		return
	}

	sendAt := time.Now()
	if req.SendAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.SendAt)
		if err != nil {
			zlog.Logger.Warn().Err(err).Str("send_at", req.SendAt).Msg("failed to parse send_at")
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid sendAt format"))
			return
		}
		sendAt = parsed
	}

	ctx := c.Request.Context()

	var (
		id  uuid.UUID
		err error
	)
	if len(req.TelegramIDs) > 0 {
		var recipients []model.Recipient
		recipients, err = h.service.ResolveRecipients(ctx, req.TelegramIDs, req.Photos())
		if err == nil {
			id, err = h.service.CreateJob(ctx, h.cfg.Retry, req.Payload(), recipients, sendAt)
		}
	} else {
		id, err = h.service.CreateSegmentJob(ctx, h.cfg.Retry, req.Payload(), req.Filter(), sendAt)
	}

	if err != nil {
		h.failRecipients(c, err)
		return
	}

	respond.Created(c.Writer, id)
}

// GetJobs lists every broadcast job, newest first.
func (h *Handler) GetJobs(c *ginext.Context) {
	jobs, err := h.service.GetAllJobs(c.Request.Context())
	if err != nil {
		if errors.Is(err, broadcastrepo.ErrNoJobsFound) {
			zlog.Logger.Warn().Err(err).Msg("no broadcast jobs found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("broadcast jobs not found"))
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to get broadcast jobs")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, jobs)
}

// GetJob returns a job with its progress and failures.
func (h *Handler) GetJob(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	job, err := h.service.GetJob(c.Request.Context(), id)
	if err != nil {
		failJob(c, id, err, "failed to get broadcast job")
		return
	}

	respond.OK(c.Writer, job)
}

// GetJobStatus returns the job status only.
func (h *Handler) GetJobStatus(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	status, err := h.service.GetJobStatus(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		failJob(c, id, err, "failed to get broadcast job status")
		return
	}

	respond.OK(c.Writer, status)
}

// Cancel cancels a job that has not started yet.
func (h *Handler) Cancel(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.service.CancelJob(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, broadcastsvc.ErrJobFinished) {
			zlog.Logger.Warn().Err(err).Str("id", id.String()).Msg("broadcast job cannot be cancelled")
			respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("broadcast job already started"))
			return
		}

		failJob(c, id, err, "failed to cancel broadcast job")
		return
	}

	respond.OK(c.Writer, "broadcast job cancelled")
}

// decode reads and validates a JSON body. On failure it responds with 400 and returns false.
func (h *Handler) decode(c *ginext.Context, req interface{}) bool {
	if err := json.NewDecoder(c.Request.Body).Decode(req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return false
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return false
	}

	return true
}

func (h *Handler) failRecipients(c *ginext.Context, err error) {
	switch {
	case errors.Is(err, broadcastsvc.ErrEmptyMessage):
		zlog.Logger.Warn().Err(err).Msg("message has no content to send")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: message is empty"))
	case errors.Is(err, user.ErrUnknownStatus):
		zlog.Logger.Warn().Err(err).Msg("unknown recipient status")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("unknown status"))
	case errors.Is(err, broadcastsvc.ErrNoRecipients):
		zlog.Logger.Warn().Err(err).Msg("no recipients matched")
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("no recipients matched"))
	default:
		zlog.Logger.Error().Err(err).Msg("failed to handle broadcast request")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}

func parseID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	if id == uuid.Nil {
		zlog.Logger.Warn().Msg("missing id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return uuid.Nil, false
	}

	return id, true
}

func failJob(c *ginext.Context, id uuid.UUID, err error, msg string) {
	if errors.Is(err, broadcastrepo.ErrJobNotFound) {
		zlog.Logger.Warn().Err(err).Str("id", id.String()).Msg("broadcast job not found")
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("broadcast job not found"))
		return
	}

	zlog.Logger.Error().Err(err).Str("id", id.String()).Msg(msg)
	respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
}
