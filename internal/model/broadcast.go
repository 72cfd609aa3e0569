package model

import (
	"time"

	"github.com/google/uuid"
)

// Parse modes understood by Telegram.
const (
	ParseModeHTML     = "HTML"
	ParseModeMarkdown = "MarkdownV2"
)

// Failure kinds assigned to undelivered messages.
const (
	KindBlocked     = "blocked"
	KindBadRequest  = "bad_request"
	KindRateLimited = "rate_limited"
	KindUnknown     = "unknown"
)

// Job statuses.
const (
	JobPending   = "pending"
	JobRunning   = "running"
	JobCompleted = "completed"
	JobCancelled = "cancelled"
	JobFailed    = "failed"
)

// Recipient is a single Telegram identity targeted by a broadcast.
type Recipient struct {
	TelegramID int64  `json:"telegram_id"`
	PhotoURL   string `json:"photo_url,omitempty"` // substituted into the button URL
}

// Button is an inline call-to-action attached to a message.
type Button struct {
	Text string `json:"text"`
	URL  string `json:"url"` // may contain {telegramId} and {photoUrl} placeholders
}

// Payload is the message delivered to every recipient of a broadcast.
type Payload struct {
	Text      string  `json:"text"`
	ImageURL  string  `json:"image_url,omitempty"`
	ParseMode string  `json:"parse_mode,omitempty"`
	Button    *Button `json:"button,omitempty"`
}

// Result is the outcome of delivering a payload to one recipient.
type Result struct {
	TelegramID int64  `json:"telegramId"`
	OK         bool   `json:"-"`
	Kind       string `json:"kind,omitempty"`
	Code       int    `json:"code,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Report aggregates the results of a dispatch in recipient order.
type Report struct {
	Results []Result `json:"results"`
}

// Total returns the number of recipients the report covers.
func (r Report) Total() int { return len(r.Results) }

// Succeeded returns the ids of recipients that received the message.
func (r Report) Succeeded() []int64 {
	ids := make([]int64, 0, len(r.Results))
	for _, res := range r.Results {
		if res.OK {
			ids = append(ids, res.TelegramID)
		}
	}

	return ids
}

// Failed returns the results of undelivered messages.
func (r Report) Failed() []Result {
	failed := make([]Result, 0)
	for _, res := range r.Results {
		if !res.OK {
			failed = append(failed, res)
		}
	}

	return failed
}

// Job is a persisted asynchronous broadcast.
type Job struct {
	ID         uuid.UUID   `json:"id"`
	Payload    Payload     `json:"payload"`
	Recipients []Recipient `json:"recipients"`
	Status     string      `json:"status"`  // "pending", "running", "completed", "cancelled", "failed"
	Cursor     int         `json:"cursor"`  // index of the next recipient to send to
	Success    int         `json:"success"` // delivered so far
	Failed     int         `json:"failed"`  // undelivered so far
	Failures   []Result    `json:"failures"`
	SendAt     time.Time   `json:"send_at"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Done reports whether the job will not be dispatched again.
func (j Job) Done() bool {
	return j.Status == JobCompleted || j.Status == JobCancelled || j.Status == JobFailed
}
