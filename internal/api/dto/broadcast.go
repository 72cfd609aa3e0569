package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/model"
)

// NewValidator returns a validator that knows the request tags used in this package.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	return v
}

// Message holds the message fields shared by every broadcast request.
type Message struct {
	Text       string `json:"text" validate:"required,notblank"`
	ParseMode  string `json:"parseMode" validate:"omitempty,oneof=HTML MarkdownV2 Markdown"`
	ImageURL   string `json:"imageUrl" validate:"omitempty,url"`
	ButtonText string `json:"buttonText"`
	ButtonURL  string `json:"buttonUrl"` // may contain {telegramId} and {photoUrl}
}

// Payload builds the message payload. HTML is the default parse mode and the
// button is attached only when both its label and URL are set.
func (m Message) Payload() model.Payload {
	p := model.Payload{
		Text:      m.Text,
		ImageURL:  m.ImageURL,
		ParseMode: m.ParseMode,
	}

	if p.ParseMode == "" {
		p.ParseMode = model.ParseModeHTML
	}

	if m.ButtonText != "" && m.ButtonURL != "" {
		p.Button = &model.Button{Text: m.ButtonText, URL: m.ButtonURL}
	}

	return p
}

// UserData carries per-recipient substitution data.
type UserData struct {
	TelegramID int64  `json:"telegramId" validate:"required"`
	PhotoURL   string `json:"photoUrl"`
}

// BroadcastRequest is the body of POST /api/broadcast.
type BroadcastRequest struct {
	Message
	TelegramIDs []int64    `json:"telegramIds" validate:"required,min=1,dive,ne=0"`
	UsersData   []UserData `json:"usersData" validate:"dive"`
}

// Photos indexes UsersData by Telegram id.
func (r BroadcastRequest) Photos() map[int64]string {
	photos := make(map[int64]string, len(r.UsersData))
	for _, u := range r.UsersData {
		if u.PhotoURL != "" {
			photos[u.TelegramID] = u.PhotoURL
		}
	}

	return photos
}

// SegmentRequest is the body of POST /api/broadcast/segment.
type SegmentRequest struct {
	Message
	Status string `json:"status" validate:"omitempty,oneof=all anonymous guest registered client blocked"`
	Search string `json:"search"`
}

func (r SegmentRequest) Filter() model.RecipientFilter {
	return model.RecipientFilter{Status: r.Status, Search: r.Search}
}

// JobRequest is the body of POST /api/broadcast/jobs.
// Recipients are the given Telegram ids or, when none are given, the matching segment.
type JobRequest struct {
	Message
	TelegramIDs []int64    `json:"telegramIds" validate:"omitempty,dive,ne=0"`
	UsersData   []UserData `json:"usersData" validate:"dive"`
	Status      string     `json:"status" validate:"omitempty,oneof=all anonymous guest registered client blocked"`
	Search      string     `json:"search"`
	SendAt      string     `json:"sendAt"` // RFC 3339, empty means now
}

func (r JobRequest) Photos() map[int64]string {
	return BroadcastRequest{UsersData: r.UsersData}.Photos()
}

func (r JobRequest) Filter() model.RecipientFilter {
	return model.RecipientFilter{Status: r.Status, Search: r.Search}
}

// FailedResult describes one undelivered message.
type FailedResult struct {
	TelegramID int64  `json:"telegramId"`
	Kind       string `json:"kind"`
	Code       int    `json:"code,omitempty"`
	Error      string `json:"error"`
}

type Results struct {
	Success []int64        `json:"success"`
	Failed  []FailedResult `json:"failed"`
}

// BroadcastResponse summarises a finished synchronous broadcast.
type BroadcastResponse struct {
	Message string  `json:"message"`
	Total   int     `json:"total"`
	Success int     `json:"success"`
	Failed  int     `json:"failed"`
	Results Results `json:"results"`
}

func NewBroadcastResponse(report model.Report) BroadcastResponse {
	succeeded := report.Succeeded()
	failed := make([]FailedResult, 0)

	for _, res := range report.Failed() {
		failed = append(failed, FailedResult{
			TelegramID: res.TelegramID,
			Kind:       res.Kind,
			Code:       res.Code,
			Error:      res.Error,
		})
	}

	return BroadcastResponse{
		Message: "broadcast finished",
		Total:   report.Total(),
		Success: len(succeeded),
		Failed:  len(failed),
		Results: Results{Success: succeeded, Failed: failed},
	}
}
