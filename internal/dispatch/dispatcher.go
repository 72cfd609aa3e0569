// Package dispatch delivers one payload to a list of recipients, one at a time,
// pacing sends with a fixed delay and recording an outcome per recipient.
package dispatch

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/model"
	"github.com/EdilKulzhabay/tochkaLi-sub001/pkg/telegram"
)

// Placeholders substituted into button URLs for every recipient.
const (
	PlaceholderTelegramID = "{telegramId}"
	PlaceholderPhotoURL   = "{photoUrl}"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatch/mock.go -package=mocks
type sender interface {
	SendText(ctx context.Context, chatID int64, text, parseMode string, button *model.Button) error
	SendPhoto(ctx context.Context, chatID int64, photoURL, caption, parseMode string, button *model.Button) error
}

// Observer is called after each recipient has been processed.
// index is the recipient's position in the full list.
type Observer func(index int, res model.Result)

// Dispatcher sends broadcasts sequentially.
//
// Dispatches are not coordinated with each other: two concurrent calls share
// the provider rate limit without any mutual exclusion.
type Dispatcher struct {
	sender         sender
	delay          time.Duration // pause between two consecutive sends
	rateLimitPause time.Duration // extra pause after a flood control error
	sleep          func(time.Duration)
}

// NewDispatcher creates a Dispatcher that sends through s.
func NewDispatcher(s sender, delay, rateLimitPause time.Duration) *Dispatcher {
	return &Dispatcher{
		sender:         s,
		delay:          delay,
		rateLimitPause: rateLimitPause,
		sleep:          time.Sleep,
	}
}

// Dispatch delivers p to every recipient and returns one result per recipient.
//
// A failed send never stops the loop and is never retried.
func (d *Dispatcher) Dispatch(ctx context.Context, p model.Payload, recipients []model.Recipient) model.Report {
	return d.DispatchFrom(ctx, p, recipients, 0, nil)
}

// DispatchFrom is like Dispatch but starts at recipients[start] and reports
// every result to observe. The returned report covers recipients[start:].
func (d *Dispatcher) DispatchFrom(
	ctx context.Context,
	p model.Payload,
	recipients []model.Recipient,
	start int,
	observe Observer,
) model.Report {
	start = min(max(start, 0), len(recipients))
	results := make([]model.Result, 0, len(recipients)-start)

	for i := start; i < len(recipients); i++ {
		res := d.deliver(ctx, p, recipients[i])
		results = append(results, res)

		if observe != nil {
			observe(i, res)
		}

		if i == len(recipients)-1 {
			break
		}

		if res.Kind == model.KindRateLimited {
			d.sleep(d.rateLimitPause)
		}

		d.sleep(d.delay)
	}

	return model.Report{Results: results}
}

func (d *Dispatcher) deliver(ctx context.Context, p model.Payload, r model.Recipient) model.Result {
	button := Personalize(p.Button, r)

	var err error
	if p.ImageURL != "" {
		err = d.sender.SendPhoto(ctx, r.TelegramID, p.ImageURL, p.Text, p.ParseMode, button)
	} else {
		err = d.sender.SendText(ctx, r.TelegramID, p.Text, p.ParseMode, button)
	}

	if err == nil {
		return model.Result{TelegramID: r.TelegramID, OK: true}
	}

	kind, code, msg := Classify(err)
	zlog.Logger.Warn().
		Err(err).
		Int64("telegram_id", r.TelegramID).
		Str("kind", kind).
		Msg("failed to deliver broadcast message")

	return model.Result{TelegramID: r.TelegramID, Kind: kind, Code: code, Error: msg}
}

// Classify maps a send error to a failure kind, the provider's error code
// (0 when the request never got an API response) and a message.
func Classify(err error) (kind string, code int, msg string) {
	apiErr, ok := telegram.AsAPIError(err)
	if !ok {
		return model.KindUnknown, 0, err.Error()
	}

	switch {
	case apiErr.Forbidden():
		kind = model.KindBlocked
	case apiErr.TooManyRequests():
		kind = model.KindRateLimited
	case apiErr.BadRequest():
		kind = model.KindBadRequest
	default:
		kind = model.KindUnknown
	}

	return kind, apiErr.Code, apiErr.Description
}

// Personalize returns the button b with recipient placeholders substituted.
// It returns nil when b is missing a label or a URL.
func Personalize(b *model.Button, r model.Recipient) *model.Button {
	if b == nil || b.Text == "" || b.URL == "" {
		return nil
	}

	replacer := strings.NewReplacer(
		PlaceholderTelegramID, strconv.FormatInt(r.TelegramID, 10),
		PlaceholderPhotoURL, url.QueryEscape(r.PhotoURL),
	)

	return &model.Button{Text: b.Text, URL: replacer.Replace(b.URL)}
}
