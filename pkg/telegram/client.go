// Package telegram provides a client for delivering broadcast messages via the Telegram Bot API.
//
// The client is constructed once at process start and injected into the components
// that send messages. Provider failures are returned as *APIError so callers can
// classify them without depending on the underlying bot library.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/model"
)

// Client represents a Telegram client used to send broadcasts and reports.
type Client struct {
	bot *tgbotapi.BotAPI // authenticated bot API handle
}

// NewClient creates a new Telegram Client instance with the given bot token.
//
// It calls getMe once to verify the token.
func NewClient(token string) (*Client, error) {
	return NewClientWithEndpoint(token, tgbotapi.APIEndpoint)
}

// NewClientWithEndpoint creates a Client that talks to a custom Bot API server.
//
// The endpoint is a format string taking the token and the method name,
// e.g. "http://localhost:8081/bot%s/%s".
func NewClientWithEndpoint(token, endpoint string) (*Client, error) {
	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", wrapError(err))
	}

	return &Client{bot: bot}, nil
}

// Username returns the bot's username as reported by getMe.
func (c *Client) Username() string {
	return c.bot.Self.UserName
}

// SendText sends a text message to chatID.
func (c *Client) SendText(ctx context.Context, chatID int64, text, parseMode string, button *model.Button) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = parseMode
	if button != nil {
		msg.ReplyMarkup = keyboard(button)
	}

	return c.send(msg)
}

// SendPhoto sends the photo at photoURL with caption to chatID.
func (c *Client) SendPhoto(ctx context.Context, chatID int64, photoURL, caption, parseMode string, button *model.Button) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(photoURL))
	photo.Caption = caption
	photo.ParseMode = parseMode
	if button != nil {
		photo.ReplyMarkup = keyboard(button)
	}

	return c.send(photo)
}

// Send delivers an HTML report message to the chat id given as a string.
//
// It lets the client act as a summary notifier next to the email client.
func (c *Client) Send(to string, msg string) error {
	chatID, err := strconv.ParseInt(to, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chat id %q: %w", to, err)
	}

	return c.SendText(context.Background(), chatID, msg, model.ParseModeHTML, nil)
}

func (c *Client) send(msg tgbotapi.Chattable) error {
	if _, err := c.bot.Send(msg); err != nil {
		return wrapError(err)
	}

	return nil
}

func keyboard(button *model.Button) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL(button.Text, button.URL)),
	)
}

// wrapError converts Bot API failures into *APIError and leaves transport errors untouched.
func wrapError(err error) error {
	var tgErr *tgbotapi.Error
	if errors.As(err, &tgErr) {
		return &APIError{
			Code:        tgErr.Code,
			Description: tgErr.Message,
			RetryAfter:  tgErr.RetryAfter,
		}
	}

	return err
}
