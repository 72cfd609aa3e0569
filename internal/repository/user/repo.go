package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/model"
)

var ErrUnknownStatus = errors.New("unknown recipient status")

const selectRecipients = `
		SELECT id, telegram_id, COALESCE(name, ''), COALESCE(username, ''), COALESCE(phone, ''),
		       COALESCE(email, ''), status, is_blocked, COALESCE(photo_url, '')
		FROM users
		WHERE telegram_id IS NOT NULL`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repository provides read access to the users table for broadcast targeting.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new user repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// FindRecipients returns users with a Telegram id matching the filter, in storage order.
//
// An empty status or "all" matches every user, "blocked" matches blocked users and
// any other value must be a user status. Search is a case-insensitive substring
// match against name, username, phone and email.
func (r *Repository) FindRecipients(ctx context.Context, filter model.RecipientFilter) ([]model.User, error) {
	query, args, err := buildRecipientsQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find recipients: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// FindByTelegramIDs returns the stored users among the given Telegram ids.
// Ids without a stored user are skipped.
func (r *Repository) FindByTelegramIDs(ctx context.Context, ids []int64) ([]model.User, error) {
	if len(ids) == 0 {
		return []model.User{}, nil
	}

	query := selectRecipients + `
		  AND telegram_id = ANY($1)
		ORDER BY id;`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to find users by telegram ids: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func scanUsers(rows *sql.Rows) ([]model.User, error) {
	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID, &u.TelegramID, &u.Name, &u.Username, &u.Phone, &u.Email, &u.Status, &u.IsBlocked, &u.PhotoURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recipient: %w", err)
		}

		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipients: %w", err)
	}

	return users, nil
}

func buildRecipientsQuery(filter model.RecipientFilter) (string, []any, error) {
	var sb strings.Builder
	sb.WriteString(selectRecipients)

	args := make([]any, 0, 2)

	switch filter.Status {
	case "", model.FilterAll:
	case model.FilterBlocked:
		sb.WriteString("\n\t\t  AND is_blocked = TRUE")
	case model.StatusAnonymous, model.StatusGuest, model.StatusRegistered, model.StatusClient:
		args = append(args, filter.Status)
		sb.WriteString("\n\t\t  AND status = $" + strconv.Itoa(len(args)))
	default:
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownStatus, filter.Status)
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+likeEscaper.Replace(search)+"%")
		p := "$" + strconv.Itoa(len(args))
		sb.WriteString("\n\t\t  AND (name ILIKE " + p + " OR username ILIKE " + p +
			" OR phone ILIKE " + p + " OR email ILIKE " + p + ")")
	}

	sb.WriteString("\n\t\tORDER BY id;")

	return sb.String(), args, nil
}
