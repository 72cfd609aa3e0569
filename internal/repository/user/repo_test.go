package user

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/model"
)

var recipientColumns = []string{
	"id", "telegram_id", "name", "username", "phone", "email", "status", "is_blocked", "photo_url",
}

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestFindRecipients_All(t *testing.T) {
	repo, mock := setupMockDB(t)

	rows := sqlmock.NewRows(recipientColumns).
		AddRow(1, 100, "Anna", "anna", "+7700", "anna@example.com", "client", false, "https://t.me/a.jpg").
		AddRow(2, 200, "", "", "", "", "guest", true, "")

	mock.ExpectQuery(`FROM users\s+WHERE telegram_id IS NOT NULL\s+ORDER BY id;`).
		WithArgs().
		WillReturnRows(rows)

	users, err := repo.FindRecipients(context.Background(), model.RecipientFilter{Status: model.FilterAll})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, model.User{
		ID: 1, TelegramID: 100, Name: "Anna", Username: "anna", Phone: "+7700",
		Email: "anna@example.com", Status: "client", PhotoURL: "https://t.me/a.jpg",
	}, users[0])
	assert.True(t, users[1].IsBlocked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindRecipients_StatusAndSearch(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`AND status = $1`) + `\s+` +
		regexp.QuoteMeta(`AND (name ILIKE $2 OR username ILIKE $2 OR phone ILIKE $2 OR email ILIKE $2)`)).
		WithArgs("registered", `%50\%\_off%`).
		WillReturnRows(sqlmock.NewRows(recipientColumns))

	users, err := repo.FindRecipients(context.Background(), model.RecipientFilter{
		Status: model.StatusRegistered,
		Search: " 50%_off ",
	})
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindRecipients_Blocked(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`AND is_blocked = TRUE`)).
		WithArgs("%anna%").
		WillReturnRows(sqlmock.NewRows(recipientColumns).
			AddRow(3, 300, "Anna", "", "", "", "client", true, ""))

	users, err := repo.FindRecipients(context.Background(), model.RecipientFilter{
		Status: model.FilterBlocked,
		Search: "anna",
	})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, int64(300), users[0].TelegramID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindRecipients_UnknownStatus(t *testing.T) {
	repo, mock := setupMockDB(t)

	_, err := repo.FindRecipients(context.Background(), model.RecipientFilter{Status: "vip"})
	assert.ErrorIs(t, err, ErrUnknownStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindRecipients_StorageError(t *testing.T) {
	repo, mock := setupMockDB(t)
	dbErr := errors.New("connection refused")

	mock.ExpectQuery(`FROM users`).WillReturnError(dbErr)

	users, err := repo.FindRecipients(context.Background(), model.RecipientFilter{})
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByTelegramIDs(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`AND telegram_id = ANY($1)`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(recipientColumns).
			AddRow(1, 100, "Anna", "", "", "", "client", false, "https://t.me/a.jpg"))

	users, err := repo.FindByTelegramIDs(context.Background(), []int64{100, 200})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "https://t.me/a.jpg", users[0].PhotoURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByTelegramIDs_Empty(t *testing.T) {
	repo, mock := setupMockDB(t)

	users, err := repo.FindByTelegramIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}
