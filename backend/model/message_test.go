package model

import (
	"path/filepath"
	"testing"
	"time"

	"bulletin-board/backend/common"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupMessageTestDB(t *testing.T) func() {
	t.Helper()
	originalSQLitePath := common.SQLitePath
	common.SQLitePath = filepath.Join(t.TempDir(), "message_test.db")

	err := InitDB()
	assert.NoError(t, err)

	// The seeded sample rows would skew ordering and count assertions.
	assert.NoError(t, DB.Exec("DELETE FROM messages").Error)

	return func() {
		common.SQLitePath = originalSQLitePath
	}
}

func newTestMessage(title string, priority MessagePriority, createdAt time.Time) *Message {
	return &Message{
		Title:          title,
		Content:        "content of " + title,
		Type:           string(MessageTypeNotice),
		Priority:       string(priority),
		Author:         "Tester",
		AuthorInitials: "TT",
		CreatedAt:      createdAt,
	}
}

func TestNormalizePriority(t *testing.T) {
	assert.Equal(t, MessagePriorityUrgent, NormalizePriority("urgent"))
	assert.Equal(t, MessagePriorityPinned, NormalizePriority("pinned"))
	assert.Equal(t, MessagePriorityNormal, NormalizePriority("normal"))
	assert.Equal(t, MessagePriorityNormal, NormalizePriority("critical"))
	assert.Equal(t, MessagePriorityNormal, NormalizePriority(""))
}

func TestMessageTypeValid(t *testing.T) {
	assert.True(t, MessageType("announcement").Valid())
	assert.True(t, MessageType("notice").Valid())
	assert.False(t, MessageType("memo").Valid())
	assert.False(t, MessageType("").Valid())
}

func TestCreateAndGetMessage(t *testing.T) {
	cleanup := setupMessageTestDB(t)
	defer cleanup()

	message := newTestMessage("hello", MessagePriorityNormal, time.Time{})
	assert.NoError(t, CreateMessage(message))
	assert.NotZero(t, message.Id)
	assert.False(t, message.CreatedAt.IsZero())

	got, err := GetMessageById(message.Id)
	assert.NoError(t, err)
	assert.Equal(t, "hello", got.Title)
	assert.Equal(t, string(MessageTypeNotice), got.Type)

	_, err = GetMessageById(message.Id + 1000)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMessageListingOrder(t *testing.T) {
	cleanup := setupMessageTestDB(t)
	defer cleanup()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	// Inserted as normal, urgent, pinned, normal — expected back as
	// urgent, pinned, normal (newer), normal (older).
	assert.NoError(t, CreateMessage(newTestMessage("normal-older", MessagePriorityNormal, base)))
	assert.NoError(t, CreateMessage(newTestMessage("urgent", MessagePriorityUrgent, base.Add(time.Minute))))
	assert.NoError(t, CreateMessage(newTestMessage("pinned", MessagePriorityPinned, base.Add(2*time.Minute))))
	assert.NoError(t, CreateMessage(newTestMessage("normal-newer", MessagePriorityNormal, base.Add(3*time.Minute))))

	messages, err := GetAllMessages()
	assert.NoError(t, err)
	assert.Len(t, messages, 4)
	titles := []string{messages[0].Title, messages[1].Title, messages[2].Title, messages[3].Title}
	assert.Equal(t, []string{"urgent", "pinned", "normal-newer", "normal-older"}, titles)
}

func TestGetMessagesByType(t *testing.T) {
	cleanup := setupMessageTestDB(t)
	defer cleanup()

	notice := newTestMessage("a notice", MessagePriorityNormal, time.Time{})
	assert.NoError(t, CreateMessage(notice))

	announcement := newTestMessage("an announcement", MessagePriorityNormal, time.Time{})
	announcement.Type = string(MessageTypeAnnouncement)
	assert.NoError(t, CreateMessage(announcement))

	announcements, err := GetMessagesByType(MessageTypeAnnouncement)
	assert.NoError(t, err)
	assert.Len(t, announcements, 1)
	assert.Equal(t, "an announcement", announcements[0].Title)
}

func TestUpdateMessageFields(t *testing.T) {
	cleanup := setupMessageTestDB(t)
	defer cleanup()

	message := newTestMessage("original", MessagePriorityUrgent, time.Time{})
	assert.NoError(t, CreateMessage(message))

	err := UpdateMessageFields(message.Id, map[string]interface{}{"title": "renamed"})
	assert.NoError(t, err)

	got, err := GetMessageById(message.Id)
	assert.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)
	// Everything else keeps its prior value.
	assert.Equal(t, "content of original", got.Content)
	assert.Equal(t, string(MessagePriorityUrgent), got.Priority)
	assert.Equal(t, "Tester", got.Author)

	err = UpdateMessageFields(message.Id+1000, map[string]interface{}{"title": "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteMessage(t *testing.T) {
	cleanup := setupMessageTestDB(t)
	defer cleanup()

	message := newTestMessage("to delete", MessagePriorityNormal, time.Time{})
	assert.NoError(t, CreateMessage(message))

	assert.NoError(t, DeleteMessageById(message.Id))
	_, err := GetMessageById(message.Id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, DeleteMessageById(message.Id), gorm.ErrRecordNotFound)
}

func TestGetMessageStats(t *testing.T) {
	cleanup := setupMessageTestDB(t)
	defer cleanup()

	assert.NoError(t, CreateMessage(newTestMessage("one", MessagePriorityUrgent, time.Time{})))
	assert.NoError(t, CreateMessage(newTestMessage("two", MessagePriorityNormal, time.Time{})))
	announcement := newTestMessage("three", MessagePriorityNormal, time.Time{})
	announcement.Type = string(MessageTypeAnnouncement)
	assert.NoError(t, CreateMessage(announcement))

	stats, err := GetMessageStats()
	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.ByType["notice"])
	assert.Equal(t, int64(1), stats.ByType["announcement"])
	assert.Equal(t, int64(1), stats.ByPriority["urgent"])
	assert.Equal(t, int64(2), stats.ByPriority["normal"])
}
