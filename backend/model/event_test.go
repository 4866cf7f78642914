package model

import (
	"path/filepath"
	"testing"
	"time"

	"bulletin-board/backend/common"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupEventTestDB(t *testing.T) func() {
	t.Helper()
	originalSQLitePath := common.SQLitePath
	common.SQLitePath = filepath.Join(t.TempDir(), "event_test.db")

	err := InitDB()
	assert.NoError(t, err)

	return func() {
		common.SQLitePath = originalSQLitePath
	}
}

func newTestEvent(title string, date string) *Event {
	return &Event{
		Title:     title,
		Category:  string(EventCategoryGeneral),
		EventDate: date,
	}
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, EventCategoryAcademic, NormalizeCategory("academic"))
	assert.Equal(t, EventCategoryCareer, NormalizeCategory("career"))
	assert.Equal(t, EventCategoryGeneral, NormalizeCategory("party"))
	assert.Equal(t, EventCategoryGeneral, NormalizeCategory(""))
}

func TestCreateAndGetEvent(t *testing.T) {
	cleanup := setupEventTestDB(t)
	defer cleanup()

	event := newTestEvent("orientation", "2026-09-10")
	event.Description = "welcome night"
	event.EventTime = "7:00 PM"
	event.Location = "Main Hall"
	assert.NoError(t, CreateEvent(event))
	assert.NotZero(t, event.Id)

	got, err := GetEventById(event.Id)
	assert.NoError(t, err)
	assert.Equal(t, "orientation", got.Title)
	assert.Equal(t, "2026-09-10", got.EventDate)
	assert.Empty(t, got.Images)

	_, err = GetEventById(event.Id + 1000)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestEventListingOrder(t *testing.T) {
	cleanup := setupEventTestDB(t)
	defer cleanup()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	later := newTestEvent("later", "2026-10-01")
	later.CreatedAt = base
	assert.NoError(t, CreateEvent(later))

	soonOld := newTestEvent("soon-older", "2026-09-01")
	soonOld.CreatedAt = base.Add(time.Minute)
	assert.NoError(t, CreateEvent(soonOld))

	soonNew := newTestEvent("soon-newer", "2026-09-01")
	soonNew.CreatedAt = base.Add(2 * time.Minute)
	assert.NoError(t, CreateEvent(soonNew))

	events, err := GetAllEvents()
	assert.NoError(t, err)
	assert.Len(t, events, 3)
	titles := []string{events[0].Title, events[1].Title, events[2].Title}
	assert.Equal(t, []string{"soon-newer", "soon-older", "later"}, titles)
}

func TestGetEventsByCategory(t *testing.T) {
	cleanup := setupEventTestDB(t)
	defer cleanup()

	social := newTestEvent("game night", "2026-09-05")
	social.Category = string(EventCategorySocial)
	assert.NoError(t, CreateEvent(social))
	assert.NoError(t, CreateEvent(newTestEvent("forum", "2026-09-06")))

	events, err := GetEventsByCategory(EventCategorySocial)
	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "game night", events[0].Title)
}

func TestUpdateEventFields(t *testing.T) {
	cleanup := setupEventTestDB(t)
	defer cleanup()

	event := newTestEvent("original", "2026-09-10")
	event.Location = "Room 12"
	assert.NoError(t, CreateEvent(event))

	assert.NoError(t, UpdateEventFields(event.Id, map[string]interface{}{"title": "renamed"}))

	got, err := GetEventById(event.Id)
	assert.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)
	assert.Equal(t, "Room 12", got.Location)
	assert.Equal(t, "2026-09-10", got.EventDate)

	// Zero recognized fields is a successful no-op for events.
	assert.NoError(t, UpdateEventFields(event.Id, map[string]interface{}{}))

	assert.ErrorIs(t, UpdateEventFields(event.Id+1000, map[string]interface{}{"title": "x"}), gorm.ErrRecordNotFound)
}

func TestDeleteEventCascadesImageRows(t *testing.T) {
	cleanup := setupEventTestDB(t)
	defer cleanup()

	event := newTestEvent("with images", "2026-09-10")
	assert.NoError(t, CreateEvent(event))
	assert.NoError(t, CreateEventImage(&EventImage{EventId: event.Id, StoredName: "aaa.png"}))
	assert.NoError(t, CreateEventImage(&EventImage{EventId: event.Id, StoredName: "bbb.png"}))

	assert.NoError(t, DeleteEventById(event.Id))

	_, err := GetEventById(event.Id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	images, err := GetEventImages(event.Id)
	assert.NoError(t, err)
	assert.Empty(t, images)

	assert.ErrorIs(t, DeleteEventById(event.Id), gorm.ErrRecordNotFound)
}

func TestGetEventImageScopedToOwner(t *testing.T) {
	cleanup := setupEventTestDB(t)
	defer cleanup()

	first := newTestEvent("first", "2026-09-10")
	assert.NoError(t, CreateEvent(first))
	second := newTestEvent("second", "2026-09-11")
	assert.NoError(t, CreateEvent(second))

	image := &EventImage{EventId: first.Id, StoredName: "ccc.png", OriginalName: "c.png"}
	assert.NoError(t, CreateEventImage(image))

	got, err := GetEventImage(first.Id, image.Id)
	assert.NoError(t, err)
	assert.Equal(t, "ccc.png", got.StoredName)

	// The same image id under the wrong owner is not found.
	_, err = GetEventImage(second.Id, image.Id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetEventStats(t *testing.T) {
	cleanup := setupEventTestDB(t)
	defer cleanup()

	today := time.Now().Format(EventDateLayout)
	future := time.Now().AddDate(0, 1, 0).Format(EventDateLayout)
	past := time.Now().AddDate(0, -1, 0).Format(EventDateLayout)

	assert.NoError(t, CreateEvent(newTestEvent("today", today)))
	assert.NoError(t, CreateEvent(newTestEvent("future", future)))
	past1 := newTestEvent("past", past)
	assert.NoError(t, CreateEvent(past1))
	assert.NoError(t, CreateEventImage(&EventImage{EventId: past1.Id, StoredName: "ddd.png"}))

	stats, err := GetEventStats()
	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalEvents)
	assert.Equal(t, int64(2), stats.UpcomingEvents)
	assert.Equal(t, int64(1), stats.TotalImages)
}
