package model

import (
	"time"

	"gorm.io/gorm"
)

type EventCategory string

const (
	EventCategoryGeneral   EventCategory = "general"
	EventCategoryAcademic  EventCategory = "academic"
	EventCategorySocial    EventCategory = "social"
	EventCategorySpiritual EventCategory = "spiritual"
	EventCategoryCareer    EventCategory = "career"
)

func (c EventCategory) Valid() bool {
	switch c {
	case EventCategoryGeneral, EventCategoryAcademic, EventCategorySocial,
		EventCategorySpiritual, EventCategoryCareer:
		return true
	}
	return false
}

// NormalizeCategory coerces unknown categories to general on writes.
// Reads through the category filter reject instead, see the handler.
func NormalizeCategory(c string) EventCategory {
	if category := EventCategory(c); category.Valid() {
		return category
	}
	return EventCategoryGeneral
}

// EventDateLayout is the calendar-date format events are stored and
// sorted with. Lexicographic order equals chronological order.
const EventDateLayout = "2006-01-02"

// Event is one calendar entry. Images are owned rows that cascade on
// delete; their on-disk files are cleaned up by the service layer.
type Event struct {
	Id             int          `json:"id" gorm:"primaryKey"`
	Title          string       `json:"title" gorm:"size:255;not null"`
	Description    string       `json:"description"`
	Category       string       `json:"category" gorm:"size:20;not null;default:general;index"`
	EventDate      string       `json:"event_date" gorm:"size:10;not null;index"`
	EventTime      string       `json:"event_time" gorm:"size:50"`
	Location       string       `json:"location" gorm:"size:255"`
	Author         string       `json:"author" gorm:"size:100"`
	AuthorInitials string       `json:"author_initials" gorm:"size:10"`
	CreatedAt      time.Time    `json:"created_at"`
	Images         []EventImage `json:"images" gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE"`
}

const eventOrder = "event_date ASC, created_at DESC, id DESC"

func withImages(db *gorm.DB) *gorm.DB {
	return db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	})
}

func GetAllEvents() ([]*Event, error) {
	var events []*Event
	err := withImages(DB).Order(eventOrder).Find(&events).Error
	return events, err
}

func GetEventsByCategory(category EventCategory) ([]*Event, error) {
	var events []*Event
	err := withImages(DB).Where("category = ?", string(category)).Order(eventOrder).Find(&events).Error
	return events, err
}

func GetEventById(id int) (*Event, error) {
	var event Event
	if err := withImages(DB).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func CreateEvent(event *Event) error {
	return DB.Create(event).Error
}

// UpdateEventFields overwrites exactly the given columns; absent fields
// keep their stored values. An empty map is a successful no-op.
func UpdateEventFields(id int, fields map[string]interface{}) error {
	if err := DB.First(&Event{}, id).Error; err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	return DB.Model(&Event{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteEventById removes the event row. Image rows cascade via the
// foreign key; backing files must already have been handled by the
// caller (see service.DeleteEventWithImages).
func DeleteEventById(id int) error {
	if err := DB.First(&Event{}, id).Error; err != nil {
		return err
	}
	return DB.Select("Images").Delete(&Event{Id: id}).Error
}

// EventStats are live counts; "upcoming" is evaluated against the clock
// at query time, never cached.
type EventStats struct {
	TotalEvents    int64 `json:"total_events"`
	UpcomingEvents int64 `json:"upcoming_events"`
	TotalImages    int64 `json:"total_images"`
}

func GetEventStats() (*EventStats, error) {
	stats := &EventStats{}
	if err := DB.Model(&Event{}).Count(&stats.TotalEvents).Error; err != nil {
		return nil, err
	}
	today := time.Now().Format(EventDateLayout)
	if err := DB.Model(&Event{}).Where("event_date >= ?", today).Count(&stats.UpcomingEvents).Error; err != nil {
		return nil, err
	}
	if err := DB.Model(&EventImage{}).Count(&stats.TotalImages).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
