package model

import (
	"time"
)

type MessageType string

const (
	MessageTypeAnnouncement MessageType = "announcement"
	MessageTypeNotice       MessageType = "notice"
)

// Valid reports whether the value is one of the closed message types.
// Invalid types are hard-rejected by the API, unlike priorities.
func (t MessageType) Valid() bool {
	return t == MessageTypeAnnouncement || t == MessageTypeNotice
}

type MessagePriority string

const (
	MessagePriorityNormal MessagePriority = "normal"
	MessagePriorityUrgent MessagePriority = "urgent"
	MessagePriorityPinned MessagePriority = "pinned"
)

// NormalizePriority coerces unknown priorities to normal. The board has
// always accepted arbitrary priority input and quietly defaulted it, so
// this is deliberately not a validation error.
func NormalizePriority(p string) MessagePriority {
	switch MessagePriority(p) {
	case MessagePriorityUrgent, MessagePriorityPinned, MessagePriorityNormal:
		return MessagePriority(p)
	default:
		return MessagePriorityNormal
	}
}

// Message is one board entry: an announcement or a notice.
type Message struct {
	Id             int       `json:"id" gorm:"primaryKey"`
	Title          string    `json:"title" gorm:"size:255;not null"`
	Content        string    `json:"content" gorm:"not null"`
	Type           string    `json:"type" gorm:"size:20;not null;index"`
	Priority       string    `json:"priority" gorm:"size:20;not null;default:normal"`
	Author         string    `json:"author" gorm:"size:100;not null"`
	AuthorInitials string    `json:"author_initials" gorm:"size:10;not null"`
	CreatedAt      time.Time `json:"created_at"`
}

// messageOrder ranks urgent ahead of pinned ahead of normal, newest first
// among ties. The trailing id sort keeps equal timestamps deterministic.
const messageOrder = "CASE priority WHEN 'urgent' THEN 1 WHEN 'pinned' THEN 2 ELSE 3 END, created_at DESC, id DESC"

func GetAllMessages() ([]*Message, error) {
	var messages []*Message
	err := DB.Order(messageOrder).Find(&messages).Error
	return messages, err
}

func GetMessagesByType(messageType MessageType) ([]*Message, error) {
	var messages []*Message
	err := DB.Where("type = ?", string(messageType)).Order(messageOrder).Find(&messages).Error
	return messages, err
}

func GetMessageById(id int) (*Message, error) {
	var message Message
	if err := DB.First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func CreateMessage(message *Message) error {
	return DB.Create(message).Error
}

// UpdateMessageFields overwrites exactly the given columns. The caller is
// responsible for only including fields that were present in the request.
func UpdateMessageFields(id int, fields map[string]interface{}) error {
	if _, err := GetMessageById(id); err != nil {
		return err
	}
	return DB.Model(&Message{}).Where("id = ?", id).Updates(fields).Error
}

func DeleteMessageById(id int) error {
	if _, err := GetMessageById(id); err != nil {
		return err
	}
	return DB.Delete(&Message{}, id).Error
}

// MessageStats are live counts, computed at query time.
type MessageStats struct {
	Total      int64            `json:"total"`
	ByType     map[string]int64 `json:"by_type"`
	ByPriority map[string]int64 `json:"by_priority"`
}

func GetMessageStats() (*MessageStats, error) {
	stats := &MessageStats{
		ByType:     make(map[string]int64),
		ByPriority: make(map[string]int64),
	}
	if err := DB.Model(&Message{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	type bucket struct {
		Key   string
		Count int64
	}
	var byType []bucket
	if err := DB.Model(&Message{}).Select("type AS key, COUNT(*) AS count").Group("type").Scan(&byType).Error; err != nil {
		return nil, err
	}
	for _, b := range byType {
		stats.ByType[b.Key] = b.Count
	}

	var byPriority []bucket
	if err := DB.Model(&Message{}).Select("priority AS key, COUNT(*) AS count").Group("priority").Scan(&byPriority).Error; err != nil {
		return nil, err
	}
	for _, b := range byPriority {
		stats.ByPriority[b.Key] = b.Count
	}
	return stats, nil
}
