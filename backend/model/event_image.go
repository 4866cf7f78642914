package model

import (
	"time"
)

// EventImage is one uploaded file owned by exactly one event. StoredName
// is the generated on-disk filename; OriginalName is kept for display
// only and never used to build a path.
type EventImage struct {
	Id           int       `json:"id" gorm:"primaryKey"`
	EventId      int       `json:"event_id" gorm:"index;not null"`
	StoredName   string    `json:"stored_name" gorm:"uniqueIndex;size:100;not null"`
	OriginalName string    `json:"original_name" gorm:"size:255"`
	UploadedAt   time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}

func CreateEventImage(image *EventImage) error {
	return DB.Create(image).Error
}

func GetEventImages(eventId int) ([]*EventImage, error) {
	var images []*EventImage
	err := DB.Where("event_id = ?", eventId).Order("id ASC").Find(&images).Error
	return images, err
}

// GetEventImage looks the image up scoped to its owner, so an image id
// under the wrong event resolves to not found.
func GetEventImage(eventId int, imageId int) (*EventImage, error) {
	var image EventImage
	if err := DB.Where("id = ? AND event_id = ?", imageId, eventId).First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func DeleteEventImageById(id int) error {
	return DB.Delete(&EventImage{}, id).Error
}
