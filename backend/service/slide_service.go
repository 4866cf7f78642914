package service

import (
	"bulletin-board/backend/model"
)

// Slide is one slideshow entry: a single image joined with its owning
// event's display fields. Events without images contribute no slides.
type Slide struct {
	ImageId      int    `json:"image_id"`
	EventId      int    `json:"event_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	EventDate    string `json:"event_date"`
	EventTime    string `json:"event_time"`
	Location     string `json:"location"`
	OriginalName string `json:"original_name"`
	URL          string `json:"url"`
}

// GetSlides returns one entry per image, ordered by the owning event's
// date ascending, then newest upload first.
func GetSlides() ([]*Slide, error) {
	type slideRow struct {
		ImageId      int
		EventId      int
		Title        string
		Description  string
		Category     string
		EventDate    string
		EventTime    string
		Location     string
		OriginalName string
		StoredName   string
	}
	var rows []slideRow
	err := model.DB.Table("event_images").
		Select("event_images.id AS image_id, events.id AS event_id, events.title, events.description, events.category, events.event_date, events.event_time, events.location, event_images.original_name, event_images.stored_name").
		Joins("JOIN events ON events.id = event_images.event_id").
		Order("events.event_date ASC, event_images.uploaded_at DESC, event_images.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	slides := make([]*Slide, 0, len(rows))
	for _, row := range rows {
		slides = append(slides, &Slide{
			ImageId:      row.ImageId,
			EventId:      row.EventId,
			Title:        row.Title,
			Description:  row.Description,
			Category:     row.Category,
			EventDate:    row.EventDate,
			EventTime:    row.EventTime,
			Location:     row.Location,
			OriginalName: row.OriginalName,
			URL:          ImageURL(row.StoredName),
		})
	}
	return slides, nil
}
