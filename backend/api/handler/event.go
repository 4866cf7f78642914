package handler

import (
	"errors"
	"net/http"
	"strconv"

	"bulletin-board/backend/common"
	boarderrors "bulletin-board/backend/common/errors"
	"bulletin-board/backend/model"
	"bulletin-board/backend/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetAllEvents(c *gin.Context) {
	events, err := model.GetAllEvents()
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, boarderrors.ErrInternalServer, err)
		return
	}
	common.RespSuccess(c, events)
}

func GetEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, boarderrors.ErrInvalidParam)
		return
	}
	event, err := model.GetEventById(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.RespErrorStr(c, http.StatusNotFound, boarderrors.ErrEventNotFound)
		} else {
			common.RespError(c, http.StatusInternalServerError, boarderrors.ErrInternalServer, err)
		}
		return
	}
	common.RespSuccess(c, event)
}

// EventForm is bound from multipart or urlencoded form data so image
// files can ride along in the same request, or from a JSON body.
type EventForm struct {
	Title          string `form:"title" json:"title" validate:"required"`
	Description    string `form:"description" json:"description"`
	Category       string `form:"category" json:"category"`
	EventDate      string `form:"event_date" json:"event_date" validate:"required,datetime=2006-01-02"`
	EventTime      string `form:"event_time" json:"event_time"`
	Location       string `form:"location" json:"location"`
	Author         string `form:"author" json:"author"`
	AuthorInitials string `form:"author_initials" json:"author_initials"`
}

// EventUpdateRequest carries optional fields for partial updates over
// JSON. Absent fields stay nil and are left untouched.
type EventUpdateRequest struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	Category       *string `json:"category"`
	EventDate      *string `json:"event_date"`
	EventTime      *string `json:"event_time"`
	Location       *string `json:"location"`
	Author         *string `json:"author"`
	AuthorInitials *string `json:"author_initials"`
}

// limitRequestBody caps the body before any multipart parsing, so an
// oversized upload is rejected without a partial write.
func limitRequestBody(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, common.MaxUploadSize)
}

// respondBodyError maps a body that blew past the upload cap to 413 and
// any other parse failure to 400.
func respondBodyError(c *gin.Context, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		common.RespErrorStr(c, http.StatusRequestEntityTooLarge, boarderrors.ErrUploadTooLarge)
		return
	}
	common.RespError(c, http.StatusBadRequest, boarderrors.ErrInvalidParam, err)
}

// parseEventForm parses the request form eagerly so read failures
// surface as errors instead of empty field lookups.
func parseEventForm(c *gin.Context) error {
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		_, err := c.MultipartForm()
		return err
	}
	return c.Request.ParseForm()
}

func CreateEvent(c *gin.Context) {
	limitRequestBody(c)
	var form EventForm
	if err := c.ShouldBind(&form); err != nil {
		respondBodyError(c, err)
		return
	}
	if err := validate.Struct(&form); err != nil {
		common.RespError(c, http.StatusBadRequest, boarderrors.ErrInvalidParam, err)
		return
	}
	event := &model.Event{
		Title:          form.Title,
		Description:    form.Description,
		Category:       string(model.NormalizeCategory(form.Category)),
		EventDate:      form.EventDate,
		EventTime:      form.EventTime,
		Location:       form.Location,
		Author:         form.Author,
		AuthorInitials: form.AuthorInitials,
	}
	if err := model.CreateEvent(event); err != nil {
		common.RespError(c, http.StatusInternalServerError, boarderrors.ErrInternalServer, err)
		return
	}

	var images []*model.EventImage
	if multipartForm, err := c.MultipartForm(); err == nil && multipartForm != nil {
		images = service.SaveEventImages(event.Id, multipartForm.File["images"])
	}
	common.RespCreated(c, gin.H{"id": event.Id, "images": images})
}

func UpdateEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, boarderrors.ErrInvalidParam)
		return
	}
	limitRequestBody(c)

	var fields map[string]interface{}
	if c.ContentType() == gin.MIMEJSON {
		fields, err = eventUpdateFieldsFromJSON(c)
	} else {
		fields, err = eventUpdateFieldsFromForm(c)
	}
	if err != nil {
		return
	}

	// Unlike the message board, an update naming no fields is a
	// successful no-op here; the request may carry only new images.
	if err := model.UpdateEventFields(id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.RespErrorStr(c, http.StatusNotFound, boarderrors.ErrEventNotFound)
		} else {
			common.RespError(c, http.StatusInternalServerError, boarderrors.ErrInternalServer, err)
		}
		return
	}

	var images []*model.EventImage
	if multipartForm, err := c.MultipartForm(); err == nil && multipartForm != nil {
		images = service.SaveEventImages(id, multipartForm.File["images"])
	}
	common.RespSuccess(c, gin.H{"id": id, "images": images})
}

// eventUpdateFieldsFromForm builds the update map from form keys that
// are present in the request. It writes the error response itself.
func eventUpdateFieldsFromForm(c *gin.Context) (map[string]interface{}, error) {
	if err := parseEventForm(c); err != nil {
		respondBodyError(c, err)
		return nil, err
	}

	fields := map[string]interface{}{}
	if title, ok := c.GetPostForm("title"); ok {
		fields["title"] = title
	}
	if description, ok := c.GetPostForm("description"); ok {
		fields["description"] = description
	}
	if category, ok := c.GetPostForm("category"); ok {
		fields["category"] = string(model.NormalizeCategory(category))
	}
	if eventDate, ok := c.GetPostForm("event_date"); ok {
		if err := validate.Var(eventDate, "datetime=2006-01-02"); err != nil {
			common.RespError(c, http.StatusBadRequest, boarderrors.ErrInvalidParam, err)
			return nil, err
		}
		fields["event_date"] = eventDate
	}
	if eventTime, ok := c.GetPostForm("event_time"); ok {
		fields["event_time"] = eventTime
	}
	if location, ok := c.GetPostForm("location"); ok {
		fields["location"] = location
	}
	if author, ok := c.GetPostForm("author"); ok {
		fields["author"] = author
	}
	if initials, ok := c.GetPostForm("author_initials"); ok {
		fields["author_initials"] = initials
	}
	return fields, nil
}

// eventUpdateFieldsFromJSON builds the update map from a JSON body,
// treating nil pointers as absent. It writes the error response itself.
func eventUpdateFieldsFromJSON(c *gin.Context) (map[string]interface{}, error) {
	var req EventUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBodyError(c, err)
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = string(model.NormalizeCategory(*req.Category))
	}
	if req.EventDate != nil {
		if err := validate.Var(*req.EventDate, "datetime=2006-01-02"); err != nil {
			common.RespError(c, http.StatusBadRequest, boarderrors.ErrInvalidParam, err)
			return nil, err
		}
		fields["event_date"] = *req.EventDate
	}
	if req.EventTime != nil {
		fields["event_time"] = *req.EventTime
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Author != nil {
		fields["author"] = *req.Author
	}
	if req.AuthorInitials != nil {
		fields["author_initials"] = *req.AuthorInitials
	}
	return fields, nil
}

func DeleteEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, boarderrors.ErrInvalidParam)
		return
	}
	if err := service.DeleteEventWithImages(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.RespErrorStr(c, http.StatusNotFound, boarderrors.ErrEventNotFound)
		} else {
			common.RespError(c, http.StatusInternalServerError, boarderrors.ErrInternalServer, err)
		}
		return
	}
	common.RespSuccessStr(c, "event deleted")
}

func GetEventsByCategory(c *gin.Context) {
	category := model.EventCategory(c.Param("category"))
	if !category.Valid() {
		common.RespErrorStr(c, http.StatusBadRequest, boarderrors.ErrInvalidEventCategory)
		return
	}
	events, err := model.GetEventsByCategory(category)
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, boarderrors.ErrInternalServer, err)
		return
	}
	common.RespSuccess(c, events)
}

func GetEventStats(c *gin.Context) {
	stats, err := model.GetEventStats()
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, boarderrors.ErrInternalServer, err)
		return
	}
	common.RespSuccess(c, stats)
}

func GetSlides(c *gin.Context) {
	slides, err := service.GetSlides()
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, boarderrors.ErrInternalServer, err)
		return
	}
	common.RespSuccess(c, slides)
}

func DeleteEventImage(c *gin.Context) {
	eventId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, boarderrors.ErrInvalidParam)
		return
	}
	imageId, err := strconv.Atoi(c.Param("imageId"))
	if err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, boarderrors.ErrInvalidParam)
		return
	}
	if err := service.DeleteEventImage(eventId, imageId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.RespErrorStr(c, http.StatusNotFound, boarderrors.ErrImageNotFound)
		} else {
			common.RespError(c, http.StatusInternalServerError, boarderrors.ErrInternalServer, err)
		}
		return
	}
	common.RespSuccessStr(c, "image deleted")
}
