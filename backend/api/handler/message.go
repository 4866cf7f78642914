package handler

import (
	"errors"
	"net/http"
	"strconv"

	"bulletin-board/backend/common"
	boarderrors "bulletin-board/backend/common/errors"
	"bulletin-board/backend/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var validate = validator.New()

func GetAllMessages(c *gin.Context) {
	messages, err := model.GetAllMessages()
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, boarderrors.ErrInternalServer, err)
		return
	}
	common.RespSuccess(c, messages)
}

func GetMessage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, boarderrors.ErrInvalidParam)
		return
	}
	message, err := model.GetMessageById(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.RespErrorStr(c, http.StatusNotFound, boarderrors.ErrMessageNotFound)
		} else {
			common.RespError(c, http.StatusInternalServerError, boarderrors.ErrInternalServer, err)
		}
		return
	}
	common.RespSuccess(c, message)
}

type MessageCreateRequest struct {
	Title          string `json:"title" validate:"required"`
	Content        string `json:"content" validate:"required"`
	Type           string `json:"type" validate:"required"`
	Priority       string `json:"priority"`
	Author         string `json:"author" validate:"required"`
	AuthorInitials string `json:"author_initials" validate:"required"`
}

func CreateMessage(c *gin.Context) {
	var req MessageCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespError(c, http.StatusBadRequest, boarderrors.ErrInvalidParam, err)
		return
	}
	if err := validate.Struct(&req); err != nil {
		common.RespError(c, http.StatusBadRequest, boarderrors.ErrInvalidParam, err)
		return
	}
	if !model.MessageType(req.Type).Valid() {
		common.RespErrorStr(c, http.StatusBadRequest, boarderrors.ErrInvalidMessageType)
		return
	}
	message := &model.Message{
		Title:          req.Title,
		Content:        req.Content,
		Type:           req.Type,
		Priority:       string(model.NormalizePriority(req.Priority)),
		Author:         req.Author,
		AuthorInitials: req.AuthorInitials,
	}
	if err := model.CreateMessage(message); err != nil {
		common.RespError(c, http.StatusInternalServerError, boarderrors.ErrInternalServer, err)
		return
	}
	common.RespCreated(c, gin.H{"id": message.Id})
}

// MessageUpdateRequest uses pointer fields so "absent" and "set to empty"
// stay distinguishable: only fields present in the request body are
// written.
type MessageUpdateRequest struct {
	Title          *string `json:"title"`
	Content        *string `json:"content"`
	Type           *string `json:"type"`
	Priority       *string `json:"priority"`
	Author         *string `json:"author"`
	AuthorInitials *string `json:"author_initials"`
}

func UpdateMessage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, boarderrors.ErrInvalidParam)
		return
	}
	var req MessageUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespError(c, http.StatusBadRequest, boarderrors.ErrInvalidParam, err)
		return
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Type != nil {
		if !model.MessageType(*req.Type).Valid() {
			common.RespErrorStr(c, http.StatusBadRequest, boarderrors.ErrInvalidMessageType)
			return
		}
		fields["type"] = *req.Type
	}
	if req.Priority != nil {
		fields["priority"] = string(model.NormalizePriority(*req.Priority))
	}
	if req.Author != nil {
		fields["author"] = *req.Author
	}
	if req.AuthorInitials != nil {
		fields["author_initials"] = *req.AuthorInitials
	}
	// An update that names no known field has always been rejected on
	// the message board, unlike the calendar's no-op behavior.
	if len(fields) == 0 {
		common.RespErrorStr(c, http.StatusBadRequest, boarderrors.ErrNoFieldsToUpdate)
		return
	}

	if err := model.UpdateMessageFields(id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.RespErrorStr(c, http.StatusNotFound, boarderrors.ErrMessageNotFound)
		} else {
			common.RespError(c, http.StatusInternalServerError, boarderrors.ErrInternalServer, err)
		}
		return
	}
	common.RespSuccessStr(c, "message updated")
}

func DeleteMessage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, boarderrors.ErrInvalidParam)
		return
	}
	if err := model.DeleteMessageById(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.RespErrorStr(c, http.StatusNotFound, boarderrors.ErrMessageNotFound)
		} else {
			common.RespError(c, http.StatusInternalServerError, boarderrors.ErrInternalServer, err)
		}
		return
	}
	common.RespSuccessStr(c, "message deleted")
}

func GetMessagesByType(c *gin.Context) {
	messageType := model.MessageType(c.Param("type"))
	if !messageType.Valid() {
		common.RespErrorStr(c, http.StatusBadRequest, boarderrors.ErrInvalidMessageType)
		return
	}
	messages, err := model.GetMessagesByType(messageType)
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, boarderrors.ErrInternalServer, err)
		return
	}
	common.RespSuccess(c, messages)
}

func GetMessageStats(c *gin.Context) {
	stats, err := model.GetMessageStats()
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, boarderrors.ErrInternalServer, err)
		return
	}
	common.RespSuccess(c, stats)
}
