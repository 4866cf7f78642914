package errors

// 通用错误
const (
	ErrInternalServer = "internal server error"
	ErrInvalidParam   = "invalid parameter"
)

// 认证错误
const (
	ErrNotLoggedIn        = "authentication required"
	ErrInvalidCredentials = "invalid username or password"
)

// 留言板错误
const (
	ErrMessageNotFound    = "message not found"
	ErrInvalidMessageType = `type must be "announcement" or "notice"`
	ErrNoFieldsToUpdate   = "no fields to update"
)

// 日历与图片错误
const (
	ErrEventNotFound        = "event not found"
	ErrInvalidEventCategory = "invalid event category"
	ErrImageNotFound        = "image not found"
	ErrUploadTooLarge       = "uploaded content exceeds the size limit"
)
