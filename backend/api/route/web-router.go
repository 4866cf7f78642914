package route

import (
	"bulletin-board/backend/common"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// setWebRouter serves the uploaded files by exact stored name. No
// directory listing; the stored name is the only key.
func setWebRouter(route *gin.Engine) {
	route.Use(static.Serve("/uploads", static.LocalFile(common.UploadPath, false)))
}
