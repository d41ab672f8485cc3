package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func Paginated(c *gin.Context, code int, data interface{}, pagination *Pagination) {
	c.JSON(code, APIResponse{
		Success:    true,
		Data:       data,
		Pagination: pagination,
	})
}

func Error(c *gin.Context, code int, errors ...string) {
	c.JSON(code, APIResponse{
		Success: false,
		Errors:  errors,
	})
}
