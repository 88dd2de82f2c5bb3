package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the single-field error payload of every failed API call.
type ErrorBody struct {
	Error string `json:"error"`
}

// SuccessBody acknowledges actions that return no data.
type SuccessBody struct {
	Success bool `json:"success"`
}

// Success sends data as the JSON body with the given status code.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// OK sends {"success": true}.
func OK(c *gin.Context, statusCode int) {
	c.JSON(statusCode, SuccessBody{Success: true})
}

// Fail sends the localized message for code.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, ErrorBody{Error: GetMessage(code)})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{Error: GetMessage(code)})
}
