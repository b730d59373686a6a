package common

import "github.com/gin-gonic/gin"

// ErrorResponse is the error body shape the admin SPA and the public site
// scripts expect: a single short message under "error".
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespError writes an error response with the given status code.
func RespError(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, ErrorResponse{Error: msg})
}

// RespErrorWithErr appends the underlying error detail to the message.
func RespErrorWithErr(c *gin.Context, statusCode int, msg string, err error) {
	errMsg := msg
	if err != nil {
		errMsg = msg + ": " + err.Error()
	}
	c.JSON(statusCode, ErrorResponse{Error: errMsg})
}
