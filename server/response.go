package server

import (
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

const (
	RequestIDHeaderKey = "X-Request-Id"

	requestIDKey = "requestID"
	errorKey     = "error"
)

// Response 通用响应体
type Response struct {
	Message   string `json:"message"`
	Data      any    `json:"data"`
	RequestID string `json:"requestID"`
}

func getRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func setRequestID(c *gin.Context, requestID string) {
	c.Set(requestIDKey, requestID)
}

// 手动设置的错误信息，供访问日志使用
func setError(c *gin.Context, err error) {
	c.Set(errorKey, err.Error())
}

func getError(c *gin.Context) (string, bool) {
	errStr := c.GetString(errorKey)
	return errStr, errStr != ""
}

// 32 位十六进制，不带连字符
func genRequestID() string {
	return hex.EncodeToString(uuid.Must(uuid.NewV4()).Bytes())
}

func setResp(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, Response{Message: "", Data: data, RequestID: getRequestID(c)})
}

// setErrResp 根据错误类型选择状态码
func setErrResp(c *gin.Context, err error) {
	setError(c, err)
	c.JSON(errorStatus(err), Response{Message: err.Error(), Data: nil, RequestID: getRequestID(c)})
}

func setBadRequest(c *gin.Context, message string) {
	c.Set(errorKey, message)
	c.JSON(http.StatusBadRequest, Response{Message: message, Data: nil, RequestID: getRequestID(c)})
}
