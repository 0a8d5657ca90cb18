package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"kilngas/logging"
)

// RequestID 沿用客户端传入的 32 位请求 ID，否则重新生成
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeaderKey)
		if requestID == "" || len(requestID) != 32 {
			requestID = genRequestID()
		}
		setRequestID(c, requestID)
		c.Writer.Header().Set(RequestIDHeaderKey, requestID)

		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// 以手动设置的错误为主，否则检查 c.Errors
		errStr, hasErr := getError(c)
		if !hasErr && len(c.Errors) > 0 {
			errStr = c.Errors.String()
			hasErr = true
		}

		// 单位 ms，最小 1ms
		latency := float64(time.Since(start)/time.Millisecond) + 1

		fields := logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"params":    c.Request.URL.RawQuery,
			"status":    c.Writer.Status(),
			"latency":   latency,
			"requestID": getRequestID(c),
			"clientIP":  c.ClientIP(),
			"error":     errStr,
		}

		logger := logging.GetAccessLogger()
		if hasErr {
			logger.WithFields(fields).Error("-")
		} else {
			logger.WithFields(fields).Info("-")
		}
	}
}
