package v1

import "github.com/gin-gonic/gin"

const requestIDHeader = "X-Request-ID"

func requestID(c *gin.Context) string {
	return c.GetHeader(requestIDHeader)
}
