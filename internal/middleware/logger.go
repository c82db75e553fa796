package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samplefinder/backend/pkg/logger"
)

func Logger(l logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()

		l.Infof("%s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(begin))
	}
}
