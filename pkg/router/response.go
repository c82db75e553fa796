package router

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samplefinder/backend/pkg/errorx"
)

// writeSuccess flattens the handler response into the success envelope, so
// payload fields sit next to the success flag instead of under a data key.
func writeSuccess(c *gin.Context, data any) {
	envelope := map[string]any{"success": true}

	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			writeError(c, errorx.New(errorx.Internal, "Cannot write the response"))
			return
		}

		payload := map[string]any{}
		if err := json.Unmarshal(b, &payload); err != nil {
			writeError(c, errorx.New(errorx.Internal, "Cannot write the response"))
			return
		}

		for key, value := range payload {
			if key != "success" {
				envelope[key] = value
			}
		}
	}

	c.JSON(http.StatusOK, envelope)
}

func writeError(c *gin.Context, err error) {
	errx := errorx.Error{}
	if !errors.As(err, &errx) {
		errx = errorx.Unknown
	}

	c.JSON(errorx.StatusCode(errx.Code), map[string]any{
		"success": false,
		"error":   errx.Message,
	})
}
