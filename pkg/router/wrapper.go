package router

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samplefinder/backend/pkg/errorx"
	"github.com/samplefinder/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request
		var err error
		switch method {
		case http.MethodGet:
			err = c.ShouldBindQuery(&req)
		case http.MethodPost:
			err = c.ShouldBindJSON(&req)
			// An absent body is a valid empty request.
			if errors.Is(err, io.EOF) {
				err = nil
			}
		default:
			err = errors.New("unsupported method")
		}

		if err != nil {
			writeError(c, errorx.New(errorx.BadRequest, "Cannot parse the request body"))
			return
		}

		ctx := c.Request.Context()
		ctx = xcontext.WithConfigs(ctx, router.cfg)
		ctx = xcontext.WithLogger(ctx, router.logger)

		resp, err := handler(ctx, &req)
		if err != nil {
			writeError(c, err)
			return
		}

		writeSuccess(c, resp)
	}
}
