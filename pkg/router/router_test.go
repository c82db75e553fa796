package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/samplefinder/backend/config"
	"github.com/samplefinder/backend/pkg/errorx"
	"github.com/samplefinder/backend/pkg/logger"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Name string `json:"name"`
}

type echoResponse struct {
	Greeting string `json:"greeting"`
	Count    int    `json:"count"`
}

func newRouterForTest() *Router {
	return New(config.Configs{}, logger.NewLogger(logger.SILENCE))
}

func serve(t *testing.T, r *Router, method, path, body string) (int, map[string]any) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	r.Handler().ServeHTTP(recorder, req)

	parsed := map[string]any{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &parsed))
	return recorder.Code, parsed
}

func Test_Router(t *testing.T) {
	t.Run("the payload is flattened into the success envelope", func(t *testing.T) {
		r := newRouterForTest()
		POST(r, "/echo", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
			return &echoResponse{Greeting: "hello " + req.Name, Count: 1}, nil
		})

		code, body := serve(t, r, http.MethodPost, "/echo", `{"name":"sam"}`)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, true, body["success"])
		require.Equal(t, "hello sam", body["greeting"])
		require.Equal(t, float64(1), body["count"])
	})

	t.Run("an empty body is a valid empty request", func(t *testing.T) {
		r := newRouterForTest()
		POST(r, "/echo", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
			return &echoResponse{Greeting: "hello " + req.Name}, nil
		})

		code, body := serve(t, r, http.MethodPost, "/echo", "")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, true, body["success"])
	})

	t.Run("a malformed body is a bad request", func(t *testing.T) {
		r := newRouterForTest()
		POST(r, "/echo", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
			return &echoResponse{}, nil
		})

		code, body := serve(t, r, http.MethodPost, "/echo", `{"name":`)
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, false, body["success"])
		require.Equal(t, "Cannot parse the request body", body["error"])
	})

	t.Run("domain errors map to their status codes", func(t *testing.T) {
		testcases := []struct {
			err      error
			expected int
		}{
			{errorx.New(errorx.BadRequest, "bad"), http.StatusBadRequest},
			{errorx.New(errorx.NotFound, "missing"), http.StatusNotFound},
			{errorx.New(errorx.AlreadyExists, "dup"), http.StatusConflict},
			{errorx.New(errorx.PreconditionFailed, "nope"), http.StatusPreconditionFailed},
			{errorx.New(errorx.Unavailable, "later"), http.StatusServiceUnavailable},
			{errorx.New(errorx.Internal, "broken"), http.StatusInternalServerError},
		}

		for _, tc := range testcases {
			r := newRouterForTest()
			failure := tc.err
			POST(r, "/fail", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
				return nil, failure
			})

			code, body := serve(t, r, http.MethodPost, "/fail", `{}`)
			require.Equal(t, tc.expected, code)
			require.Equal(t, false, body["success"])
		}
	})

	t.Run("an unrecognized error is masked", func(t *testing.T) {
		r := newRouterForTest()
		POST(r, "/fail", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
			return nil, context.DeadlineExceeded
		})

		code, body := serve(t, r, http.MethodPost, "/fail", `{}`)
		require.Equal(t, http.StatusInternalServerError, code)
		require.Equal(t, errorx.Unknown.Message, body["error"])
	})
}
