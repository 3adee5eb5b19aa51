package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/scottmc500/ScottLMS/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testAPI struct {
	users       *mocks.MockUserServiceInterface
	courses     *mocks.MockCourseServiceInterface
	enrollments *mocks.MockEnrollmentServiceInterface
	reconciler  *mocks.MockReconcilerInterface
	router      *gin.Engine
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	a := &testAPI{
		users:       mocks.NewMockUserServiceInterface(t),
		courses:     mocks.NewMockCourseServiceInterface(t),
		enrollments: mocks.NewMockEnrollmentServiceInterface(t),
		reconciler:  mocks.NewMockReconcilerInterface(t),
		router:      gin.New(),
	}
	api := &API{
		Users:       NewUserHandler(a.users),
		Courses:     NewCourseHandler(a.courses, a.enrollments, a.reconciler),
		Enrollments: NewEnrollmentHandler(a.enrollments),
	}
	api.Register(a.router.Group("/api/v1"))
	return a
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
