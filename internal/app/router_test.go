package app_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

		"photoshoot_backend/internal/app"
	"photoshoot_backend/internal/config"
	"photoshoot_backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code    int              `json:"code"`
	Message string           `json:"message"`
	Data    []map[string]any `json:"data"`
}

type testServer struct {
	t           *testing.T
	router      *gin.Engine
	pictureRoot string
}

func newTestServer(t *testing.T, maxUpload int64) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Server.Env = "test"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Upload.MaxSize = maxUpload

	router, err := app.SetupRouter(cfg, testutil.OpenTestDB(t))
	require.NoError(t, err)

	return &testServer{t: t, router: router, pictureRoot: cfg.Storage.BasePath}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	s.t.Helper()
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) json(method, target string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return s.do(req)
}

func (s *testServer) upload(target string, fields map[string]string, fileName string, content []byte) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(s.t, mw.WriteField(k, v))
	}
	if fileName != "" {
		part, err := mw.CreateFormFile("file", fileName)
		require.NoError(s.t, err)
		_, err = part.Write(content)
		require.NoError(s.t, err)
	}
	require.NoError(s.t, mw.Close())

	req := httptest.NewRequest(http.MethodPut, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return s.do(req)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body.Message
}

func (s *testServer) createShoot(title string) string {
	s.t.Helper()
	w := s.json(http.MethodPost, "/photo_shoot", map[string]any{"title": title})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	env := decode(s.t, w)
	require.Len(s.t, env.Data, 1)
	return env.Data[0]["id"].(string)
}

func (s *testServer) createLookBook(shootID string) string {
	s.t.Helper()
	w := s.json(http.MethodPost, "/look_book", map[string]any{"photoShootId": shootID, "author1": "A", "author2": "B"})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	return decode(s.t, w).Data[0]["id"].(string)
}

func TestRouter_PhotoShootAndLookBookScenario(t *testing.T) {
	srv := newTestServer(t, 0)

	w := srv.json(http.MethodPost, "/photo_shoot", map[string]any{"title": "Fall Shoot"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	env := decode(t, w)
	assert.Equal(t, http.StatusCreated, env.Code)
	require.Len(t, env.Data, 1)
	shootID, _ := env.Data[0]["id"].(string)
	require.NotEmpty(t, shootID)
	assert.Equal(t, "ACTIVE", env.Data[0]["status"])

	w = srv.json(http.MethodPost, "/look_book", map[string]any{"photoShootId": shootID, "author1": "A", "author2": "B"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	env = decode(t, w)
	assert.Equal(t, "Look Book created successfully", env.Message)
	assert.Equal(t, shootID, env.Data[0]["photoShootId"])
	assert.Equal(t, "B", env.Data[0]["author2"])

	w = srv.do(httptest.NewRequest(http.MethodGet, "/look_book/id?photo_shoot_id="+shootID, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w).Data, 1)

	w = srv.do(httptest.NewRequest(http.MethodGet, "/photo_shoot?photo_shoot_id="+shootID, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Fall Shoot", decode(t, w).Data[0]["title"])
}

func TestRouter_PaymentsOfMissingShoot(t *testing.T) {
	srv := newTestServer(t, 0)

	w := srv.do(httptest.NewRequest(http.MethodGet, "/payment/id?photo_shoot_id=no-such-shoot", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, errorMessage(t, w), "no-such-shoot")
}

func TestRouter_UpdateAndDelete(t *testing.T) {
	srv := newTestServer(t, 0)
	shootID := srv.createShoot("Fall Shoot")

	w := srv.json(http.MethodPost, "/schedule", map[string]any{"startDate": "2024-10-01", "endDate": "2024-10-02", "photoShootId": shootID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	scheduleID := decode(t, w).Data[0]["id"].(string)

	t.Run("update answers 201", func(t *testing.T) {
		w := srv.json(http.MethodPut, "/schedule?schedule_id="+scheduleID,
			map[string]any{"startDate": "2024-11-01", "endDate": "2024-11-03", "photoShootId": shootID})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		env := decode(t, w)
		assert.Equal(t, "Schedule updated successfully", env.Message)
		assert.Equal(t, scheduleID, env.Data[0]["id"])
		assert.Equal(t, "2024-11-01", env.Data[0]["startDate"])
	})

	t.Run("update to missing parent", func(t *testing.T) {
		w := srv.json(http.MethodPut, "/schedule?schedule_id="+scheduleID,
			map[string]any{"startDate": "2030-01-01", "endDate": "2030-01-02", "photoShootId": "gone"})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, errorMessage(t, w), "gone")
	})

	t.Run("delete twice", func(t *testing.T) {
		w := srv.do(httptest.NewRequest(http.MethodDelete, "/schedule?schedule_id="+scheduleID, nil))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.NotContains(t, w.Body.String(), `"data"`)
		assert.Equal(t, "Schedule successfully deleted", decode(t, w).Message)

		w = srv.do(httptest.NewRequest(http.MethodDelete, "/schedule?schedule_id="+scheduleID, nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, errorMessage(t, w), scheduleID)
	})

	t.Run("get all keeps an empty list", func(t *testing.T) {
		w := srv.do(httptest.NewRequest(http.MethodGet, "/schedule/all", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})
}

func TestRouter_BadRequests(t *testing.T) {
	srv := newTestServer(t, 0)
	shootID := srv.createShoot("Fall Shoot")

	tests := []struct {
		name     string
		method   string
		target   string
		body     any
		contains string
	}{
		{"blank title", http.MethodPost, "/photo_shoot", map[string]any{"title": "   "}, "title"},
		{"missing amount", http.MethodPost, "/payment", map[string]any{"photoShootId": shootID}, "amount"},
		{"missing author", http.MethodPost, "/look_book", map[string]any{"photoShootId": shootID}, "author1"},
		{"missing id param", http.MethodGet, "/photo_shoot", nil, "photo_shoot_id"},
		{"missing id on update", http.MethodPut, "/payment", map[string]any{"amount": 10, "photoShootId": shootID}, "payment_id"},
		{"missing parent param", http.MethodGet, "/look_book/id", nil, "photo_shoot_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.json(tt.method, tt.target, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Contains(t, errorMessage(t, w), tt.contains)
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/photo_shoot", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		w := srv.do(req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRouter_Uploads(t *testing.T) {
	srv := newTestServer(t, 1024)
	lookBookID := srv.createLookBook(srv.createShoot("Fall Shoot"))

	w := srv.upload("/upload?look_book_id="+url.QueryEscape(lookBookID), nil, "photo.jpg", []byte("jpeg"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	env := decode(t, w)
	assert.Equal(t, "Picture Upload created successfully", env.Message)

	upload := env.Data[0]
	fileName := upload["fileName"].(string)
	assert.Regexp(t, `^`+lookBookID+`_\d{14}\.jpg$`, fileName)
	assert.Equal(t, "image/jpeg", upload["mimeType"])
	assert.Equal(t, filepath.Join(srv.pictureRoot, fileName), upload["url"])

	written, err := os.ReadFile(filepath.Join(srv.pictureRoot, fileName))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(written))

	t.Run("parameters from the form body", func(t *testing.T) {
		w := srv.upload("/upload", map[string]string{"look_book_id": lookBookID}, "second.png", []byte("png"))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("listing by look book", func(t *testing.T) {
		w := srv.do(httptest.NewRequest(http.MethodGet, "/upload/look_book?look_book_id="+lookBookID, nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode(t, w).Data, 2)
	})

	t.Run("replace keeps the record", func(t *testing.T) {
		uploadID := upload["id"].(string)
		w := srv.upload("/upload/id?upload_id="+uploadID, nil, "replacement.gif", []byte("GIF89a"))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		env := decode(t, w)
		assert.Equal(t, uploadID, env.Data[0]["id"])
		assert.Equal(t, lookBookID, env.Data[0]["lookBookId"])
		assert.Equal(t, "image/gif", env.Data[0]["mimeType"])
	})

	t.Run("unknown look book", func(t *testing.T) {
		w := srv.upload("/upload?look_book_id=LB-missing", nil, "photo.jpg", []byte("jpeg"))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, errorMessage(t, w), "LB-missing")
	})

	t.Run("missing file", func(t *testing.T) {
		w := srv.upload("/upload?look_book_id="+lookBookID, nil, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("too large", func(t *testing.T) {
		w := srv.upload("/upload?look_book_id="+lookBookID, nil, "big.jpg", bytes.Repeat([]byte("x"), 4096))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRouter_OperationalEndpoints(t *testing.T) {
	srv := newTestServer(t, 0)
	srv.createShoot("Fall Shoot")

	t.Run("health", func(t *testing.T) {
		w := srv.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("request id is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("X-Request-ID", "req-123")
		w := srv.do(req)
		assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	})

	t.Run("metrics", func(t *testing.T) {
		w := srv.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `http_requests_total{method="POST",route="/photo_shoot",status="201"} 1`)
		assert.Contains(t, body, `photoshoot_entity_operations_total{kind="Photo Shoot",operation="create",outcome="success"} 1`)
	})

	t.Run("swagger document", func(t *testing.T) {
		w := srv.do(httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var doc struct {
			Paths map[string]map[string]json.RawMessage `json:"paths"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

		for _, route := range srv.router.Routes() {
			if route.Path == "/metrics" || strings.HasPrefix(route.Path, "/swagger") {
				continue
			}
			assert.Contains(t, doc.Paths[route.Path], strings.ToLower(route.Method), "%s %s is undocumented", route.Method, route.Path)
		}
	})
}
