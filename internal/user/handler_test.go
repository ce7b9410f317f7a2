package user

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := newTestService(t)
	handler := NewHandler(service)

	r := gin.New()
	auth := r.Group("/api/auth")
	auth.POST("/register", handler.Register)
	auth.POST("/login", handler.Login)
	auth.POST("/verify", handler.Verify)
	auth.POST("/avatar", handler.UploadAvatar)
	auth.POST("/random-avatar", handler.SetRandomAvatar)
	auth.GET("/avatar/:filename", handler.GetAvatar)
	auth.POST("/update-daily-tasks", handler.UpdateDailyTasks)
	return r, service
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_RegisterLoginVerify(t *testing.T) {
	router, _ := newAuthRouter(t)

	w := postJSON(t, router, "/api/auth/register", `{"username":"alice","password":"pw123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var registered Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.Equal(t, "alice", registered.Username)

	// 重复注册
	w = postJSON(t, router, "/api/auth/register", `{"username":"alice","password":"other"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	// 空字段
	w = postJSON(t, router, "/api/auth/register", `{"username":"","password":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 登录
	w = postJSON(t, router, "/api/auth/login", `{"username":"alice","password":"pw123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// 错误凭证
	w = postJSON(t, router, "/api/auth/login", `{"username":"alice","password":"bad"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// verify接受数字和字符串形式的userId
	for _, body := range []string{
		`{"userId":1}`,
		`{"userId":"1"}`,
	} {
		w = postJSON(t, router, "/api/auth/verify", body)
		require.Equal(t, http.StatusOK, w.Code, "body: %s", body)

		var verified Profile
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verified))
		assert.Equal(t, registered.DailyTasks, verified.DailyTasks)
	}

	// 不存在的用户
	w = postJSON(t, router, "/api/auth/verify", `{"userId":999}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 非法的userId
	w = postJSON(t, router, "/api/auth/verify", `{"userId":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// buildAvatarForm 构造一个multipart表单，contentType是文件part的MIME类型
func buildAvatarForm(t *testing.T, userID, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	require.NoError(t, mw.WriteField("userId", userID))

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="avatar"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestHandler_AvatarUploadAndServe(t *testing.T) {
	router, _ := newAuthRouter(t)

	w := postJSON(t, router, "/api/auth/register", `{"username":"alice","password":"pw123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("upload png then fetch it back", func(t *testing.T) {
		body, contentType := buildAvatarForm(t, "1", "me.png", "image/png", []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/api/auth/avatar", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			AvatarURL string `json:"avatarUrl"`
			Message   string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, strings.HasSuffix(resp.AvatarURL, ".png"))

		get := httptest.NewRequest(http.MethodGet, "/api/auth/avatar/"+resp.AvatarURL, nil)
		got := httptest.NewRecorder()
		router.ServeHTTP(got, get)

		require.Equal(t, http.StatusOK, got.Code)
		assert.Equal(t, "image/png", got.Header().Get("Content-Type"))
		assert.Equal(t, "png-bytes", got.Body.String())
	})

	t.Run("unsupported mime type is rejected", func(t *testing.T) {
		body, contentType := buildAvatarForm(t, "1", "notes.txt", "text/plain", []byte("hello"))
		req := httptest.NewRequest(http.MethodPost, "/api/auth/avatar", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("oversized upload is rejected", func(t *testing.T) {
		body, contentType := buildAvatarForm(t, "1", "big.jpg", "image/jpeg", bytes.Repeat([]byte("a"), 5*1024*1024+1))
		req := httptest.NewRequest(http.MethodPost, "/api/auth/avatar", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("upload for absent user is unauthorized", func(t *testing.T) {
		body, contentType := buildAvatarForm(t, "999", "me.png", "image/png", []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/api/auth/avatar", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing avatar file returns 404", func(t *testing.T) {
		get := httptest.NewRequest(http.MethodGet, "/api/auth/avatar/nope.png", nil)
		got := httptest.NewRecorder()
		router.ServeHTTP(got, get)
		assert.Equal(t, http.StatusNotFound, got.Code)
	})
}

func TestCoerceUserID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  any
		want   uint
		wantOK bool
	}{
		{name: "json number", input: float64(7), want: 7, wantOK: true},
		{name: "string number", input: "7", want: 7, wantOK: true},
		{name: "string with spaces", input: " 7 ", want: 7, wantOK: true},
		{name: "negative number", input: float64(-1), wantOK: false},
		{name: "fractional number", input: float64(1.5), wantOK: false},
		{name: "non numeric string", input: "abc", wantOK: false},
		{name: "nil", input: nil, wantOK: false},
		{name: "bool", input: true, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CoerceUserID(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
