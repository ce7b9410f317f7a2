package word

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWordRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewHandler(newTestService(t, true))

	r := gin.New()
	words := r.Group("/api/words")
	words.GET("", handler.GetWords)
	words.GET("/full", handler.GetWordsFull)
	words.GET("/stats", handler.GetStats)
	words.POST("", handler.AddWord)
	words.DELETE("/:index", handler.DeleteWord)
	words.POST("/remember/:index", handler.RememberWord)

	entries := r.Group("/api/entries")
	entries.DELETE("/:id", handler.DeleteEntry)
	entries.POST("/:id/remember", handler.RememberEntry)
	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_AddAndStats(t *testing.T) {
	router := newWordRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/words", `{"userId":1,"word":"ability","meaning":"能力"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "单词添加成功")

	w = doJSON(t, router, http.MethodGet, "/api/words/stats?userId=1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats []Stat
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	require.Len(t, stats, 1)
	assert.Equal(t, "ability", stats[0].Word)
	assert.Zero(t, stats[0].RememberedCount)
	assert.True(t, stats[0].NeedsReview)
}

func TestHandler_AddValidation(t *testing.T) {
	router := newWordRouter(t)

	t.Run("missing userId", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/words", `{"word":"ability"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "请先登录")
	})

	t.Run("userId as string is accepted", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/words", `{"userId":"1","word":"accept"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("blank word", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/words", `{"userId":1,"word":"  "}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "单词不能为空")
	})

	t.Run("unknown user", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/words", `{"userId":42,"word":"ability"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "用户不存在")
	})
}

func TestHandler_IndexEndpoints(t *testing.T) {
	router := newWordRouter(t)
	for _, body := range []string{
		`{"userId":1,"word":"first"}`,
		`{"userId":1,"word":"second"}`,
	} {
		w := doJSON(t, router, http.MethodPost, "/api/words", body)
		require.Equal(t, http.StatusOK, w.Code)
	}

	t.Run("remember by index", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/words/remember/1?userId=1", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "单词记住次数已更新")
	})

	t.Run("delete by index shifts the list", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/api/words/0?userId=1", "")
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodGet, "/api/words?userId=1", "")
		require.Equal(t, http.StatusOK, w.Code)

		var words []string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &words))
		assert.Equal(t, []string{"second"}, words)
	})

	t.Run("out of range index", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/api/words/5?userId=1", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "无效的索引")
	})

	t.Run("missing userId is unauthorized", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/api/words/0", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "请先登录")
	})

	t.Run("malformed userId", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/api/words/0?userId=abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "用户ID格式错误")
	})
}

func TestHandler_EntryEndpoints(t *testing.T) {
	router := newWordRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/words", `{"userId":1,"word":"ability"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/words/full?userId=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var entries []Entry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	id := entries[0].ID

	t.Run("remember by entry id", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/entries/"+itoa(id)+"/remember?userId=1", "")
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("another user's entry reads as missing", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/api/entries/"+itoa(id)+"?userId=2", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "单词不存在")
	})

	t.Run("delete by entry id", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/api/entries/"+itoa(id)+"?userId=1", "")
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodDelete, "/api/entries/"+itoa(id)+"?userId=1", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed entry id", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/api/entries/abc?userId=1", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "条目ID格式错误")
	})
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
