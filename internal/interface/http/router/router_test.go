package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/mq"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Mode = gin.TestMode
	cfg.Activity.MaxEntries = 3

	svc := book.NewService(memory.NewBookRepository())
	events := appbook.NewEventEmitter(mq.NoopPublisher{})
	activityStore := redis.NewActivityStore(nil, cfg)

	return New(cfg, &Handlers{
		Book: handler.NewBookHandler(
			appbook.NewCreateBookUseCase(svc, events),
			appbook.NewGetBookUseCase(svc),
			appbook.NewListBooksUseCase(svc),
			appbook.NewUpdateBookUseCase(svc, events),
			appbook.NewDeleteBookUseCase(svc, events),
		),
		Search:    handler.NewSearchHandler(appbook.NewSearchBooksUseCase(svc)),
		Aggregate: handler.NewAggregateHandler(appbook.NewAggregateUseCase(svc)),
		Status:    handler.NewStatusHandler(appbook.NewStatusUseCase(svc, "test")),
		Activity:  handler.NewActivityHandler(activityStore),
	}, activityStore)
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func bookJSON(id, title, author string, stock int) string {
	b, _ := json.Marshal(map[string]any{
		"_id":         id,
		"title":       title,
		"author":      author,
		"description": "desc",
		"price":       10.5,
		"stock":       stock,
	})
	return string(b)
}

func TestBookRoutes(t *testing.T) {
	r := setupRouter(t)

	t.Run("创建图书返回201", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/book/", bookJSON("b1", "Dune", "Frank Herbert", 3))
		require.Equal(t, http.StatusCreated, w.Code)

		var got appbook.BookDTO
		decode(t, w, &got)
		assert.Equal(t, "b1", got.ID)
		assert.Equal(t, "Dune", got.Title)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("id字段也可以指定ID", func(t *testing.T) {
		body := `{"id":"b2","title":"Emma","author":"Jane Austen","description":"d","price":5,"stock":1}`
		w := doRequest(r, http.MethodPost, "/book/", body)
		require.Equal(t, http.StatusCreated, w.Code)

		var got appbook.BookDTO
		decode(t, w, &got)
		assert.Equal(t, "b2", got.ID)
	})

	t.Run("未指定ID时自动生成", func(t *testing.T) {
		body := `{"title":"Ulysses","author":"James Joyce","description":"d","price":7,"stock":2}`
		w := doRequest(r, http.MethodPost, "/book/", body)
		require.Equal(t, http.StatusCreated, w.Code)

		var got appbook.BookDTO
		decode(t, w, &got)
		assert.NotEmpty(t, got.ID)
	})

	t.Run("ID重复返回409", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/book/", bookJSON("b1", "Dune", "Frank Herbert", 3))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, apperrors.ErrCodeBookDuplicate, decode(t, w, nil).Code)
	})

	t.Run("缺少字段返回422", func(t *testing.T) {
		body := `{"title":"Dune","author":"Frank Herbert","description":"d","price":1}`
		w := doRequest(r, http.MethodPost, "/book/", body)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		env := decode(t, w, nil)
		assert.Equal(t, apperrors.ErrCodeInvalidInput, env.Code)
		assert.Contains(t, env.Message, "stock")
	})

	t.Run("请求体格式错误返回400", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/book/", `{"price":"cheap"`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decode(t, w, nil)
		assert.Equal(t, apperrors.ErrCodeBindError, env.Code)
		assert.Equal(t, apperrors.ErrBindError.Message, env.Message)
	})

	t.Run("查询单本", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/book/b1", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got appbook.BookDTO
		decode(t, w, &got)
		assert.Equal(t, "Frank Herbert", got.Author)
	})

	t.Run("查询不存在返回404", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/book/missing", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, apperrors.ErrCodeBookNotFound, decode(t, w, nil).Code)
	})

	t.Run("列表", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/book/", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got []appbook.BookDTO
		decode(t, w, &got)
		assert.Len(t, got, 3)
	})

	t.Run("更新忽略null字段", func(t *testing.T) {
		w := doRequest(r, http.MethodPut, "/book/b1", `{"title":"New Title","price":null}`)
		require.Equal(t, http.StatusOK, w.Code)

		var got appbook.BookDTO
		decode(t, w, &got)
		assert.Equal(t, "New Title", got.Title)
		assert.Equal(t, 10.5, got.Price)
	})

	t.Run("空更新返回当前记录", func(t *testing.T) {
		w := doRequest(r, http.MethodPut, "/book/b1", `{}`)
		require.Equal(t, http.StatusOK, w.Code)

		var got appbook.BookDTO
		decode(t, w, &got)
		assert.Equal(t, "New Title", got.Title)
	})

	t.Run("更新不存在返回404", func(t *testing.T) {
		w := doRequest(r, http.MethodPut, "/book/missing", `{"stock":1}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("删除返回204", func(t *testing.T) {
		w := doRequest(r, http.MethodDelete, "/book/b2", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())

		w = doRequest(r, http.MethodDelete, "/book/b2", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSearchRoute(t *testing.T) {
	r := setupRouter(t)
	for i, price := range []string{"5", "10", "10.01"} {
		body := `{"_id":"s` + string(rune('0'+i)) + `","title":"Dune","author":"Frank Herbert","description":"d","price":` + price + `,"stock":1}`
		require.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/book/", body).Code)
	}

	t.Run("闭区间", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/search/?min_price=5&max_price=10", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got []appbook.BookDTO
		decode(t, w, &got)
		assert.Len(t, got, 2)
	})

	t.Run("只有最高价", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/search/?max_price=20&title=Dune", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got []appbook.BookDTO
		decode(t, w, &got)
		assert.Len(t, got, 3)
	})

	t.Run("只有最低价返回422", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/search/?min_price=5", "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		env := decode(t, w, nil)
		assert.Equal(t, apperrors.ErrCodeInvalidRange, env.Code)
		assert.Equal(t, "missing max price", env.Message)
	})

	t.Run("区间颠倒返回422", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/search/?min_price=15&max_price=10", "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "invalid price range", decode(t, w, nil).Message)
	})

	t.Run("价格不是数字返回400", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/search/?max_price=abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apperrors.ErrCodeBindError, decode(t, w, nil).Code)
	})

	t.Run("空的最高价视为未给出", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/search/?max_price=", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got []appbook.BookDTO
		decode(t, w, &got)
		assert.Len(t, got, 3)
	})

	t.Run("最低价加空的最高价返回422", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/search/?min_price=5&max_price=", "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "missing max price", decode(t, w, nil).Message)
	})

	t.Run("没有匹配返回空列表", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/search/?author=nobody", "")
		require.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w, nil)
		assert.JSONEq(t, `[]`, string(env.Data))
	})
}

func TestAggregateRoutes(t *testing.T) {
	r := setupRouter(t)

	t.Run("空集合库存为0", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/aggregate/count", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `0`, string(decode(t, w, nil).Data))
	})

	require.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/book/", bookJSON("a1", "A", "X", 3)).Code)
	require.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/book/", bookJSON("a2", "A", "X", 5)).Code)
	require.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/book/", bookJSON("b1", "B", "X", 10)).Code)
	require.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/book/", bookJSON("c1", "C", "Y", 1)).Code)

	t.Run("库存总数", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/aggregate/count", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `19`, string(decode(t, w, nil).Data))
	})

	t.Run("畅销书保留代表记录的库存", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/aggregate/best-selling", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got []appbook.BookDTO
		decode(t, w, &got)
		require.Len(t, got, 3)
		assert.Equal(t, "b1", got[0].ID)
		assert.Equal(t, "a1", got[1].ID)
		assert.Equal(t, 3, got[1].Stock)
		assert.Equal(t, "c1", got[2].ID)
	})

	t.Run("高产作者", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/aggregate/prolific-author", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got []string
		decode(t, w, &got)
		assert.Equal(t, []string{"X", "Y"}, got)
	})
}

func TestSystemRoutes(t *testing.T) {
	r := setupRouter(t)

	t.Run("版本信息", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got appbook.StatusResponse
		decode(t, w, &got)
		assert.Equal(t, appbook.StatusResponse{MongoDB: memory.Version, Service: "test"}, got)
	})

	t.Run("存活与就绪", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, doRequest(r, http.MethodGet, "/ping", "").Code)
		assert.Equal(t, http.StatusOK, doRequest(r, http.MethodGet, "/readyz", "").Code)
	})

	t.Run("未启用Redis时活动记录为空", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/activity/client-1", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, string(decode(t, w, nil).Data))
	})

	t.Run("指标", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/metrics", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "http_requests_total")
	})
}
