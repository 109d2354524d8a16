// Package integration 针对运行中的服务做端到端测试
// 需要先启动服务（MongoDB存储），并设置BOOKSHELF_TEST_BASE_URL，如http://localhost:8080
package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Timeout HTTP请求超时时间
const Timeout = 10 * time.Second

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// BookData 图书响应数据
type BookData struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// BaseURL 未设置环境变量时跳过测试
func BaseURL(t *testing.T) string {
	t.Helper()
	url := os.Getenv("BOOKSHELF_TEST_BASE_URL")
	if url == "" {
		t.Skip("未设置BOOKSHELF_TEST_BASE_URL，跳过集成测试")
	}
	return url
}

// DoJSON 发送请求并解析统一响应
// 204等没有响应体时返回nil
func DoJSON(t *testing.T, method, url string, data any, headers map[string]string) (int, *Response) {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")
	if len(raw) == 0 {
		return resp.StatusCode, nil
	}

	var result Response
	require.NoError(t, json.Unmarshal(raw, &result), "解析JSON响应失败: %s", string(raw))
	return resp.StatusCode, &result
}

// CreateTestBook 创建一本书名唯一的图书
func CreateTestBook(t *testing.T, baseURL, title, author string, price float64, stock int) BookData {
	t.Helper()

	status, resp := DoJSON(t, http.MethodPost, baseURL+"/book/", map[string]any{
		"_id":         uuid.NewString(),
		"title":       title,
		"author":      author,
		"description": "integration test",
		"price":       price,
		"stock":       stock,
	}, nil)
	require.Equal(t, http.StatusCreated, status, "创建图书失败: %+v", resp)

	var book BookData
	require.NoError(t, json.Unmarshal(resp.Data, &book))
	return book
}

// UniqueName 带随机后缀的名字，避免与已有数据冲突
func UniqueName(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}
