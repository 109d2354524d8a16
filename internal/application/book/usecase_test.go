package book

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/memory"
)

// mockPublisher 记录发布的事件
type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, routingKey string, message any) error {
	return m.Called(ctx, routingKey, message).Error(0)
}

func (m *mockPublisher) Close() error { return nil }

func ptr[T any](v T) *T { return &v }

func validCreateRequest() CreateBookRequest {
	return CreateBookRequest{
		Title:       ptr("Dune"),
		Author:      ptr("Frank Herbert"),
		Description: ptr("desert planet"),
		Price:       ptr(9.99),
		Stock:       ptr(10),
	}
}

type fixture struct {
	svc       book.Service
	publisher *mockPublisher
	events    *EventEmitter
}

func newFixture() *fixture {
	publisher := new(mockPublisher)
	return &fixture{
		svc:       book.NewService(memory.NewBookRepository()),
		publisher: publisher,
		events:    NewEventEmitter(publisher),
	}
}

func eventOf(routingKey string) any {
	return mock.MatchedBy(func(e BookEvent) bool { return e.Type == routingKey })
}

func TestCreateBookUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("创建成功并发布事件", func(t *testing.T) {
		f := newFixture()
		f.publisher.On("Publish", mock.Anything, EventBookCreated, eventOf(EventBookCreated)).Return(nil)

		dto, err := NewCreateBookUseCase(f.svc, f.events).Execute(ctx, validCreateRequest())
		require.NoError(t, err)
		assert.NotEmpty(t, dto.ID)
		assert.Equal(t, "Dune", dto.Title)
		f.publisher.AssertExpectations(t)
	})

	t.Run("发布失败不影响结果", func(t *testing.T) {
		f := newFixture()
		f.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broker down"))

		dto, err := NewCreateBookUseCase(f.svc, f.events).Execute(ctx, validCreateRequest())
		require.NoError(t, err)
		assert.NotNil(t, dto)
	})

	t.Run("缺少字段不发布事件", func(t *testing.T) {
		f := newFixture()
		req := validCreateRequest()
		req.Author = nil

		_, err := NewCreateBookUseCase(f.svc, f.events).Execute(ctx, req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "author")
		f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateBookUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	req := validCreateRequest()
	req.ID = "b1"
	_, err := NewCreateBookUseCase(f.svc, f.events).Execute(ctx, req)
	require.NoError(t, err)

	uc := NewUpdateBookUseCase(f.svc, f.events)

	t.Run("空补丁返回当前记录且不发事件", func(t *testing.T) {
		dto, err := uc.Execute(ctx, "b1", UpdateBookRequest{})
		require.NoError(t, err)
		assert.Equal(t, "Dune", dto.Title)
		f.publisher.AssertNumberOfCalls(t, "Publish", 1)
	})

	t.Run("只覆盖提供的字段", func(t *testing.T) {
		dto, err := uc.Execute(ctx, "b1", UpdateBookRequest{Title: ptr("New Title")})
		require.NoError(t, err)
		assert.Equal(t, "New Title", dto.Title)
		assert.Equal(t, 9.99, dto.Price)
		f.publisher.AssertCalled(t, "Publish", mock.Anything, EventBookUpdated, eventOf(EventBookUpdated))
	})

	t.Run("不存在", func(t *testing.T) {
		_, err := uc.Execute(ctx, "missing", UpdateBookRequest{Stock: ptr(1)})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestDeleteBookUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	req := validCreateRequest()
	req.ID = "b1"
	_, err := NewCreateBookUseCase(f.svc, f.events).Execute(ctx, req)
	require.NoError(t, err)

	uc := NewDeleteBookUseCase(f.svc, f.events)
	require.NoError(t, uc.Execute(ctx, "b1"))
	f.publisher.AssertCalled(t, "Publish", mock.Anything, EventBookDeleted, eventOf(EventBookDeleted))

	assert.ErrorIs(t, uc.Execute(ctx, "b1"), book.ErrBookNotFound)
}

func TestSearchBooksUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	create := NewCreateBookUseCase(f.svc, f.events)

	for _, price := range []float64{5, 10, 10.01} {
		req := validCreateRequest()
		req.Price = ptr(price)
		_, err := create.Execute(ctx, req)
		require.NoError(t, err)
	}

	uc := NewSearchBooksUseCase(f.svc)

	t.Run("闭区间", func(t *testing.T) {
		books, err := uc.Execute(ctx, SearchBooksRequest{Title: ptr("Dune"), MinPrice: ptr(5.0), MaxPrice: ptr(10.0)})
		require.NoError(t, err)
		assert.Len(t, books, 2)
	})

	t.Run("只有最低价", func(t *testing.T) {
		_, err := uc.Execute(ctx, SearchBooksRequest{MinPrice: ptr(5.0)})
		assert.ErrorIs(t, err, book.ErrMissingMaxPrice)
	})

	t.Run("没有匹配返回空列表", func(t *testing.T) {
		books, err := uc.Execute(ctx, SearchBooksRequest{Author: ptr("nobody")})
		require.NoError(t, err)
		assert.NotNil(t, books)
		assert.Empty(t, books)
	})
}

func TestAggregateUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	uc := NewAggregateUseCase(f.svc)

	total, err := uc.TotalStock(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	authors, err := uc.ProlificAuthors(ctx)
	require.NoError(t, err)
	assert.Empty(t, authors)
}

func TestStatusUseCase(t *testing.T) {
	ctx := context.Background()
	uc := NewStatusUseCase(book.NewService(memory.NewBookRepository()), "1.2.3")

	status, err := uc.Versions(ctx)
	require.NoError(t, err)
	assert.Equal(t, &StatusResponse{MongoDB: memory.Version, Service: "1.2.3"}, status)
	assert.NoError(t, uc.Ready(ctx))
}
