package book

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

func ptr[T any](v T) *T { return &v }

func validCreateParams() CreateParams {
	return CreateParams{
		Title:       ptr("Dune"),
		Author:      ptr("Frank Herbert"),
		Description: ptr("Desert planet"),
		Price:       ptr(9.99),
		Stock:       ptr(3),
	}
}

func TestNewBook(t *testing.T) {
	t.Run("未提供ID时生成UUID", func(t *testing.T) {
		b, err := NewBook(validCreateParams())
		require.NoError(t, err)

		_, parseErr := uuid.Parse(b.ID)
		assert.NoError(t, parseErr, "ID应该是合法UUID")
		assert.Equal(t, "Dune", b.Title)
		assert.Equal(t, 9.99, b.Price)
		assert.Equal(t, 3, b.Stock)
	})

	t.Run("保留调用方提供的ID", func(t *testing.T) {
		p := validCreateParams()
		p.ID = "book-1"

		b, err := NewBook(p)
		require.NoError(t, err)
		assert.Equal(t, "book-1", b.ID)
	})

	t.Run("价格为负不报错", func(t *testing.T) {
		p := validCreateParams()
		p.Price = ptr(-1.0)

		b, err := NewBook(p)
		require.NoError(t, err)
		assert.Equal(t, -1.0, b.Price)
	})

	missing := map[string]func(*CreateParams){
		FieldTitle:       func(p *CreateParams) { p.Title = nil },
		FieldAuthor:      func(p *CreateParams) { p.Author = nil },
		FieldDescription: func(p *CreateParams) { p.Description = nil },
		FieldPrice:       func(p *CreateParams) { p.Price = nil },
		FieldStock:       func(p *CreateParams) { p.Stock = nil },
	}
	for field, drop := range missing {
		t.Run("缺少"+field, func(t *testing.T) {
			p := validCreateParams()
			drop(&p)

			b, err := NewBook(p)
			assert.Nil(t, b)
			require.Error(t, err)

			appErr := apperrors.GetAppError(err)
			assert.Equal(t, apperrors.ErrCodeInvalidInput, appErr.Code)
			assert.Contains(t, appErr.Message, field)
		})
	}
}

func TestUpdate_Patch(t *testing.T) {
	t.Run("null字段不进入补丁", func(t *testing.T) {
		u := Update{Title: ptr("New Title"), Price: nil}
		assert.Equal(t, Patch{FieldTitle: "New Title"}, u.Patch())
	})

	t.Run("零值也是显式提供", func(t *testing.T) {
		u := Update{Stock: ptr(0), Description: ptr("")}
		assert.Equal(t, Patch{FieldStock: 0, FieldDescription: ""}, u.Patch())
	})

	t.Run("全部为空得到空补丁", func(t *testing.T) {
		assert.Empty(t, Update{}.Patch())
	})
}

func TestDocumentRoundTrip(t *testing.T) {
	b := &Book{ID: "b-1", Title: "Dune", Author: "Herbert", Description: "d", Price: 12.5, Stock: 7}
	assert.Equal(t, b, FromDocument(b.ToDocument()))

	t.Run("兼容存储层的数值类型", func(t *testing.T) {
		doc := Document{FieldID: "b-2", FieldPrice: int32(10), FieldStock: int64(4)}
		got := FromDocument(doc)
		assert.Equal(t, 10.0, got.Price)
		assert.Equal(t, 4, got.Stock)
	})
}
