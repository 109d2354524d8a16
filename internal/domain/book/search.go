package book

// SearchParams 搜索请求的原始输入
// 指针为nil表示未提供
type SearchParams struct {
	Title    *string
	Author   *string
	MinPrice *float64
	MaxPrice *float64
}

// Search 已校验的搜索请求（不可变）
type Search struct {
	title      *string
	author     *string
	minPrice   *float64
	maxPrice   *float64
	impliedMin bool // minPrice由maxPrice推导出的0
}

// NewSearch 校验价格区间并构造搜索请求
// 规则按顺序执行：
// 1. 有最低价无最高价 → ErrMissingMaxPrice
// 2. 两者都有且最低价 > 最高价 → ErrInvalidPriceRange
// 3. 只有最高价 → 最低价取0（不校验最高价为负）
// 4. 都没有 → 不做价格过滤
func NewSearch(p SearchParams) (Search, error) {
	s := Search{
		title:  copyString(p.Title),
		author: copyString(p.Author),
	}

	switch {
	case p.MinPrice != nil && p.MaxPrice == nil:
		return Search{}, ErrMissingMaxPrice
	case p.MinPrice != nil && p.MaxPrice != nil:
		if *p.MinPrice > *p.MaxPrice {
			return Search{}, ErrInvalidPriceRange
		}
		s.minPrice = copyFloat(p.MinPrice)
		s.maxPrice = copyFloat(p.MaxPrice)
	case p.MaxPrice != nil:
		zero := 0.0
		s.minPrice = &zero
		s.maxPrice = copyFloat(p.MaxPrice)
		s.impliedMin = true
	}

	return s, nil
}

// Title 精确匹配的书名
func (s Search) Title() (string, bool) { return deref(s.title) }

// Author 精确匹配的作者
func (s Search) Author() (string, bool) { return deref(s.author) }

// MinPrice 价格下限（含）
func (s Search) MinPrice() (float64, bool) { return deref(s.minPrice) }

// MaxPrice 价格上限（含）
func (s Search) MaxPrice() (float64, bool) { return deref(s.maxPrice) }

// HasPriceRange 是否需要价格区间过滤
func (s Search) HasPriceRange() bool {
	return s.minPrice != nil && s.maxPrice != nil
}

// Params 还原构造时的原始输入
// NewSearch(s.Params())得到与s相同的值
func (s Search) Params() SearchParams {
	p := SearchParams{
		Title:    copyString(s.title),
		Author:   copyString(s.author),
		MaxPrice: copyFloat(s.maxPrice),
	}
	if !s.impliedMin {
		p.MinPrice = copyFloat(s.minPrice)
	}
	return p
}

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

func copyString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
