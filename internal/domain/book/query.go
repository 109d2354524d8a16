package book

// ConditionKind 匹配条件类型
type ConditionKind int

const (
	// KindEqual 精确相等
	KindEqual ConditionKind = iota
	// KindRange 闭区间 [Min, Max]
	KindRange
)

// Condition 单个字段的匹配条件
type Condition struct {
	Kind  ConditionKind
	Value any     // KindEqual
	Min   float64 // KindRange
	Max   float64 // KindRange
}

// Equal 相等条件
func Equal(v any) Condition {
	return Condition{Kind: KindEqual, Value: v}
}

// Between 闭区间条件
func Between(lo, hi float64) Condition {
	return Condition{Kind: KindRange, Min: lo, Max: hi}
}

// Matches 判断字段值是否满足条件
func (c Condition) Matches(v any) bool {
	switch c.Kind {
	case KindEqual:
		return valuesEqual(c.Value, v)
	case KindRange:
		f, ok := ToFloat64(v)
		return ok && f >= c.Min && f <= c.Max
	default:
		return false
	}
}

// Predicate 存储无关的过滤条件（字段名 → 条件），多个字段之间为AND
// 空Predicate匹配全部文档
type Predicate map[string]Condition

// Matches 判断文档是否满足全部条件
func (p Predicate) Matches(doc Document) bool {
	for field, cond := range p {
		v, ok := doc[field]
		if !ok || !cond.Matches(v) {
			return false
		}
	}
	return true
}

// BuildPredicate 将已校验的搜索请求翻译为过滤条件
func BuildPredicate(s Search) Predicate {
	p := Predicate{}

	if title, ok := s.Title(); ok {
		p[FieldTitle] = Equal(title)
	}
	if author, ok := s.Author(); ok {
		p[FieldAuthor] = Equal(author)
	}
	if s.HasPriceRange() {
		lo, _ := s.MinPrice()
		hi, _ := s.MaxPrice()
		p[FieldPrice] = Between(lo, hi)
	}

	return p
}

func valuesEqual(a, b any) bool {
	fa, okA := ToFloat64(a)
	fb, okB := ToFloat64(b)
	if okA || okB {
		return okA && okB && fa == fb
	}

	sa, okA := a.(string)
	sb, okB := b.(string)
	if okA || okB {
		return okA && okB && sa == sb
	}

	return a == nil && b == nil
}
