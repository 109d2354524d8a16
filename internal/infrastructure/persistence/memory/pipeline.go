package memory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// evaluate 按MongoDB的语义逐阶段执行聚合管道
func evaluate(docs []book.Document, pipeline book.Pipeline) ([]book.Document, error) {
	var err error
	for _, stage := range pipeline {
		switch s := stage.(type) {
		case book.GroupStage:
			docs = group(docs, s)
		case book.SortStage:
			sortDocuments(docs, s)
		case book.LimitStage:
			if s.N >= 0 && len(docs) > s.N {
				docs = docs[:s.N]
			}
		case book.ProjectStage:
			docs = project(docs, s)
		case book.ReplaceRootStage:
			docs, err = replaceRoot(docs, s)
		default:
			err = fmt.Errorf("unsupported stage %T", stage)
		}
		if err != nil {
			return nil, err
		}
	}
	return docs, nil
}

// groupState 单个分组的累加状态
type groupState struct {
	key    any
	out    book.Document
	floats map[string]bool // 求和过程中出现过浮点数
}

// group 分组顺序为分组键第一次出现的顺序
func group(docs []book.Document, s book.GroupStage) []book.Document {
	var groups []*groupState

	for _, doc := range docs {
		var key any
		if s.By != "" {
			key = doc[s.By]
		}

		g := findGroup(groups, key)
		if g == nil {
			g = &groupState{
				key:    key,
				out:    book.Document{book.GroupKeyField: key},
				floats: make(map[string]bool),
			}
			for _, acc := range s.Accumulators {
				switch acc.Op {
				case book.OpSum, book.OpCount:
					g.out[acc.Name] = int64(0)
				case book.OpFirst:
					g.out[acc.Name] = firstValue(doc, acc.Field)
				}
			}
			groups = append(groups, g)
		}

		for _, acc := range s.Accumulators {
			switch acc.Op {
			case book.OpSum:
				g.add(acc.Name, doc[acc.Field])
			case book.OpCount:
				g.add(acc.Name, int64(1))
			}
		}
	}

	out := make([]book.Document, len(groups))
	for i, g := range groups {
		out[i] = g.out
	}
	return out
}

// add 整数求和保持int64，出现浮点数后转为float64；非数值忽略
func (g *groupState) add(name string, v any) {
	switch v.(type) {
	case float32, float64:
		g.floats[name] = true
	}

	if g.floats[name] {
		total, _ := book.ToFloat64(g.out[name])
		f, ok := book.ToFloat64(v)
		if !ok {
			g.out[name] = total
			return
		}
		g.out[name] = total + f
		return
	}

	n, ok := book.ToInt64(v)
	if !ok {
		return
	}
	total, _ := book.ToInt64(g.out[name])
	g.out[name] = total + n
}

func findGroup(groups []*groupState, key any) *groupState {
	for _, g := range groups {
		if book.Equal(g.key).Matches(key) {
			return g
		}
	}
	return nil
}

func firstValue(doc book.Document, field string) any {
	if field == "" {
		return cloneDocument(doc)
	}
	return doc[field]
}

// sortDocuments 稳定排序，值相同时保持输入顺序
func sortDocuments(docs []book.Document, s book.SortStage) {
	sort.SliceStable(docs, func(i, j int) bool {
		c := compareValues(docs[i][s.Field], docs[j][s.Field])
		if s.Descending {
			return c > 0
		}
		return c < 0
	})
}

// compareValues 类型顺序：缺失/null < 数值 < 字符串 < 其他
func compareValues(a, b any) int {
	ra, rb := typeRank(a), typeRank(b)
	if ra != rb {
		return ra - rb
	}

	switch ra {
	case 1:
		fa, _ := book.ToFloat64(a)
		fb, _ := book.ToFloat64(b)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	case 2:
		return strings.Compare(a.(string), b.(string))
	}
	return 0
}

func typeRank(v any) int {
	if v == nil {
		return 0
	}
	if _, ok := book.ToFloat64(v); ok {
		return 1
	}
	if _, ok := v.(string); ok {
		return 2
	}
	return 3
}

// project 只保留投影字段，源字段缺失时输出中也不出现
func project(docs []book.Document, s book.ProjectStage) []book.Document {
	out := make([]book.Document, len(docs))
	for i, doc := range docs {
		projected := book.Document{}
		for _, p := range s.Fields {
			if v, ok := doc[p.From]; ok {
				projected[p.As] = v
			}
		}
		out[i] = projected
	}
	return out
}

func replaceRoot(docs []book.Document, s book.ReplaceRootStage) ([]book.Document, error) {
	out := make([]book.Document, len(docs))
	for i, doc := range docs {
		root, ok := doc[s.Field].(book.Document)
		if !ok {
			return nil, fmt.Errorf("replaceRoot: field %q is not a document", s.Field)
		}
		out[i] = root
	}
	return out, nil
}
