package book

// 聚合结果中使用的字段名
const (
	// GroupKeyField 分组键在结果文档中的字段名
	GroupKeyField = "_id"

	countField = "count"
	bookField  = "book"

	// TopN 排行榜返回数量
	TopN = 5
)

// Stage 聚合阶段
// 具体类型：GroupStage、SortStage、LimitStage、ProjectStage、ReplaceRootStage
type Stage interface {
	stage()
}

// Pipeline 有序的聚合阶段序列，作用于整个集合
type Pipeline []Stage

// AccumulatorOp 分组累加操作
type AccumulatorOp int

const (
	// OpSum 对字段求和
	OpSum AccumulatorOp = iota
	// OpCount 计数（每条文档+1）
	OpCount
	// OpFirst 取分组内遇到的第一条
	OpFirst
)

// Accumulator 分组内的一个输出字段
// Field为空且Op为OpFirst时取整条文档
type Accumulator struct {
	Name  string
	Op    AccumulatorOp
	Field string
}

// Sum 对字段求和
func Sum(name, field string) Accumulator {
	return Accumulator{Name: name, Op: OpSum, Field: field}
}

// Count 分组计数
func Count(name string) Accumulator {
	return Accumulator{Name: name, Op: OpCount}
}

// FirstRoot 保留分组内第一条完整文档
func FirstRoot(name string) Accumulator {
	return Accumulator{Name: name, Op: OpFirst}
}

// GroupStage 按字段分组；By为空时全部文档归为一组（分组键为nil）
type GroupStage struct {
	By           string
	Accumulators []Accumulator
}

// SortStage 按单个字段排序
type SortStage struct {
	Field      string
	Descending bool
}

// LimitStage 截取前N条
type LimitStage struct {
	N int
}

// Projection 输出字段As取自输入字段From
type Projection struct {
	As   string
	From string
}

// ProjectStage 只保留指定字段（不保留_id，除非显式投影）
type ProjectStage struct {
	Fields []Projection
}

// ReplaceRootStage 用内嵌文档替换整条文档
type ReplaceRootStage struct {
	Field string
}

func (GroupStage) stage()       {}
func (SortStage) stage()        {}
func (LimitStage) stage()       {}
func (ProjectStage) stage()     {}
func (ReplaceRootStage) stage() {}

// CountPipeline 全部图书的库存总和
// 输出：空集合时无文档，否则一条 {count: <sum>}
func CountPipeline() Pipeline {
	return Pipeline{
		GroupStage{Accumulators: []Accumulator{Sum(countField, FieldStock)}},
		ProjectStage{Fields: []Projection{{As: countField, From: countField}}},
	}
}

// BestSellingPipeline 按书名汇总库存，取前5
// 输出的是每组第一条原始文档，其stock为原值而非汇总值
func BestSellingPipeline() Pipeline {
	return Pipeline{
		GroupStage{
			By: FieldTitle,
			Accumulators: []Accumulator{
				Sum(FieldStock, FieldStock),
				FirstRoot(bookField),
			},
		},
		SortStage{Field: FieldStock, Descending: true},
		LimitStage{N: TopN},
		ReplaceRootStage{Field: bookField},
	}
}

// ProlificAuthorsPipeline 按作者统计图书数量，取前5
// 输出：{author: <name>}
func ProlificAuthorsPipeline() Pipeline {
	return Pipeline{
		GroupStage{
			By:           FieldAuthor,
			Accumulators: []Accumulator{Count(countField)},
		},
		SortStage{Field: countField, Descending: true},
		LimitStage{N: TopN},
		ProjectStage{Fields: []Projection{{As: FieldAuthor, From: GroupKeyField}}},
	}
}

// StockTotal 读取CountPipeline的结果，空集合视为0
func StockTotal(docs []Document) int64 {
	if len(docs) == 0 {
		return 0
	}
	n, _ := ToInt64(docs[0][countField])
	return n
}

// AuthorNames 读取ProlificAuthorsPipeline的结果
func AuthorNames(docs []Document) []string {
	authors := make([]string, 0, len(docs))
	for _, doc := range docs {
		if name, ok := doc[FieldAuthor].(string); ok {
			authors = append(authors, name)
		}
	}
	return authors
}

// BooksFrom 读取BestSellingPipeline的结果
func BooksFrom(docs []Document) []*Book {
	books := make([]*Book, len(docs))
	for i, doc := range docs {
		books[i] = FromDocument(doc)
	}
	return books
}
