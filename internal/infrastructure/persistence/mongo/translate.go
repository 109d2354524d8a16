package mongo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// toFilter Predicate → 查询过滤条件
// 相等条件直接写值，区间条件翻译为 {$gte, $lte}
func toFilter(p book.Predicate) bson.M {
	filter := bson.M{}
	for field, cond := range p {
		switch cond.Kind {
		case book.KindEqual:
			filter[field] = cond.Value
		case book.KindRange:
			filter[field] = bson.M{"$gte": cond.Min, "$lte": cond.Max}
		}
	}
	return filter
}

// toUpdate Patch → $set更新文档
func toUpdate(patch book.Patch) bson.M {
	set := bson.M{}
	for field, v := range patch {
		if field == book.FieldID {
			continue
		}
		set[field] = v
	}
	return bson.M{"$set": set}
}

// toPipeline 聚合阶段 → MongoDB聚合管道
func toPipeline(p book.Pipeline) (mongo.Pipeline, error) {
	pipeline := make(mongo.Pipeline, 0, len(p))

	for _, stage := range p {
		var doc bson.D

		switch s := stage.(type) {
		case book.GroupStage:
			doc = bson.D{{Key: "$group", Value: groupDoc(s)}}
		case book.SortStage:
			order := 1
			if s.Descending {
				order = -1
			}
			doc = bson.D{{Key: "$sort", Value: bson.D{{Key: s.Field, Value: order}}}}
		case book.LimitStage:
			doc = bson.D{{Key: "$limit", Value: int64(s.N)}}
		case book.ProjectStage:
			doc = bson.D{{Key: "$project", Value: projectDoc(s)}}
		case book.ReplaceRootStage:
			doc = bson.D{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: fieldRef(s.Field)}}}}
		default:
			return nil, fmt.Errorf("unsupported stage %T", stage)
		}

		pipeline = append(pipeline, doc)
	}

	return pipeline, nil
}

func groupDoc(s book.GroupStage) bson.D {
	var id any
	if s.By != "" {
		id = fieldRef(s.By)
	}

	doc := bson.D{{Key: book.GroupKeyField, Value: id}}
	for _, acc := range s.Accumulators {
		var expr bson.D
		switch acc.Op {
		case book.OpSum:
			expr = bson.D{{Key: "$sum", Value: fieldRef(acc.Field)}}
		case book.OpCount:
			expr = bson.D{{Key: "$sum", Value: 1}}
		case book.OpFirst:
			root := "$$ROOT"
			if acc.Field != "" {
				root = fieldRef(acc.Field)
			}
			expr = bson.D{{Key: "$first", Value: root}}
		}
		doc = append(doc, bson.E{Key: acc.Name, Value: expr})
	}
	return doc
}

// projectDoc _id默认不输出，除非被显式投影
func projectDoc(s book.ProjectStage) bson.D {
	var doc bson.D
	keepID := false
	for _, p := range s.Fields {
		if p.As == book.GroupKeyField {
			keepID = true
		}
		doc = append(doc, bson.E{Key: p.As, Value: fieldRef(p.From)})
	}
	if !keepID {
		doc = append(bson.D{{Key: book.GroupKeyField, Value: 0}}, doc...)
	}
	return doc
}

func fieldRef(field string) string {
	return "$" + field
}

// toDocument 聚合结果 → 存储无关的文档
// 嵌套文档同样转换为book.Document
func toDocument(m bson.M) book.Document {
	doc := make(book.Document, len(m))
	for k, v := range m {
		doc[k] = normalize(v)
	}
	return doc
}

func normalize(v any) any {
	switch n := v.(type) {
	case bson.M:
		return toDocument(n)
	case bson.D:
		m := make(bson.M, len(n))
		for _, e := range n {
			m[e.Key] = e.Value
		}
		return toDocument(m)
	default:
		return v
	}
}
