package databases

import (
	"context"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/devcamper-api/models"
)

// Pagination defaults used when page or limit are missing or invalid
const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 25
)

// FieldKind tells the list query how to cast the query string value of a field
type FieldKind int

// Supported field kinds
const (
	KindString FieldKind = iota
	KindNumber
	KindBool
	KindObjectID
	KindDate
)

// Schema maps the filterable fields of a collection to their kind. Fields
// that are not listed are compared as strings.
type Schema map[string]FieldKind

// Relation describes documents of another collection attached to every result
type Relation struct {
	From         string
	LocalField   string
	ForeignField string
	As           string
	// Fields restricts the attached documents to these fields, empty keeps all
	Fields []string
	// Single unwraps the lookup array into one embedded document
	Single bool
}

// ResultOptions configures AdvancedResults for one collection
type ResultOptions struct {
	Schema   Schema
	Populate *Relation
	// Hidden fields are never returned, even when selected
	Hidden []string
}

// ListQuery is the database side of a list request: filter, projection, sort
// and page.
type ListQuery struct {
	Filter bson.M
	Select []string
	Sort   bson.D
	Page   int64
	Limit  int64
}

var reservedKeys = map[string]bool{"select": true, "sort": true, "page": true, "limit": true}

var operators = map[string]bool{"gt": true, "gte": true, "lt": true, "lte": true, "in": true}

var bracketKey = regexp.MustCompile(`^([^\[\]]+)\[([^\[\]]+)\]$`)

// ParseListQuery translates query string values into a ListQuery.
//
// select, sort, page and limit are reserved. Every other key is a filter:
// field=v is an equality and field[op]=v with op one of gt, gte, lt, lte, in
// becomes {field: {$op: v}}. Unknown operators are kept as literal document
// equalities and match nothing. Fields starting with $ are ignored.
func ParseListQuery(values url.Values, schema Schema) ListQuery {
	q := ListQuery{
		Filter: bson.M{},
		Sort:   bson.D{{Key: "createdAt", Value: -1}},
		Page:   positiveInt(values.Get("page"), DefaultPage),
		Limit:  positiveInt(values.Get("limit"), DefaultLimit),
	}

	// plain keys first so that field=v and field[op]=v always merge the same way
	var plain, bracketed []string
	for key, vals := range values {
		if reservedKeys[key] || len(vals) == 0 {
			continue
		}
		if bracketKey.MatchString(key) {
			bracketed = append(bracketed, key)
		} else {
			plain = append(plain, key)
		}
	}
	sort.Strings(plain)
	sort.Strings(bracketed)

	for _, key := range plain {
		if strings.HasPrefix(key, "$") {
			continue
		}
		q.Filter[key] = cast(schema[key], values[key][0])
	}

	var literals bson.A
	for _, key := range bracketed {
		vals := values[key]
		m := bracketKey.FindStringSubmatch(key)
		field, op := m[1], m[2]
		if strings.HasPrefix(field, "$") {
			continue
		}
		if op != "in" && !operators[op] {
			literals = append(literals, bson.M{field: bson.M{"$eq": bson.M{op: vals[0]}}})
			continue
		}

		cond, ok := q.Filter[field].(bson.M)
		if !ok {
			cond = bson.M{}
			if eq, set := q.Filter[field]; set {
				cond["$eq"] = eq
			}
			q.Filter[field] = cond
		}
		if op != "in" {
			cond["$"+op] = cast(schema[field], vals[0])
			continue
		}
		list := bson.A{}
		for _, v := range vals {
			for _, part := range strings.Split(v, ",") {
				if part = strings.TrimSpace(part); part != "" {
					list = append(list, cast(schema[field], part))
				}
			}
		}
		cond["$in"] = list
	}
	if len(literals) > 0 {
		q.Filter["$and"] = literals
	}

	if s := values.Get("select"); s != "" {
		q.Select = splitFields(s)
	}
	if s := values.Get("sort"); s != "" {
		var order bson.D
		for _, f := range splitFields(s) {
			if strings.HasPrefix(f, "-") {
				order = append(order, bson.E{Key: f[1:], Value: -1})
				continue
			}
			order = append(order, bson.E{Key: f, Value: 1})
		}
		if len(order) > 0 {
			q.Sort = order
		}
	}
	return q
}

// Skip is the number of documents before the requested page
func (q ListQuery) Skip() int64 {
	return (q.Page - 1) * q.Limit
}

// Pipeline builds the aggregation that returns the requested page
func (q ListQuery) Pipeline(opts ResultOptions) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: q.Filter}},
		{{Key: "$sort", Value: q.Sort}},
		{{Key: "$skip", Value: q.Skip()}},
		{{Key: "$limit", Value: q.Limit}},
	}

	if rel := opts.Populate; rel != nil {
		lookup := bson.D{
			{Key: "from", Value: rel.From},
			{Key: "localField", Value: rel.LocalField},
			{Key: "foreignField", Value: rel.ForeignField},
			{Key: "as", Value: rel.As},
		}
		if len(rel.Fields) > 0 {
			lookup = append(lookup, bson.E{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$project", Value: inclusion(rel.Fields)}},
			}})
		}
		pipeline = append(pipeline, bson.D{{Key: "$lookup", Value: lookup}})
		if rel.Single {
			pipeline = append(pipeline, bson.D{{Key: "$unwind", Value: bson.D{
				{Key: "path", Value: "$" + rel.As},
				{Key: "preserveNullAndEmptyArrays", Value: true},
			}}})
		}
	}

	hidden := map[string]bool{}
	for _, h := range opts.Hidden {
		hidden[h] = true
	}
	var fields []string
	for _, f := range q.Select {
		if !hidden[f] {
			fields = append(fields, f)
		}
	}
	switch {
	case len(fields) > 0:
		if rel := opts.Populate; rel != nil && !selects(fields, rel.As) {
			fields = append(fields, rel.As)
		}
		pipeline = append(pipeline, bson.D{{Key: "$project", Value: inclusion(fields)}})
	case len(opts.Hidden) > 0:
		exclude := bson.D{}
		for _, h := range opts.Hidden {
			exclude = append(exclude, bson.E{Key: h, Value: 0})
		}
		pipeline = append(pipeline, bson.D{{Key: "$project", Value: exclude}})
	}
	return pipeline
}

// Paginate describes the pages around page given the total number of matches
func Paginate(page, limit, total int64) *models.Pagination {
	p := &models.Pagination{}
	if page*limit < total {
		p.Next = &models.PageRef{Page: page + 1, Limit: limit}
	}
	if (page-1)*limit > 0 {
		p.Prev = &models.PageRef{Page: page - 1, Limit: limit}
	}
	return p
}

// AdvancedResults runs a list request against coll and shapes the response
func AdvancedResults(ctx context.Context, coll CollectionHelper, values url.Values, opts ResultOptions) (*models.ListResponse, error) {
	q := ParseListQuery(values, opts.Schema)

	total, err := coll.CountDocuments(ctx, q.Filter)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Aggregate(ctx, q.Pipeline(opts))
	if err != nil {
		return nil, err
	}
	var docs []bson.M
	if err = cursor.Decode(&docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []bson.M{}
	}

	return &models.ListResponse{
		Success:    true,
		Count:      len(docs),
		Pagination: Paginate(q.Page, q.Limit, total),
		Data:       docs,
	}, nil
}

func cast(kind FieldKind, v string) interface{} {
	switch kind {
	case KindNumber:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	case KindBool:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	case KindObjectID:
		if id, err := primitive.ObjectIDFromHex(v); err == nil {
			return id
		}
	case KindDate:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
		if t, err := time.Parse("2006-01-02", v); err == nil {
			return t
		}
	}
	return v
}

func positiveInt(s string, def int64) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// selects reports whether fields already project path or one of its children
func selects(fields []string, path string) bool {
	for _, f := range fields {
		if f == path || strings.HasPrefix(f, path+".") {
			return true
		}
	}
	return false
}

func splitFields(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" && !strings.HasPrefix(strings.TrimPrefix(f, "-"), "$") {
			out = append(out, f)
		}
	}
	return out
}

func inclusion(fields []string) bson.D {
	d := bson.D{}
	for _, f := range fields {
		d = append(d, bson.E{Key: f, Value: 1})
	}
	return d
}
