package docstore

import (
	"encoding/json"
	"fmt"
)

type Method string

const (
	MethodEqual            Method = "equal"
	MethodNotEqual         Method = "notEqual"
	MethodGreaterThanEqual Method = "greaterThanEqual"
	MethodLessThanEqual    Method = "lessThanEqual"
	MethodContains         Method = "contains"
	MethodOrderAsc         Method = "orderAsc"
	MethodOrderDesc        Method = "orderDesc"
	MethodLimit            Method = "limit"
	MethodOffset           Method = "offset"
)

// Query is one element of a store listing. Filter methods with multiple
// values match a document whose attribute equals any of them.
type Query struct {
	Method    Method
	Attribute string
	Values    []any
}

func Equal(attribute string, values ...any) Query {
	return Query{Method: MethodEqual, Attribute: attribute, Values: values}
}

func NotEqual(attribute string, value any) Query {
	return Query{Method: MethodNotEqual, Attribute: attribute, Values: []any{value}}
}

func GreaterThanEqual(attribute string, value any) Query {
	return Query{Method: MethodGreaterThanEqual, Attribute: attribute, Values: []any{value}}
}

func LessThanEqual(attribute string, value any) Query {
	return Query{Method: MethodLessThanEqual, Attribute: attribute, Values: []any{value}}
}

func Contains(attribute string, values ...any) Query {
	return Query{Method: MethodContains, Attribute: attribute, Values: values}
}

func OrderAsc(attribute string) Query {
	return Query{Method: MethodOrderAsc, Attribute: attribute}
}

func OrderDesc(attribute string) Query {
	return Query{Method: MethodOrderDesc, Attribute: attribute}
}

func Limit(limit int) Query {
	return Query{Method: MethodLimit, Values: []any{limit}}
}

func Offset(offset int) Query {
	return Query{Method: MethodOffset, Values: []any{offset}}
}

// Encode renders the query in the wire format the store expects, for example
// equal("archived",[false]), orderAsc("date") or limit([25]).
func (q Query) Encode() string {
	if len(q.Values) == 0 {
		return fmt.Sprintf("%s(%q)", q.Method, q.Attribute)
	}

	values, err := json.Marshal(q.Values)
	if err != nil {
		values = []byte("[]")
	}

	if q.Attribute == "" {
		return fmt.Sprintf("%s(%s)", q.Method, values)
	}

	return fmt.Sprintf("%s(%q,%s)", q.Method, q.Attribute, values)
}
