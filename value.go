package clipdata

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// Value is a parsed JSON value. It is one of Object, Array, String, Number, Bool or Null.
type Value interface {
	jsonValue()
}

// Member is one key/value pair of an Object, in document order.
type Member struct {
	Key   string
	Value Value
}

type (
	Object []Member
	Array  []Value
	String string
	Number string
	Bool   bool
	Null   struct{}
)

func (Object) jsonValue() {}
func (Array) jsonValue()  {}
func (String) jsonValue() {}
func (Number) jsonValue() {}
func (Bool) jsonValue()   {}
func (Null) jsonValue()   {}

// Get returns the value of the last member named key.
func (o Object) Get(key string) (Value, bool) {
	for i := len(o) - 1; i >= 0; i-- {
		if o[i].Key == key {
			return o[i].Value, true
		}
	}
	return nil, false
}

// ParseValue parses exactly one JSON document.
func ParseValue(data []byte) (Value, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("invalid JSON")
	}
	iter := jsoniter.ParseBytes(json, data)
	v := readValue(iter)
	if iter.Error != nil {
		return nil, fmt.Errorf("parse JSON: %w", iter.Error)
	}
	if iter.WhatIsNext() != jsoniter.InvalidValue {
		return nil, fmt.Errorf("parse JSON: unexpected data after top-level value")
	}
	return v, nil
}

func readValue(iter *jsoniter.Iterator) Value {
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		obj := Object{}
		iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
			obj = append(obj, Member{Key: key, Value: readValue(iter)})
			return iter.Error == nil
		})
		return obj
	case jsoniter.ArrayValue:
		arr := Array{}
		iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
			arr = append(arr, readValue(iter))
			return iter.Error == nil
		})
		return arr
	case jsoniter.StringValue:
		return String(iter.ReadString())
	case jsoniter.NumberValue:
		return Number(iter.ReadNumber())
	case jsoniter.BoolValue:
		return Bool(iter.ReadBool())
	case jsoniter.NilValue:
		iter.ReadNil()
		return Null{}
	default:
		iter.ReportError("readValue", "unexpected token")
		return nil
	}
}
