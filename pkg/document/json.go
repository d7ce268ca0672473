package document

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// MarshalJSON renders the tree with table keys in insertion order, which
// the default map marshaling would sort away.
func (v *Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindTable:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, k := range v.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			eb, err := v.elems[i].MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(eb)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	case KindArray:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, e := range v.elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			eb, err := e.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(eb)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case KindString:
		return json.Marshal(v.s)
	case KindInteger:
		return strconv.AppendInt(nil, v.i, 10), nil
	case KindFloat:
		return json.Marshal(v.f)
	case KindBoolean:
		return strconv.AppendBool(nil, v.b), nil
	case KindDatetime:
		return json.Marshal(FormatDatetime(v.dt))
	default:
		return nil, &json.UnsupportedValueError{Str: v.kind.String()}
	}
}
