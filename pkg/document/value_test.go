package document

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestTableInsertionOrder(t *testing.T) {
	tbl := NewTable()
	tbl.Set("zebra", Integer(1))
	tbl.Set("apple", Integer(2))
	tbl.Set("mango", Integer(3))

	want := []string{"zebra", "apple", "mango"}
	if got := tbl.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
}

func TestTableSetReplacesInPlace(t *testing.T) {
	tbl := NewTable()
	tbl.Set("a", Integer(1))
	tbl.Set("b", Integer(2))
	tbl.Set("a", Integer(10))

	if got := tbl.Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("Keys() = %v, keys must stay unique and ordered", got)
	}
	v, ok := tbl.Get("a")
	if !ok || v.AsInteger() != 10 {
		t.Fatalf("Get(a) = %v, %v; want 10", v, ok)
	}
}

func TestTableGetMissing(t *testing.T) {
	tbl := NewTable()
	if _, ok := tbl.Get("nope"); ok {
		t.Fatal("Get on empty table should report absence")
	}
}

func TestArrayAppendAndAt(t *testing.T) {
	arr := NewArray()
	arr.Append(String("x"))
	arr.Append(String("y"))
	if arr.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", arr.Len())
	}
	if got := arr.At(1).AsString(); got != "y" {
		t.Fatalf("At(1) = %q, want %q", got, "y")
	}
}

func TestScalarKinds(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		v    *Value
		kind Kind
	}{
		{String("s"), KindString},
		{Integer(7), KindInteger},
		{Float(1.5), KindFloat},
		{Boolean(true), KindBoolean},
		{Datetime(ts), KindDatetime},
		{NewTable(), KindTable},
		{NewArray(), KindArray},
	}
	for _, tc := range cases {
		if tc.v.Kind() != tc.kind {
			t.Errorf("Kind() = %v, want %v", tc.v.Kind(), tc.kind)
		}
		if tc.v.Kind().IsScalar() == (tc.kind == KindTable || tc.kind == KindArray) {
			t.Errorf("IsScalar() wrong for %v", tc.kind)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindTable.String() != "table" || KindDatetime.String() != "datetime" {
		t.Fatalf("unexpected kind names: %s, %s", KindTable, KindDatetime)
	}
	if Kind(99).String() != "<unknown kind>" {
		t.Fatalf("out-of-range kind should render a placeholder")
	}
}

func TestMarshalJSONPreservesOrder(t *testing.T) {
	tbl := NewTable()
	tbl.Set("z", Integer(1))
	tbl.Set("a", Boolean(false))
	tbl.Set("m", String("hi"))

	b, err := json.Marshal(tbl)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"z":1,"a":false,"m":"hi"}`
	if string(b) != want {
		t.Fatalf("Marshal = %s, want %s", b, want)
	}
}

func TestMarshalJSONNestedAndDatetime(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	arr := NewArray()
	arr.Append(Float(0.5))
	arr.Append(Datetime(ts))
	tbl := NewTable()
	tbl.Set("items", arr)

	b, err := json.Marshal(tbl)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"items":[0.5,"2024-05-01T12:00:00Z"]}`
	if string(b) != want {
		t.Fatalf("Marshal = %s, want %s", b, want)
	}
}

func TestInterfaceRoundTrip(t *testing.T) {
	arr := NewArray()
	arr.Append(Integer(1))
	arr.Append(String("two"))
	tbl := NewTable()
	tbl.Set("list", arr)
	tbl.Set("ok", Boolean(true))

	got := tbl.Interface()
	want := map[string]any{
		"list": []any{int64(1), "two"},
		"ok":   true,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Interface() = %#v, want %#v", got, want)
	}
}

func TestFormatDatetime(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	if got := FormatDatetime(ts); got != "2024-05-01T12:30:00Z" {
		t.Fatalf("FormatDatetime = %q", got)
	}
}
