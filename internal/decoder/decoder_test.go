package decoder

import (
	"testing"

	"github.com/cwbudde/go-toon/internal/lexrules"
	"github.com/cwbudde/go-toon/internal/value"
)

func strictConfig() Config {
	return Config{IndentSize: 2, Delimiter: lexrules.Comma, Strict: true}
}

func decodeOrFatal(t *testing.T, cfg Config, src string) *value.Value {
	t.Helper()
	v, err := New(cfg).Decode(src)
	if err != nil {
		t.Fatalf("Decode(%q) error: %v", src, err)
	}
	return v
}

func TestDecodeSimpleObject(t *testing.T) {
	v := decodeOrFatal(t, strictConfig(), "id: 123\nname: Ada\nactive: true")
	want := value.Object(
		value.Field{Key: "id", Value: value.Number(123)},
		value.Field{Key: "name", Value: value.String("Ada")},
		value.Field{Key: "active", Value: value.Bool(true)},
	)
	if !value.Equal(v, want) {
		t.Errorf("got %#v, want %#v", v, want)
	}
}

func TestDecodeNestedObject(t *testing.T) {
	v := decodeOrFatal(t, strictConfig(), "user:\n  id: 123\n  name: Ada")
	want := value.Object(
		value.Field{Key: "user", Value: value.Object(
			value.Field{Key: "id", Value: value.Number(123)},
			value.Field{Key: "name", Value: value.String("Ada")},
		)},
	)
	if !value.Equal(v, want) {
		t.Errorf("got %#v, want %#v", v, want)
	}
}

func TestDecodePrimitiveArray(t *testing.T) {
	v := decodeOrFatal(t, strictConfig(), "tags[3]: admin,ops,dev")
	want := value.Object(
		value.Field{Key: "tags", Value: value.Array(value.String("admin"), value.String("ops"), value.String("dev"))},
	)
	if !value.Equal(v, want) {
		t.Errorf("got %#v, want %#v", v, want)
	}
}

func TestDecodeTabularArray(t *testing.T) {
	src := "items[2]{sku,qty,price}:\n  A1,2,9.99\n  B2,1,14.5"
	v := decodeOrFatal(t, strictConfig(), src)
	row := func(sku string, qty, price float64) *value.Value {
		return value.Object(
			value.Field{Key: "sku", Value: value.String(sku)},
			value.Field{Key: "qty", Value: value.Number(qty)},
			value.Field{Key: "price", Value: value.Number(price)},
		)
	}
	want := value.Object(
		value.Field{Key: "items", Value: value.Array(row("A1", 2, 9.99), row("B2", 1, 14.5))},
	)
	if !value.Equal(v, want) {
		t.Errorf("got %#v, want %#v", v, want)
	}
}

func TestDecodePipeDelimiterWithLengthMarker(t *testing.T) {
	v := decodeOrFatal(t, strictConfig(), "tags[#2|]: a|b")
	want := value.Object(
		value.Field{Key: "tags", Value: value.Array(value.String("a"), value.String("b"))},
	)
	if !value.Equal(v, want) {
		t.Errorf("got %#v, want %#v", v, want)
	}
}

func TestDecodeStrictCountMismatchErrors(t *testing.T) {
	_, err := New(strictConfig()).Decode("tags[3]: admin,ops")
	if err == nil {
		t.Fatal("expected count-mismatch error in strict mode")
	}
}

func TestDecodeLaxCountMismatchAccepts(t *testing.T) {
	cfg := strictConfig()
	cfg.Strict = false
	v := decodeOrFatal(t, cfg, "tags[3]: admin,ops")
	want := value.Object(
		value.Field{Key: "tags", Value: value.Array(value.String("admin"), value.String("ops"))},
	)
	if !value.Equal(v, want) {
		t.Errorf("got %#v, want %#v", v, want)
	}
}

func TestDecodeQuotingRoundTrip(t *testing.T) {
	src := `colon: "a:b"` + "\n" + `comma: "a,b"` + "\n" + `newline: "a\nb"` + "\n" + `empty: ""`
	v := decodeOrFatal(t, strictConfig(), src)
	want := value.Object(
		value.Field{Key: "colon", Value: value.String("a:b")},
		value.Field{Key: "comma", Value: value.String("a,b")},
		value.Field{Key: "newline", Value: value.String("a\nb")},
		value.Field{Key: "empty", Value: value.String("")},
	)
	if !value.Equal(v, want) {
		t.Errorf("got %#v, want %#v", v, want)
	}
}

func TestDecodeExpandedListMixedItems(t *testing.T) {
	v := decodeOrFatal(t, strictConfig(), "rows[2]:\n  - [2]: 1,2\n  - solo")
	want := value.Object(
		value.Field{Key: "rows", Value: value.Array(
			value.Array(value.Number(1), value.Number(2)),
			value.String("solo"),
		)},
	)
	if !value.Equal(v, want) {
		t.Errorf("got %#v, want %#v", v, want)
	}
}

func TestDecodeExpandedListObjectWithArrayField(t *testing.T) {
	v := decodeOrFatal(t, strictConfig(), "groups[1]:\n  - members[2]: a,b\n    label: x")
	want := value.Object(
		value.Field{Key: "groups", Value: value.Array(
			value.Object(
				value.Field{Key: "members", Value: value.Array(value.String("a"), value.String("b"))},
				value.Field{Key: "label", Value: value.String("x")},
			),
		)},
	)
	if !value.Equal(v, want) {
		t.Errorf("got %#v, want %#v", v, want)
	}
}

func TestDecodeEmptyObjectListItem(t *testing.T) {
	v := decodeOrFatal(t, strictConfig(), "items[1]:\n  - {}")
	want := value.Object(
		value.Field{Key: "items", Value: value.Array(value.Object())},
	)
	if !value.Equal(v, want) {
		t.Errorf("got %#v, want %#v", v, want)
	}
}

func TestDecodeRootArray(t *testing.T) {
	v := decodeOrFatal(t, strictConfig(), "[3]: 1,2,3")
	want := value.Array(value.Number(1), value.Number(2), value.Number(3))
	if !value.Equal(v, want) {
		t.Errorf("got %#v, want %#v", v, want)
	}
}

func TestDecodeRootPrimitive(t *testing.T) {
	v := decodeOrFatal(t, strictConfig(), `"hello world"`)
	if !value.Equal(v, value.String("hello world")) {
		t.Errorf("got %#v, want String(hello world)", v)
	}
}

func TestDecodeEmptyInputStrictErrors(t *testing.T) {
	if _, err := New(strictConfig()).Decode(""); err == nil {
		t.Fatal("expected error for empty input in strict mode")
	}
}

func TestDecodeEmptyInputLaxYieldsEmptyObject(t *testing.T) {
	cfg := strictConfig()
	cfg.Strict = false
	v := decodeOrFatal(t, cfg, "")
	if !value.Equal(v, value.Object()) {
		t.Errorf("got %#v, want empty object", v)
	}
}

func TestDecodeForbiddenLeadingZeroStaysString(t *testing.T) {
	v := decodeOrFatal(t, strictConfig(), "code: 007")
	want := value.Object(value.Field{Key: "code", Value: value.String("007")})
	if !value.Equal(v, want) {
		t.Errorf("got %#v, want %#v", v, want)
	}
}

func TestDecodeDuplicateKeyErrors(t *testing.T) {
	_, err := New(strictConfig()).Decode("id: 1\nid: 2")
	if err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestDecodeFirstLineMustBeDepthZero(t *testing.T) {
	_, err := New(strictConfig()).Decode("  id: 1")
	if err == nil {
		t.Fatal("expected structural error for indented first line")
	}
}

func TestDecodeTabInIndentStrictErrors(t *testing.T) {
	_, err := New(strictConfig()).Decode("user:\n\tid: 1")
	if err == nil {
		t.Fatal("expected structural error for tab in indentation")
	}
}

func TestDecodeTabularRowWidthMismatchStrictErrors(t *testing.T) {
	_, err := New(strictConfig()).Decode("items[1]{a,b}:\n  1")
	if err == nil {
		t.Fatal("expected tabular row width mismatch error")
	}
}
