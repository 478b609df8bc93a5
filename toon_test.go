package toon

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	v := Object(
		Field{Key: "id", Value: Number(123)},
		Field{Key: "name", Value: String("Ada")},
		Field{Key: "tags", Value: Array(String("admin"), String("ops"))},
	)

	text, err := Encode(v)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	got, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !Equal(got, v) {
		t.Errorf("round trip mismatch: got %#v, want %#v", got, v)
	}
}

func TestDecodeErrorCarriesLine(t *testing.T) {
	_, err := Decode("id: 1\nid: 2")
	if err == nil {
		t.Fatal("expected an error")
	}
	de, ok := AsDecodeError(err)
	if !ok {
		t.Fatalf("expected a *DecodeError, got %T", err)
	}
	if de.Kind != SemanticError {
		t.Errorf("Kind = %v, want SemanticError", de.Kind)
	}
	if de.Pos.Line != 2 {
		t.Errorf("Pos.Line = %d, want 2", de.Pos.Line)
	}
}

func TestOptionsPipeDelimiterWithLengthMarker(t *testing.T) {
	v := Object(Field{Key: "tags", Value: Array(String("a"), String("b"))})
	text, err := Encode(v, WithDelimiter(PipeDelimiter), WithLengthMarker(true))
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	want := "tags[#2|]: a|b"
	if text != want {
		t.Errorf("Encode() = %q, want %q", text, want)
	}

	got, err := Decode(text, WithDelimiter(PipeDelimiter))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !Equal(got, v) {
		t.Errorf("round trip mismatch: got %#v, want %#v", got, v)
	}
}

func TestLaxModeAcceptsCountMismatch(t *testing.T) {
	_, err := Decode("tags[3]: a,b", WithStrict(true))
	if err == nil {
		t.Fatal("expected strict-mode error")
	}
	v, err := Decode("tags[3]: a,b", WithStrict(false))
	if err != nil {
		t.Fatalf("Decode() error in lax mode: %v", err)
	}
	want := Object(Field{Key: "tags", Value: Array(String("a"), String("b"))})
	if !Equal(v, want) {
		t.Errorf("got %#v, want %#v", v, want)
	}
}
