package decode

import (
	"context"
	"reflect"
	"testing"

	"github.com/restverse/restcall/logger"
)

func newTestDecoder(opts ...Option) *Decoder {
	opts = append([]Option{WithLogger(logger.Nop())}, opts...)
	return New(opts...)
}

func TestDecode_JSONObject(t *testing.T) {
	d := newTestDecoder()
	body := d.Decode(context.Background(), []byte(`{"a":1}`), "application/json", true)

	m, ok := body.(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", body)
	}
	if m["a"] != float64(1) {
		t.Errorf("expected a=1, got %v", m["a"])
	}
}

func TestDecode_JSONWithoutContentType(t *testing.T) {
	d := newTestDecoder()
	body := d.Decode(context.Background(), []byte(`[1,2,3]`), "", true)

	if _, ok := body.([]any); !ok {
		t.Fatalf("expected slice, got %T", body)
	}
}

func TestDecode_TextJSONContentType(t *testing.T) {
	d := newTestDecoder()
	body := d.Decode(context.Background(), []byte(`{"ok":true}`), "text/json; charset=utf-8", true)

	if _, ok := body.(map[string]any); !ok {
		t.Fatalf("expected map, got %T", body)
	}
}

func TestDecode_RawWhenJSONDisabled(t *testing.T) {
	d := newTestDecoder()
	raw := []byte(`{"a":1}`)
	body := d.Decode(context.Background(), raw, "application/json", false)

	b, ok := body.([]byte)
	if !ok {
		t.Fatalf("expected bytes, got %T", body)
	}
	if string(b) != `{"a":1}` {
		t.Errorf("raw body changed: %s", b)
	}
}

func TestDecode_TextPlainBeatsJSONFlag(t *testing.T) {
	d := newTestDecoder()
	body := d.Decode(context.Background(), []byte("hello"), "text/plain", true)

	s, ok := body.(string)
	if !ok {
		t.Fatalf("expected string, got %T", body)
	}
	if s != "hello" {
		t.Errorf("expected hello, got %q", s)
	}
}

func TestDecode_MalformedJSONFallsBack(t *testing.T) {
	d := newTestDecoder()
	body := d.Decode(context.Background(), []byte("not json at all"), "application/json", true)

	s, ok := body.(string)
	if !ok {
		t.Fatalf("expected string fallback, got %T", body)
	}
	if s != "not json at all" {
		t.Errorf("fallback body changed: %q", s)
	}
}

func TestDecode_MalformedJSONBinaryFallsBackToBytes(t *testing.T) {
	d := newTestDecoder()
	raw := []byte{0xff, 0xfe, 0x00, 0x01}
	body := d.Decode(context.Background(), raw, "application/json", true)

	b, ok := body.([]byte)
	if !ok {
		t.Fatalf("expected bytes fallback, got %T", body)
	}
	if !reflect.DeepEqual(b, raw) {
		t.Errorf("fallback body changed: %v", b)
	}
}

func TestDecode_EmptyBodyPassesThrough(t *testing.T) {
	d := newTestDecoder()
	body := d.Decode(context.Background(), nil, "", true)

	if b, ok := body.([]byte); !ok || len(b) != 0 {
		t.Fatalf("expected empty bytes, got %T %v", body, body)
	}
}

func TestDecode_UnknownContentTypePassesThrough(t *testing.T) {
	d := newTestDecoder()
	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	body := d.Decode(context.Background(), raw, "image/png", true)

	b, ok := body.([]byte)
	if !ok || !reflect.DeepEqual(b, raw) {
		t.Fatalf("expected raw passthrough, got %T %v", body, body)
	}
}

func TestDecode_Idempotent(t *testing.T) {
	d := newTestDecoder()
	raw := []byte(`{"a":1,"b":[true,null,"x"]}`)

	first := d.Decode(context.Background(), raw, "application/json", true)
	second := d.Decode(context.Background(), raw, "application/json", true)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("decoding twice produced different values: %v vs %v", first, second)
	}
}

func TestDecode_PoolMatchesSync(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	sync := newTestDecoder()
	async := newTestDecoder(WithRunner(pool))

	cases := []struct {
		raw  []byte
		ct   string
		json bool
	}{
		{[]byte(`{"a":1}`), "application/json", true},
		{[]byte("hello"), "text/plain", true},
		{[]byte("broken{"), "application/json", true},
		{[]byte{0x01, 0x02}, "application/octet-stream", true},
		{[]byte(`{"a":1}`), "application/json", false},
	}
	for _, tc := range cases {
		want := sync.Decode(context.Background(), tc.raw, tc.ct, tc.json)
		got := async.Decode(context.Background(), tc.raw, tc.ct, tc.json)
		if !reflect.DeepEqual(want, got) {
			t.Errorf("pool decode differs for %q: %v vs %v", tc.raw, got, want)
		}
	}
}

func TestPool_SubmitAfterClose(t *testing.T) {
	pool := NewPool(1)
	pool.Close()

	err := pool.Submit(context.Background(), func() {})
	if err != ErrClosed {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestDecode_PoolClosedFallsBackInline(t *testing.T) {
	pool := NewPool(1)
	pool.Close()

	d := newTestDecoder(WithRunner(pool))
	body := d.Decode(context.Background(), []byte(`{"a":1}`), "application/json", true)
	if _, ok := body.(map[string]any); !ok {
		t.Fatalf("expected inline fallback decode, got %T", body)
	}
}
