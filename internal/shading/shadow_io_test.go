package shading

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"testing"
)

func TestShadowMapRoundTrip(t *testing.T) {
	sm, err := NewShadowMap(8)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			sm.Depth().Set(x, y, float32(x*8+y)/64)
		}
	}

	blob, err := EncodeShadowMap(sm)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodeShadowMap(blob)
	if err != nil {
		t.Fatal(err)
	}

	if decoded.Size() != 8 {
		t.Fatalf("decoded size = %d, want 8", decoded.Size())
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got, want := decoded.Depth().At(x, y), sm.Depth().At(x, y); got != want {
				t.Fatalf("depth at (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDecodeShadowMapRejectsGarbage(t *testing.T) {
	if _, err := DecodeShadowMap([]byte("not a shadow map")); err == nil {
		t.Fatal("expected error for non-gzip input")
	}
}

func TestDecodeShadowMapRejectsWrongMagic(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if err := binary.Write(gz, binary.LittleEndian, uint32(0xDEADBEEF)); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeShadowMap(buf.Bytes()); err == nil {
		t.Fatal("expected error for wrong magic")
	}
}
