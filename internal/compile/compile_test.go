package compile

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/shadermake/manifest"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in   string
		want Target
	}{
		{"spv", Spirv},
		{"spirv", Spirv},
		{"wgsl", Wgsl},
		{"glsl", Glsl},
	}
	for _, tt := range tests {
		got, err := ParseTarget(tt.in)
		if err != nil {
			t.Errorf("ParseTarget(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseTarget(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseTarget("hlsl"); err == nil {
		t.Error("ParseTarget(hlsl) succeeded, want error")
	}
}

func TestTargetExtension(t *testing.T) {
	tests := []struct {
		target Target
		want   string
	}{
		{Spirv, "spv"},
		{Wgsl, "wgsl"},
		{Glsl, "glsl"},
	}
	for _, tt := range tests {
		if got := tt.target.Extension(); got != tt.want {
			t.Errorf("%v.Extension() = %q, want %q", tt.target, got, tt.want)
		}
	}
}

func TestGuessSourceKind(t *testing.T) {
	tests := []struct {
		path string
		want SourceKind
	}{
		{"blit.wgsl", SourceWgsl},
		{"post/bloom.wgsl", SourceWgsl},
		{"shadow.glsl", SourceGlsl},
	}
	for _, tt := range tests {
		got, err := GuessSourceKind(tt.path)
		if err != nil {
			t.Errorf("GuessSourceKind(%q): %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("GuessSourceKind(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}

	for _, path := range []string{"shader.hlsl", "shader.WGSL", "shader"} {
		if _, err := GuessSourceKind(path); !errors.Is(err, ErrUnknownSourceKind) {
			t.Errorf("GuessSourceKind(%q): got %v, want ErrUnknownSourceKind", path, err)
		}
	}
}

func TestLookup(t *testing.T) {
	supported := []struct {
		source SourceKind
		target Target
	}{
		{SourceWgsl, Spirv},
		{SourceWgsl, Wgsl},
		{SourceWgsl, Glsl},
		{SourceGlsl, Spirv},
		{SourceGlsl, Glsl},
	}
	for _, tt := range supported {
		fn, err := Lookup(tt.source, tt.target)
		if err != nil {
			t.Errorf("Lookup(%v, %v): %v", tt.source, tt.target, err)
		}
		if fn == nil {
			t.Errorf("Lookup(%v, %v) returned nil func", tt.source, tt.target)
		}
	}

	if _, err := Lookup(SourceGlsl, Wgsl); !errors.Is(err, ErrNoCompilationPath) {
		t.Errorf("Lookup(glsl, wgsl): got %v, want ErrNoCompilationPath", err)
	}
}

func TestIdentityIsFixedPoint(t *testing.T) {
	source := []byte("void main() { /* anything at all */ }")

	for _, tt := range []struct {
		source SourceKind
		target Target
	}{
		{SourceWgsl, Wgsl},
		{SourceGlsl, Glsl},
	} {
		fn, err := Lookup(tt.source, tt.target)
		if err != nil {
			t.Fatalf("Lookup(%v, %v): %v", tt.source, tt.target, err)
		}
		out, err := fn(source, manifest.Fragment, tt.target)
		if err != nil {
			t.Fatalf("identity failed: %v", err)
		}
		if !bytes.Equal(out, source) {
			t.Errorf("identity changed bytes: got %q, want %q", out, source)
		}
	}
}

const fragmentWgsl = `
@fragment
fn main(@location(0) color: vec4<f32>) -> @location(0) vec4<f32> {
    return color;
}
`

func TestNagaWgslToSpirv(t *testing.T) {
	out, err := nagaWgsl([]byte(fragmentWgsl), manifest.Fragment, Spirv)
	if err != nil {
		t.Fatalf("nagaWgsl: %v", err)
	}
	if len(out) < 20 {
		t.Fatalf("SPIR-V output too short: %d bytes", len(out))
	}
	magic := uint32(out[0]) | uint32(out[1])<<8 | uint32(out[2])<<16 | uint32(out[3])<<24
	if magic != 0x07230203 {
		t.Errorf("invalid SPIR-V magic: got 0x%08x, want 0x07230203", magic)
	}
}

func TestNagaWgslToGlsl(t *testing.T) {
	out, err := nagaWgsl([]byte(fragmentWgsl), manifest.Fragment, Glsl)
	if err != nil {
		t.Fatalf("nagaWgsl: %v", err)
	}
	if !strings.Contains(string(out), "#version 450") {
		t.Errorf("GLSL output missing desktop 450 directive:\n%s", out)
	}
}

func TestNagaWgslParseError(t *testing.T) {
	_, err := nagaWgsl([]byte("@fragment fn main( {"), manifest.Fragment, Spirv)
	if err == nil {
		t.Fatal("nagaWgsl succeeded on malformed source")
	}
	if !strings.Contains(err.Error(), "failed to parse WGSL") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNagaWgslInvalidUTF8(t *testing.T) {
	_, err := nagaWgsl([]byte{0xff, 0xfe, 0xfd}, manifest.Vertex, Spirv)
	if err == nil {
		t.Fatal("nagaWgsl succeeded on invalid UTF-8")
	}
}
