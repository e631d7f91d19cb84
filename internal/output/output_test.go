package output

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/bmp"
)

func TestToNRGBA(t *testing.T) {
	// 2x2: top row red, black; bottom row out-of-range, half-red
	pix := []mgl64.Vec3{
		{255, 0, 0}, {0, 0, 0},
		{-5, 300, 12.4}, {127.5, 0, 0},
	}
	img := ToNRGBA(pix, 2, 2)

	tests := []struct {
		x, y       int
		r, g, b, a uint8
	}{
		{0, 0, 255, 0, 0, 255},
		{1, 0, 0, 0, 0, 255},
		{0, 1, 0, 255, 12, 255},
		{1, 1, 128, 0, 0, 255},
	}
	for _, tc := range tests {
		c := img.NRGBAAt(tc.x, tc.y)
		if c.R != tc.r || c.G != tc.g || c.B != tc.b || c.A != tc.a {
			t.Errorf("(%d, %d) = %v, want {%d %d %d %d}", tc.x, tc.y, c, tc.r, tc.g, tc.b, tc.a)
		}
	}
}

func TestUpscale(t *testing.T) {
	src := ToNRGBA([]mgl64.Vec3{{255, 0, 0}, {0, 0, 255}}, 2, 1)
	dst := Upscale(src, 3)
	if dst.Bounds() != image.Rect(0, 0, 6, 3) {
		t.Fatalf("bounds = %v, want 6x3", dst.Bounds())
	}
	if c := dst.NRGBAAt(2, 2); c.R != 255 || c.B != 0 {
		t.Errorf("(2, 2) = %v, want red", c)
	}
	if c := dst.NRGBAAt(3, 0); c.B != 255 || c.R != 0 {
		t.Errorf("(3, 0) = %v, want blue", c)
	}
	if Upscale(src, 1) != src {
		t.Error("Upscale(1) should return the input")
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"png":  FormatPNG,
		"WEBP": FormatWebP,
		".tga": FormatTGA,
		"bmp":  FormatBMP,
	} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Error("ParseFormat(gif) returned nil error")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	img := ToNRGBA([]mgl64.Vec3{
		{255, 0, 0}, {0, 255, 0},
		{0, 0, 255}, {10, 20, 30},
	}, 2, 2)

	decoders := map[Format]func(*bytes.Reader) (image.Image, error){
		FormatPNG: func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		FormatTGA: func(r *bytes.Reader) (image.Image, error) { return tga.Decode(r) },
		FormatBMP: func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
	}

	for f, decode := range decoders {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, img, f); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := decode(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			r, g, b, _ := got.At(1, 1).RGBA()
			if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
				t.Errorf("(1, 1) = %d %d %d, want 10 20 30", r>>8, g>>8, b>>8)
			}
		})
	}
}

func TestWriteFileWebP(t *testing.T) {
	img := ToNRGBA([]mgl64.Vec3{{255, 0, 0}}, 1, 1)
	path := filepath.Join(t.TempDir(), "nested", "frame.webp")
	if err := WriteFile(path, img, FormatWebP); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WEBP" {
		t.Errorf("file does not start with a RIFF/WEBP header: % x", data[:min(len(data), 12)])
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	img := ToNRGBA([]mgl64.Vec3{{0, 0, 0}}, 1, 1)
	if err := Encode(&bytes.Buffer{}, img, Format("gif")); err == nil {
		t.Error("Encode(gif) returned nil error")
	}
}
