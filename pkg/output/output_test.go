package output

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 60), B: 128, A: 255})
		}
	}
	return img
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"png", FormatPNG, false},
		{".PNG", FormatPNG, false},
		{"webp", FormatWebP, false},
		{".tga", FormatTGA, false},
		{"bmp", FormatBMP, false},
		{"jpeg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}

	if f, err := FormatFromPath("out/render_1.webp"); err != nil || f != FormatWebP {
		t.Errorf("FormatFromPath: got %q, %v", f, err)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	img := testImage()

	decoders := map[Format]func(io.Reader) (image.Image, error){
		FormatPNG: png.Decode,
		FormatBMP: bmp.Decode,
		FormatTGA: tga.Decode,
	}

	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			data, err := EncodeBytes(img, format)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			decoded, err := decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if decoded.Bounds().Size() != img.Bounds().Size() {
				t.Fatalf("Expected size %v, got %v", img.Bounds().Size(), decoded.Bounds().Size())
			}
			r, g, b, _ := decoded.At(3, 2).RGBA()
			want := img.RGBAAt(3, 2)
			if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
				t.Errorf("Pixel (3,2): expected %v, got %d %d %d", want, r>>8, g>>8, b>>8)
			}
		})
	}
}

func TestEncode_WebP(t *testing.T) {
	data, err := EncodeBytes(testImage(), FormatWebP)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WEBP" {
		t.Errorf("Expected a RIFF/WEBP container, got header %q", data[:min(12, len(data))])
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	if err := Encode(io.Discard, testImage(), Format("gif")); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestThumbnail(t *testing.T) {
	thumb, err := Thumbnail(testImage(), 4)
	if err != nil {
		t.Fatalf("Thumbnail failed: %v", err)
	}
	if size := thumb.Bounds().Size(); size.X != 4 || size.Y != 2 {
		t.Errorf("Expected 4x2 thumbnail, got %v", size)
	}

	if _, err := Thumbnail(testImage(), 0); err == nil {
		t.Error("Expected error for zero width")
	}
}

// fakeS3 records PutObject calls
type fakeS3 struct {
	s3iface.S3API
	inputs []*s3.PutObjectInput
	err    error
}

func (f *fakeS3) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	f.inputs = append(f.inputs, input)
	return &s3.PutObjectOutput{}, f.err
}

func TestS3Uploader_Upload(t *testing.T) {
	client := &fakeS3{}
	uploader := NewS3UploaderWithClient(client, "renders")

	if err := uploader.Upload(context.Background(), "a/b.png", []byte("data"), FormatPNG.ContentType()); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if len(client.inputs) != 1 {
		t.Fatalf("Expected 1 PutObject call, got %d", len(client.inputs))
	}
	in := client.inputs[0]
	if aws.StringValue(in.Bucket) != "renders" || aws.StringValue(in.Key) != "a/b.png" {
		t.Errorf("Unexpected bucket/key %q/%q", aws.StringValue(in.Bucket), aws.StringValue(in.Key))
	}
	if aws.StringValue(in.ContentType) != "image/png" || aws.Int64Value(in.ContentLength) != 4 {
		t.Errorf("Unexpected content type/length %q/%d", aws.StringValue(in.ContentType), aws.Int64Value(in.ContentLength))
	}
}

func TestS3Uploader_UploadError(t *testing.T) {
	failure := errors.New("boom")
	uploader := NewS3UploaderWithClient(&fakeS3{err: failure}, "renders")

	if err := uploader.Upload(context.Background(), "k", nil, "image/png"); !errors.Is(err, failure) {
		t.Errorf("Expected wrapped upload error, got %v", err)
	}
}

func TestNewS3Uploader_RequiresBucket(t *testing.T) {
	if _, err := NewS3Uploader(S3Config{Region: "us-east-1"}); err == nil {
		t.Error("Expected error without bucket")
	}
}
