package imgutil

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/shouni/gemini-poem-kit/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// テスト用のダミー画像（10x10の赤い正方形）を作成するヘルパー
func createDummyImageData(t *testing.T, format string) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}

	buf := new(bytes.Buffer)
	var err error
	switch format {
	case "png":
		err = png.Encode(buf, img)
	case "jpeg":
		err = jpeg.Encode(buf, img, nil)
	default:
		t.Fatalf("unsupported format: %s", format)
	}

	if err != nil {
		t.Fatalf("failed to encode dummy image: %v", err)
	}
	return buf.Bytes()
}

func TestFromBytes(t *testing.T) {
	t.Run("PNG画像はimage/pngとして判定される", func(t *testing.T) {
		data := createDummyImageData(t, "png")

		p, err := FromBytes(data)
		require.NoError(t, err)
		assert.Equal(t, "image/png", p.MimeType)
		assert.Equal(t, base64.StdEncoding.EncodeToString(data), p.Data)
	})

	t.Run("JPEG画像はimage/jpegとして判定される", func(t *testing.T) {
		p, err := FromBytes(createDummyImageData(t, "jpeg"))
		require.NoError(t, err)
		assert.Equal(t, "image/jpeg", p.MimeType)
	})

	t.Run("画像でないデータはエラー", func(t *testing.T) {
		_, err := FromBytes([]byte("this is not an image"))
		assert.ErrorIs(t, err, ErrNotImage)
	})

	t.Run("空データはエラー", func(t *testing.T) {
		_, err := FromBytes(nil)
		assert.ErrorIs(t, err, ErrEmptyImage)
	})
}

func TestParseDataURL(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantMime string
		wantData string
		wantErr  bool
	}{
		{"正常なPNG", "data:image/png;base64,iVBORw0KGgo=", "image/png", "iVBORw0KGgo=", false},
		{"前後の空白は許容", "  data:image/webp;base64,UklGRg==\n", "image/webp", "UklGRg==", false},
		{"data:で始まらない", "image/png;base64,abc", "", "", true},
		{"区切りのカンマがない", "data:image/png;base64", "", "", true},
		{"base64ではない", "data:image/png,abc", "", "", true},
		{"画像ではないMIME", "data:text/plain;base64,aGVsbG8=", "", "", true},
		{"データが空", "data:image/png;base64,", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseDataURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMime, p.MimeType)
			assert.Equal(t, tt.wantData, p.Data)
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("FromBytesの結果を元に戻せる", func(t *testing.T) {
		data := createDummyImageData(t, "png")
		p, err := FromBytes(data)
		require.NoError(t, err)

		got, err := Decode(p)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("空データはエラー", func(t *testing.T) {
		_, err := Decode(domain.ImagePayload{Data: "  ", MimeType: "image/png"})
		assert.ErrorIs(t, err, ErrEmptyImage)
	})

	t.Run("不正なbase64はエラー", func(t *testing.T) {
		_, err := Decode(domain.ImagePayload{Data: "!!!not-base64", MimeType: "image/png"})
		assert.Error(t, err)
	})
}
