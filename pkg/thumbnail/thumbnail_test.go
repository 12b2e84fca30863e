package thumbnail

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
)

func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDerive(t *testing.T) {
	t.Run("성공 - 가로 이미지 레터박스", func(t *testing.T) {
		src := encodePNG(t, 200, 100, color.RGBA{R: 255, A: 255})

		out, contentType, err := Derive(src, ".png")
		assert.NoError(t, err)
		assert.Equal(t, "image/png", contentType)

		img, _, err := image.Decode(bytes.NewReader(out))
		assert.NoError(t, err)
		assert.Equal(t, Side, img.Bounds().Dx())
		assert.Equal(t, Side, img.Bounds().Dy())

		// 상단 레터박스 영역은 흰색이어야 함
		r, g, b, _ := img.At(Side/2, 2).RGBA()
		assert.Equal(t, uint32(0xffff), r)
		assert.Equal(t, uint32(0xffff), g)
		assert.Equal(t, uint32(0xffff), b)
	})

	t.Run("성공 - jpg 확장자는 JPEG 인코딩", func(t *testing.T) {
		src := encodePNG(t, 64, 64, color.RGBA{B: 255, A: 255})

		out, contentType, err := Derive(src, ".jpg")
		assert.NoError(t, err)
		assert.Equal(t, "image/jpeg", contentType)

		_, format, err := image.Decode(bytes.NewReader(out))
		assert.NoError(t, err)
		assert.Equal(t, "jpeg", format)
	})

	t.Run("실패 - 이미지가 아닌 바이트", func(t *testing.T) {
		_, _, err := Derive([]byte("not an image"), ".png")
		assert.Error(t, err)
	})
}
