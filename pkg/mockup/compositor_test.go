package mockup

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeWithMask(t *testing.T) {
	fabricColor := color.NRGBA{R: 200, G: 40, B: 0, A: 255}
	garmentColor := color.NRGBA{R: 0, G: 100, B: 250, A: 255}

	newMask := func(w, h int, v uint8) *image.Gray {
		m := image.NewGray(image.Rect(0, 0, w, h))
		for i := range m.Pix {
			m.Pix[i] = v
		}
		return m
	}

	t.Run("マスク255は生地、0はガーメントがそのまま出ること", func(t *testing.T) {
		fabric := newUniformNRGBA(4, 4, fabricColor)
		garment := newUniformNRGBA(4, 4, garmentColor)

		out, err := compositeWithMask(fabric, garment, newMask(4, 4, 255))
		require.NoError(t, err)
		assert.Equal(t, fabricColor, out.NRGBAAt(2, 2))

		out, err = compositeWithMask(fabric, garment, newMask(4, 4, 0))
		require.NoError(t, err)
		assert.Equal(t, garmentColor, out.NRGBAAt(2, 2))
	})

	t.Run("中間値は線形に混合されること", func(t *testing.T) {
		fabric := newUniformNRGBA(2, 2, fabricColor)
		garment := newUniformNRGBA(2, 2, garmentColor)

		out, err := compositeWithMask(fabric, garment, newMask(2, 2, 128))
		require.NoError(t, err)

		got := out.NRGBAAt(0, 0)
		// out = (f*m + g*(255-m) + 127) / 255
		blend := func(f, g uint8) uint8 {
			return uint8((int(f)*128 + int(g)*127 + 127) / 255)
		}
		assert.Equal(t, blend(fabricColor.R, garmentColor.R), got.R)
		assert.Equal(t, blend(fabricColor.G, garmentColor.G), got.G)
		assert.Equal(t, blend(fabricColor.B, garmentColor.B), got.B)
		assert.Equal(t, uint8(255), got.A)
	})

	t.Run("アルファもマスク比率で混合されること", func(t *testing.T) {
		// 透明な生地レイヤー部分（fit-center の余白）にマスク255が
		// かかると、出力もその場所では透明になる
		fabric := newUniformNRGBA(2, 2, color.NRGBA{})
		garment := newUniformNRGBA(2, 2, garmentColor)

		out, err := compositeWithMask(fabric, garment, newMask(2, 2, 255))
		require.NoError(t, err)
		assert.Equal(t, uint8(0), out.NRGBAAt(1, 1).A)
	})

	t.Run("寸法不一致は ErrInvalidDimension になること", func(t *testing.T) {
		fabric := newUniformNRGBA(4, 4, fabricColor)
		garment := newUniformNRGBA(5, 4, garmentColor)

		_, err := compositeWithMask(fabric, garment, newMask(4, 4, 255))
		assert.True(t, errors.Is(err, ErrInvalidDimension))
	})
}
