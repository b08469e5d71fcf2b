package mockup

import (
	"fmt"
	"image"
)

// compositeWithMask はマスクの輝度を混合比として、生地レイヤーを
// ガーメントの上に合成します。マスクが 255 のピクセルは生地、0 は
// ガーメント、中間値は線形補間です。アルファを含む4チャンネル全てを
// 同じ比率で混合します（PIL の Image.composite と同じ意味論）。
//
// 3枚の寸法は上流の工程で一致が保証されている前提です。
func compositeWithMask(fabricLayer, garment *image.NRGBA, mask *image.Gray) (*image.NRGBA, error) {
	w := garment.Bounds().Dx()
	h := garment.Bounds().Dy()
	if fabricLayer.Bounds().Dx() != w || fabricLayer.Bounds().Dy() != h ||
		mask.Bounds().Dx() != w || mask.Bounds().Dy() != h {
		return nil, fmt.Errorf("%w: レイヤー寸法が一致しません", ErrInvalidDimension)
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m := int(mask.Pix[y*mask.Stride+x])
			fi := fabricLayer.PixOffset(x, y)
			gi := garment.PixOffset(x, y)
			oi := out.PixOffset(x, y)
			for c := 0; c < 4; c++ {
				f := int(fabricLayer.Pix[fi+c])
				g := int(garment.Pix[gi+c])
				out.Pix[oi+c] = uint8((f*m + g*(255-m) + 127) / 255)
			}
		}
	}
	return out, nil
}
