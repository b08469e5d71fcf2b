package mockup

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"

	"github.com/shouni/mockup-image-kit/pkg/imgutil"
)

// maskThreshold を超える輝度のピクセルだけが生地を透過させます。
// 出力の互換性を保つため、設定では変更できません。
const maskThreshold = 10

// PrepareMask はマスク画像を読み込み、純粋な白黒シルエットへ二値化します。
//
//  1. グレースケール化（ITU-R 601-2 輝度。PIL の convert("L") と同じ係数）
//  2. 輝度 > 10 を 255、それ以外を 0 に二値化
//  3. 寸法が target と異なる場合のみ Lanczos で target へリサイズ
//
// リサイズは二値化の「後」に行うため、エッジに中間調が再混入することが
// ありますが、既存出力との互換性のため補正しません。
func PrepareMask(path string, target image.Point) (*image.Gray, error) {
	src, err := imgutil.LoadNRGBA(path)
	if err != nil {
		return nil, fmt.Errorf("%w: マスク %s: %v", ErrDecode, path, err)
	}

	b := src.Bounds()
	mask := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			i := src.PixOffset(b.Min.X+x, b.Min.Y+y)
			r := int(src.Pix[i+0])
			g := int(src.Pix[i+1])
			bl := int(src.Pix[i+2])
			lum := (r*299 + g*587 + bl*114) / 1000
			if lum > maskThreshold {
				mask.Pix[y*mask.Stride+x] = 255
			} else {
				mask.Pix[y*mask.Stride+x] = 0
			}
		}
	}

	if b.Dx() == target.X && b.Dy() == target.Y {
		return mask, nil
	}

	slog.Warn("マスクとガーメントの寸法が一致しないためリサイズします",
		"mask_size", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
		"target_size", fmt.Sprintf("%dx%d", target.X, target.Y))

	resized := imaging.Resize(mask, target.X, target.Y, imaging.Lanczos)
	out := image.NewGray(image.Rect(0, 0, target.X, target.Y))
	for y := 0; y < target.Y; y++ {
		for x := 0; x < target.X; x++ {
			// リサイズ結果は R=G=B のグレーなので R を輝度として採用する
			out.Pix[y*out.Stride+x] = resized.Pix[resized.PixOffset(x, y)]
		}
	}
	return out, nil
}
