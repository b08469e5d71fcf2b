package mockup

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/disintegration/imaging"
)

// placeFitCenter は生地をキャンバスに収まる最大サイズへ拡大縮小し、
// scale によるズームを乗せたうえで中央に貼り付けた透明レイヤーを返します。
//
// scale が 0 以下の場合は警告を出して 1.0 に正規化します。
// ズームの結果キャンバスをはみ出す場合、貼り付けはキャンバス境界で
// クリップされます（負のオフセットはエラーではありません）。
func placeFitCenter(fabric *image.NRGBA, canvas image.Point, scale float64) (*image.NRGBA, error) {
	fabricW := fabric.Bounds().Dx()
	fabricH := fabric.Bounds().Dy()

	if canvas.Y == 0 || fabricH == 0 {
		return nil, fmt.Errorf("%w: 高さが 0 のためアスペクト比を計算できません", ErrInvalidDimension)
	}

	canvasRatio := float64(canvas.X) / float64(canvas.Y)
	fabricRatio := float64(fabricW) / float64(fabricH)

	// 'contain' 相当のフィット寸法。比率が等しい場合は高さ基準の分岐に入ります。
	var fitW, fitH int
	if fabricRatio > canvasRatio {
		fitW = canvas.X
		fitH = int(float64(fitW) / fabricRatio)
	} else {
		fitH = canvas.Y
		fitW = int(float64(fitH) * fabricRatio)
	}

	if scale <= 0 {
		slog.Warn("スケールが不正なため 1.0 に正規化します", "scale", scale)
		scale = 1.0
	}

	scaledW := int(float64(fitW) * scale)
	scaledH := int(float64(fitH) * scale)
	if scaledW <= 0 || scaledH <= 0 {
		return nil, fmt.Errorf("%w: スケール適用後の寸法が %dx%d に退化しました", ErrInvalidDimension, scaledW, scaledH)
	}

	resized := imaging.Resize(fabric, scaledW, scaledH, imaging.Lanczos)

	// 中央寄せのオフセット。ズームイン時は負になり得るが、Paste が
	// 交差領域だけを書き込むためそのまま渡してよい。
	px := floorDiv(canvas.X-scaledW, 2)
	py := floorDiv(canvas.Y-scaledH, 2)

	layer := imaging.New(canvas.X, canvas.Y, color.NRGBA{})
	return imaging.Paste(layer, resized, image.Pt(px, py)), nil
}

// placeScaleTile は生地の原寸へ scale を直接適用し、キャンバス全面に
// 左→右・上→下の順で敷き詰めた透明レイヤーを返します。
//
// スケール適用後の寸法が退化した場合は致命傷とせず、警告を出して原寸の
// 生地にフォールバックします（fit-center とは方針が異なりますが、
// 観測可能な出力を変えないため意図的に揃えていません）。
func placeScaleTile(fabric *image.NRGBA, canvas image.Point, scale float64) (*image.NRGBA, error) {
	tile := fabric
	if scale != 1.0 && scale > 0 {
		sw := int(float64(fabric.Bounds().Dx()) * scale)
		sh := int(float64(fabric.Bounds().Dy()) * scale)
		if sw > 0 && sh > 0 {
			tile = imaging.Resize(fabric, sw, sh, imaging.Lanczos)
		} else {
			slog.Warn("スケール適用後の寸法が退化したため原寸でタイリングします",
				"scale", scale, "scaled_size", fmt.Sprintf("%dx%d", sw, sh))
		}
	}

	stepX := tile.Bounds().Dx()
	stepY := tile.Bounds().Dy()
	if stepX <= 0 || stepY <= 0 {
		// ステップ 0 はループが進まないため明示的に拒否する
		return nil, fmt.Errorf("%w: タイル寸法が %dx%d です", ErrInvalidDimension, stepX, stepY)
	}

	layer := imaging.New(canvas.X, canvas.Y, color.NRGBA{})
	for y := 0; y < canvas.Y; y += stepY {
		for x := 0; x < canvas.X; x += stepX {
			// 端のタイルはキャンバス境界でクリップされる
			layer = imaging.Paste(layer, tile, image.Pt(x, y))
		}
	}
	return layer, nil
}

// floorDiv は負の数でも負の無限大方向へ丸める整数除算です。
// Go の / はゼロ方向へ切り捨てるため、中央寄せオフセットの計算には使えません。
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
