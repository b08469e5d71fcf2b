package techpack

import "github.com/shouni/mockup-image-kit/pkg/config"

// Box は PDF ページ上の配置領域（ポイント単位、左下原点）です。
type Box struct {
	X, Y, W, H float64
}

// CalculateBox はテンプレート上のピクセル座標（左上原点）を PDF の
// ポイント座標（左下原点）へ変換します。テンプレート画像がページ全面に
// 引き伸ばされる前提で、比率だけを使って変換します。
func CalculateBox(coords config.TechpackCoords, pageW, pageH float64) Box {
	xRatio := float64(coords.SelectionXPx) / float64(coords.TotalTemplateWidthPx)
	yRatio := float64(coords.SelectionYPx) / float64(coords.TotalTemplateHeightPx)
	wRatio := float64(coords.SelectionWidthPx) / float64(coords.TotalTemplateWidthPx)
	hRatio := float64(coords.SelectionHeightPx) / float64(coords.TotalTemplateHeightPx)

	w := wRatio * pageW
	h := hRatio * pageH
	x := xRatio * pageW

	// Y 軸の反転。ピクセル座標は上から、PDF は下から数える。
	yTop := (1 - yRatio) * pageH
	yBottom := yTop - h

	return Box{X: x, Y: yBottom, W: w, H: h}
}
