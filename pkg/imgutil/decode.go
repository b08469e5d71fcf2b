package imgutil

import (
	"image"
	"os"

	"github.com/disintegration/imaging"

	// ロケーターが .webp を候補に含むため、デコーダを登録しておきます。
	_ "golang.org/x/image/webp"
)

// LoadNRGBA はファイルを開き、非乗算アルファの RGBA ビットマップとして返します。
// PIL の convert("RGBA") 相当の正規化です。
func LoadNRGBA(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, err
	}
	return imaging.Clone(img), nil
}

// ToNRGBA は任意の image.Image を *image.NRGBA に変換します。
// すでに NRGBA であってもコピーを返します（呼び出し元の画像は変更されません）。
func ToNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}
