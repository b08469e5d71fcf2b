package mockup

import "errors"

// パイプラインの失敗をステージ別に識別するための番兵エラー群です。
// どの段階で失敗したかを errors.Is で判別できるよう、包括的なエラーに
// まとめず個別に定義しています。
var (
	// ErrAssetNotFound は生地・ガーメント・マスクいずれかのファイルが
	// 見つからなかったことを示します。
	ErrAssetNotFound = errors.New("asset not found")

	// ErrDecode はファイルは存在するが画像としてデコードできなかった
	// ことを示します。
	ErrDecode = errors.New("image decode failed")

	// ErrInvalidDimension は計算されたピクセル寸法が 0 以下に退化した
	// ことを示します（高さ0のソース、極端なスケール等）。
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrSave は最終画像の書き出しに失敗したことを示します。
	ErrSave = errors.New("save failed")
)
