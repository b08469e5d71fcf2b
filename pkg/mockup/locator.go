package mockup

import (
	"fmt"
	"os"
	"path/filepath"
)

// 拡張子の探索順は固定です。先に見つかったものが勝ちます。
var (
	// CommonImageExts は生地・ガーメント画像の探索順です。
	CommonImageExts = []string{".jpg", ".png", ".jpeg", ".webp"}

	// MaskImageExts はマスク画像の探索順です。マスクに webp は使いません。
	MaskImageExts = []string{".png", ".jpg", ".jpeg"}
)

// FindAsset は directory 内で baseName に各拡張子を付けたファイルを順に探し、
// 最初に存在したパスを返します。ファイルが画像としてデコード可能かどうかは
// ここでは検証しません（デコード失敗は後段で ErrDecode になります）。
func FindAsset(directory, baseName string, exts []string) (string, error) {
	for _, ext := range exts {
		path := filepath.Join(directory, baseName+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s (dir=%s)", ErrAssetNotFound, baseName, directory)
}
