package mockup

import (
	"fmt"
	"path/filepath"
)

// 出力ファイル名の決定的な命名規則です。同じ入力は常に同じ名前になり、
// 同名への並行書き込みは last-write-wins になります。
const (
	// MockupFilePrefix はモックアップ出力ファイル名の固定プレフィックスです。
	MockupFilePrefix = "SRX Mockup_"

	// TechpackFilePrefix はテックパック PDF のファイル名プレフィックスです。
	TechpackFilePrefix = "SRX Techpack_"
)

// MockupFileName は "SRX Mockup_<garment>_<ref>.png" を返します。
func MockupFileName(garmentName, fabricRef string) string {
	return fmt.Sprintf("%s%s_%s.png", MockupFilePrefix, garmentName, fabricRef)
}

// MockupPath は出力ディレクトリ内の保存先パスを返します。
func MockupPath(outputDir, garmentName, fabricRef string) string {
	return filepath.Join(outputDir, MockupFileName(garmentName, fabricRef))
}

// TechpackFileName は "SRX Techpack_<garment>_<ref>.pdf" を返します。
func TechpackFileName(garmentName, fabricRef string) string {
	return fmt.Sprintf("%s%s_%s.pdf", TechpackFilePrefix, garmentName, fabricRef)
}
