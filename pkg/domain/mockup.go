package domain

// PlacementMode は生地をキャンバスへ配置する際のアルゴリズムを示すタグ付きの列挙です。
// 2つのモードは同一スケール値でも出力が大きく異なるため、呼び出し側が明示的に選択します。
type PlacementMode int

const (
	// ModeFitCenter はアスペクト比を維持したままキャンバスに収まる最大サイズへ
	// 拡大縮小し、中央に配置するモードです（CSS の 'contain' 相当）。
	ModeFitCenter PlacementMode = iota

	// ModeScaleTile は生地の原寸にスケールを直接適用し、キャンバス全面へ
	// 左上からタイル状に敷き詰めるモードです。
	ModeScaleTile
)

// String は設定ファイルやログ向けのモード名を返します。
func (m PlacementMode) String() string {
	switch m {
	case ModeScaleTile:
		return "scale_tile"
	default:
		return "fit_center"
	}
}

// MockupRequest は1回のモックアップ生成要求です。
// Scale が 0 以下の場合の正規化は呼び出し側境界（CLI等）の責務ですが、
// コア側にも最終防衛があります。
type MockupRequest struct {
	FabricRef   string
	GarmentName string
	Scale       float64
	Mode        PlacementMode
}

// MockupResult は生成されたモックアップの保存結果です。
type MockupResult struct {
	Path string // 保存先の絶対または相対パス
}
