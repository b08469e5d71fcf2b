package domain

// FabricRecord は生地データベース（Excel）の1行に対応するレコードです。
type FabricRecord struct {
	Ref         string `json:"ref"`
	Style       string `json:"style"`
	Fabrication string `json:"fabrication"`
}

// MockupEntry は生成済みモックアップ1件の公開情報です。
type MockupEntry struct {
	GarmentName string  `json:"garmentName"`
	MockupURL   string  `json:"mockupUrl"`
	TechpackURL *string `json:"techpackUrl"` // テックパック未生成の場合は null
}

// MockupSet はカテゴリ別に整理したモックアップの一覧です。
// JSON のキー名はフロントエンドとの互換のため固定です。
type MockupSet struct {
	Men   []MockupEntry `json:"men"`
	Women []MockupEntry `json:"women"`
	Kids  []MockupEntry `json:"kids"`
}

// FabricHit は検索 API が返す生地1件分の統合結果です。
// スウォッチ画像と生成済みモックアップを一度のフェッチでまとめて返します。
type FabricHit struct {
	Ref              string    `json:"ref"`
	Style            string    `json:"style"`
	SwatchURL        string    `json:"swatchUrl"`
	AvailableMockups MockupSet `json:"availableMockups"`
}
