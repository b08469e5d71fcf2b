package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// HumanizeGarmentName は "mens_polo_shirt" のようなファイル名由来の
// ガーメント名を "Mens Polo Shirt" の表示用文字列に変換します。
func HumanizeGarmentName(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "_", " "))
}
