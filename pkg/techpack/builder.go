package techpack

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"

	"github.com/shouni/mockup-image-kit/pkg/config"
	"github.com/shouni/mockup-image-kit/pkg/mockup"
)

// Builder は生成済みモックアップをテックパックテンプレートへ重ねた
// A4 の PDF を組み立てます。
type Builder struct {
	templateDir string
	outputDir   string
	coords      config.TechpackCoords
}

// NewBuilder は Builder を初期化します。
func NewBuilder(templateDir, outputDir string, coords config.TechpackCoords) (*Builder, error) {
	if templateDir == "" {
		return nil, fmt.Errorf("templateDir is required")
	}
	if outputDir == "" {
		return nil, fmt.Errorf("outputDir is required")
	}
	if coords.TotalTemplateWidthPx <= 0 || coords.TotalTemplateHeightPx <= 0 {
		return nil, fmt.Errorf("techpack_coords のテンプレート寸法が不正です")
	}
	return &Builder{templateDir: templateDir, outputDir: outputDir, coords: coords}, nil
}

// TemplatePath は "techpack_<garment>.jpg" の探索先を返します。
// テンプレートが存在しない場合はエラーです。
func (b *Builder) TemplatePath(garmentName string) (string, error) {
	path := filepath.Join(b.templateDir, fmt.Sprintf("techpack_%s.jpg", garmentName))
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("テックパックテンプレートが見つかりません: %s", path)
	}
	return path, nil
}

// Create はテンプレートを全面に敷き、その上へモックアップを配置領域に
// 描画した PDF を保存してパスを返します。失敗時は書きかけの PDF を
// 残しません。
func (b *Builder) Create(mockupImg image.Image, garmentName, fabricRef string) (string, error) {
	templatePath, err := b.TemplatePath(garmentName)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(b.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("PDF出力ディレクトリ作成: %w", err)
	}
	pdfPath := filepath.Join(b.outputDir, mockup.TechpackFileName(garmentName, fabricRef))

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	// 1. テンプレートをページ全面へ（アスペクト比維持・中央寄せ）
	tplInfo := pdf.RegisterImageOptions(templatePath, gofpdf.ImageOptions{ImageType: "JPG"})
	if pdf.Err() {
		return "", fmt.Errorf("テンプレート画像の読み込みに失敗しました %s: %v", templatePath, pdf.Error())
	}
	tx, ty, tw, th := fitRect(tplInfo.Width(), tplInfo.Height(), 0, 0, pageW, pageH)
	pdf.ImageOptions(templatePath, tx, ty, tw, th, false, gofpdf.ImageOptions{ImageType: "JPG"}, 0, "")

	// 2. モックアップを配置領域へ（アスペクト比維持・中央寄せ）
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, mockupImg, imaging.PNG); err != nil {
		return "", fmt.Errorf("モックアップのPNGエンコードに失敗しました: %w", err)
	}
	mockInfo := pdf.RegisterImageOptionsReader("mockup", gofpdf.ImageOptions{ImageType: "PNG"}, &buf)
	if pdf.Err() {
		return "", fmt.Errorf("モックアップ画像の登録に失敗しました: %v", pdf.Error())
	}

	box := CalculateBox(b.coords, pageW, pageH)
	// Box は PDF 座標（左下原点）。gofpdf は左上原点なので変換する。
	boxTop := pageH - box.Y - box.H
	mx, my, mw, mh := fitRect(mockInfo.Width(), mockInfo.Height(), box.X, boxTop, box.W, box.H)
	pdf.ImageOptions("mockup", mx, my, mw, mh, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	if err := pdf.OutputFileAndClose(pdfPath); err != nil {
		// 書きかけのファイルは掃除する
		os.Remove(pdfPath)
		return "", fmt.Errorf("PDFの書き出しに失敗しました %s: %w", pdfPath, err)
	}

	slog.Info("テックパックを生成しました", "path", pdfPath)
	return pdfPath, nil
}

// fitRect は (bx,by,bw,bh) の枠内にアスペクト比を維持したまま収まる
// 最大の矩形を中央寄せで返します。
func fitRect(imgW, imgH, bx, by, bw, bh float64) (x, y, w, h float64) {
	if imgW <= 0 || imgH <= 0 {
		return bx, by, bw, bh
	}
	scale := bw / imgW
	if s := bh / imgH; s < scale {
		scale = s
	}
	w = imgW * scale
	h = imgH * scale
	x = bx + (bw-w)/2
	y = by + (bh-h)/2
	return x, y, w, h
}
