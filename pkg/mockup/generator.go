package mockup

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/disintegration/imaging"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/mockup-image-kit/pkg/domain"
	"github.com/shouni/mockup-image-kit/pkg/imgutil"
)

// Dirs はアセットの所在と出力先です。グローバル状態ではなく、
// Generator へ明示的に注入します。
type Dirs struct {
	FabricDir  string // 生地画像
	GarmentDir string // ガーメント（ベース写真）
	MaskDir    string // マスク（<garment>_mask.<ext>）
	OutputDir  string // 生成結果の保存先
}

// Generator はモックアップ生成パイプラインの本体です。
// 1回の生成は ロケート → デコード → マスク準備 → 配置 → 合成 → 出力 の
// 逐次処理で、呼び出し間で共有する可変状態を持ちません。
// 同名の出力への並行書き込みは last-write-wins です（ロックはしません）。
type Generator struct {
	dirs       Dirs
	reader     remoteio.InputReader    // gs:// の生地参照用。nil 許容
	httpClient httpkit.ClientInterface // http(s) の生地参照用。nil 許容
}

// NewGenerator は依存関係を注入して Generator を初期化します。
// reader と httpClient はリモート生地参照を使わない場合 nil で構いません。
func NewGenerator(dirs Dirs, reader remoteio.InputReader, httpClient httpkit.ClientInterface) (*Generator, error) {
	if dirs.FabricDir == "" {
		return nil, fmt.Errorf("dirs.FabricDir is required")
	}
	if dirs.GarmentDir == "" {
		return nil, fmt.Errorf("dirs.GarmentDir is required")
	}
	if dirs.MaskDir == "" {
		return nil, fmt.Errorf("dirs.MaskDir is required")
	}

	return &Generator{
		dirs:       dirs,
		reader:     reader,
		httpClient: httpClient,
	}, nil
}

// Generate はモックアップを生成し、メモリ上のビットマップとして返します。
// 出力先ディレクトリには一切触れません。
func (g *Generator) Generate(ctx context.Context, req domain.MockupRequest) (*image.NRGBA, error) {
	slog.Info("モックアップ生成を開始します",
		"fabric", req.FabricRef, "garment", req.GarmentName,
		"scale", req.Scale, "mode", req.Mode.String())

	fabric, err := g.loadFabric(ctx, req.FabricRef)
	if err != nil {
		return nil, err
	}

	garmentPath, err := FindAsset(g.dirs.GarmentDir, req.GarmentName, CommonImageExts)
	if err != nil {
		return nil, fmt.Errorf("ガーメント %q: %w", req.GarmentName, err)
	}
	garment, err := imgutil.LoadNRGBA(garmentPath)
	if err != nil {
		return nil, fmt.Errorf("%w: ガーメント %s: %v", ErrDecode, garmentPath, err)
	}
	canvas := image.Pt(garment.Bounds().Dx(), garment.Bounds().Dy())

	maskPath, err := FindAsset(g.dirs.MaskDir, req.GarmentName+"_mask", MaskImageExts)
	if err != nil {
		return nil, fmt.Errorf("マスク %q: %w", req.GarmentName+"_mask", err)
	}
	mask, err := PrepareMask(maskPath, canvas)
	if err != nil {
		return nil, err
	}

	var layer *image.NRGBA
	switch req.Mode {
	case domain.ModeScaleTile:
		layer, err = placeScaleTile(fabric, canvas, req.Scale)
	default:
		layer, err = placeFitCenter(fabric, canvas, req.Scale)
	}
	if err != nil {
		return nil, err
	}

	return compositeWithMask(layer, garment, mask)
}

// CreateMockup はモックアップを生成してディスクへ保存し、保存先パスを返します。
// 出力ファイルはパイプライン全体が成功した場合にのみ書き込まれます。
func (g *Generator) CreateMockup(ctx context.Context, req domain.MockupRequest) (*domain.MockupResult, error) {
	img, err := g.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(g.dirs.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: 出力ディレクトリ作成: %v", ErrSave, err)
	}

	// 部分的なファイルを残さないよう、まずメモリ上でエンコードしてから
	// 一括で書き出す。
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("%w: PNGエンコード: %v", ErrSave, err)
	}

	outPath := MockupPath(g.dirs.OutputDir, req.GarmentName, req.FabricRef)
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSave, outPath, err)
	}

	slog.Info("モックアップを保存しました", "path", outPath)
	return &domain.MockupResult{Path: outPath}, nil
}

// loadFabric は生地参照を解決します。URL 形式（http/https/gs）の場合は
// リモートから取得し、それ以外はローカルの生地ディレクトリを探索します。
func (g *Generator) loadFabric(ctx context.Context, ref string) (*image.NRGBA, error) {
	if isRemoteRef(ref) {
		data, err := g.fetchFabricData(ctx, ref)
		if err != nil {
			return nil, err
		}
		img, err := imaging.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: リモート生地 %s: %v", ErrDecode, ref, err)
		}
		return imgutil.ToNRGBA(img), nil
	}

	path, err := FindAsset(g.dirs.FabricDir, ref, CommonImageExts)
	if err != nil {
		return nil, fmt.Errorf("生地 %q: %w", ref, err)
	}
	fabric, err := imgutil.LoadNRGBA(path)
	if err != nil {
		return nil, fmt.Errorf("%w: 生地 %s: %v", ErrDecode, path, err)
	}
	return fabric, nil
}
