package mockup

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"
)

// isRemoteRef は生地参照がローカルのコード名ではなく URI かどうかを判定します。
func isRemoteRef(ref string) bool {
	return strings.HasPrefix(ref, "http://") ||
		strings.HasPrefix(ref, "https://") ||
		strings.HasPrefix(ref, "gs://")
}

// fetchFabricData はリモートの生地参照からバイト列を取得します。
// gs:// は InputReader、http(s) は HTTP クライアント経由です。
func (g *Generator) fetchFabricData(ctx context.Context, rawURL string) ([]byte, error) {
	if strings.HasPrefix(rawURL, "gs://") {
		if g.reader == nil {
			return nil, fmt.Errorf("gs:// の生地参照には InputReader が必要です: %s", rawURL)
		}
		rc, err := g.reader.Open(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrAssetNotFound, rawURL, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}

	if g.httpClient == nil {
		return nil, fmt.Errorf("http(s) の生地参照には HTTP クライアントが必要です: %s", rawURL)
	}
	if safe, err := isSafeURL(rawURL); err != nil || !safe {
		return nil, fmt.Errorf("安全ではないURLが指定されました: %w", err)
	}
	data, err := g.httpClient.FetchBytes(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAssetNotFound, rawURL, err)
	}
	return data, nil
}

// isSafeURL は SSRF (Server-Side Request Forgery) 対策として URL を検証します。
// 許可されたスキーム (http, https) かつ、プライベートIPやループバックアドレスを
// ターゲットにしていないことを確認します。
func isSafeURL(rawURL string) (bool, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return false, fmt.Errorf("URLパース失敗: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return false, fmt.Errorf("不許可スキーム: %s", parsedURL.Scheme)
	}

	host := parsedURL.Hostname()
	var ips []net.IP
	if ip := net.ParseIP(host); ip != nil {
		ips = []net.IP{ip}
	} else {
		resolved, err := net.LookupIP(host)
		if err != nil {
			return false, fmt.Errorf("ホスト '%s' の名前解決に失敗しました: %w", host, err)
		}
		ips = resolved
	}

	if len(ips) == 0 {
		return false, fmt.Errorf("IPが見つかりません")
	}

	for _, ip := range ips {
		if ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
			return false, fmt.Errorf("制限されたネットワークへのアクセスを検知: %s", ip.String())
		}
	}

	return true, nil
}
