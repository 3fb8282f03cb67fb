package imgutil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/go-http-kit/pkg/httpkit"

	"github.com/shouni/gemini-poem-kit/pkg/domain"
)

// SampleImages はアップロードせずに試せるサンプル画像の URL です。
var SampleImages = []string{
	"https://picsum.photos/id/1015/600/400",
	"https://picsum.photos/id/1039/600/400",
	"https://picsum.photos/id/1043/600/400",
}

// ErrUnsafeURL は SSRF 対策の検証で URL が拒否された場合に返されます。
var ErrUnsafeURL = errors.New("安全ではないURLが指定されました")

const (
	// maxImageBytes はリモート画像として受け付ける最大サイズです。
	maxImageBytes = 20 << 20

	defaultFetchTimeout = 30 * time.Second
)

// HTTPClient は、URLの安全性を検証し、URLからデータを取得するためのインターフェースです。
// *httpkit.Client がこれを満たします。
type HTTPClient interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
	IsSafeURL(urlStr string) (bool, error)
}

var _ HTTPClient = (*httpkit.Client)(nil)

// Fetcher はリモート画像を取得して ImagePayload に変換します。
type Fetcher struct {
	client HTTPClient
}

// NewFetcher は Fetcher を生成します。
// client が nil の場合は SSRF / DNS Rebinding 対策付きの httpkit クライアントを使います。
func NewFetcher(client HTTPClient) *Fetcher {
	if client == nil {
		client = httpkit.New(defaultFetchTimeout)
	}
	return &Fetcher{client: client}
}

// Fetch は URL を検証したうえで画像をダウンロードします。
// リダイレクト先を含む接続先の検証は httpkit の接続時チェックに任せます。
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (domain.ImagePayload, error) {
	if safe, err := f.client.IsSafeURL(rawURL); !safe {
		if err == nil {
			err = fmt.Errorf("URL '%s' へのアクセスはセキュリティポリシーによりブロックされました", rawURL)
		}
		slog.WarnContext(ctx, "SSRFの可能性がある、または不正なURLをブロックしました", "url", rawURL, "error", err)
		return domain.ImagePayload{}, fmt.Errorf("%w: %w", ErrUnsafeURL, err)
	}

	data, err := f.client.FetchBytes(ctx, rawURL)
	if err != nil {
		return domain.ImagePayload{}, fmt.Errorf("画像のダウンロードに失敗しました: %w", err)
	}
	if len(data) > maxImageBytes {
		return domain.ImagePayload{}, fmt.Errorf("画像サイズが上限 (%dバイト) を超えています: %d", maxImageBytes, len(data))
	}

	return FromBytes(data)
}
