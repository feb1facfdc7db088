package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"go.uber.org/zap"

	"github.com/draftly/backend/internal/infrastructure/config"
)

const (
	defaultChromeTimeout = 30 * time.Second
	defaultMarginInch    = 0.4

	// A4 in inches, the only paper size documents are printed on
	a4WidthInch  = 8.27
	a4HeightInch = 11.69
)

// Renderer turns an HTML document into PDF bytes plus a page count.
type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, int, error)
}

// ChromeRenderer renders HTML to PDF using Chrome DevTools Protocol
type ChromeRenderer struct {
	timeout     time.Duration
	marginInch  float64
	logger      *zap.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// ChromeOption is a functional option for configuring ChromeRenderer
type ChromeOption func(*ChromeRenderer)

// WithRemoteChrome points the renderer at a remote Chrome/Chromium instance
// instead of launching one locally.
func WithRemoteChrome(url string) ChromeOption {
	return func(r *ChromeRenderer) {
		r.allocCtx, r.allocCancel = chromedp.NewRemoteAllocator(context.Background(), url)
	}
}

// NewChromeRenderer creates a chromedp-based PDF renderer
func NewChromeRenderer(cfg config.ExportConfig, logger *zap.Logger, opts ...ChromeOption) *ChromeRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &ChromeRenderer{
		timeout:    cfg.ChromeTimeout,
		marginInch: cfg.PDFMarginInch,
		logger:     logger,
	}
	if r.timeout == 0 {
		r.timeout = defaultChromeTimeout
	}
	if r.marginInch == 0 {
		r.marginInch = defaultMarginInch
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.allocCtx == nil {
		allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-first-run", true),
			chromedp.Flag("disable-default-apps", true),
			chromedp.Flag("disable-extensions", true),
			chromedp.Flag("disable-dev-shm-usage", true), // Important for Docker
			chromedp.Flag("disable-background-networking", true),
			chromedp.Flag("disable-sync", true),
			chromedp.Flag("font-render-hinting", "none"),
			chromedp.Flag("no-sandbox", true),
		)
		r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), allocOpts...)
	}

	return r
}

// Render prints the HTML document to an A4 PDF and counts its pages.
func (r *ChromeRenderer) Render(ctx context.Context, html string) ([]byte, int, error) {
	if strings.TrimSpace(html) == "" {
		return nil, 0, NewRenderError(ErrCodeInvalidContent, "HTML content is empty", nil)
	}

	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	browserCtx, browserCancel := chromedp.NewContext(r.allocCtx,
		chromedp.WithLogf(func(format string, args ...interface{}) {
			r.logger.Debug(fmt.Sprintf(format, args...))
		}),
	)
	defer browserCancel()

	var pdfData []byte

	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4WidthInch).
				WithPaperHeight(a4HeightInch).
				WithMarginTop(r.marginInch).
				WithMarginRight(r.marginInch).
				WithMarginBottom(r.marginInch).
				WithMarginLeft(r.marginInch).
				WithScale(1.0).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfData = data
			return nil
		}),
	)

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, 0, NewRenderError(ErrCodeRenderTimeout,
				fmt.Sprintf("PDF rendering timed out after %v", r.timeout), err)
		}
		if ctx.Err() == context.Canceled {
			return nil, 0, NewRenderError(ErrCodeRenderTimeout, "PDF rendering was cancelled", err)
		}

		r.logger.Error("chromedp rendering failed", zap.Error(err))
		return nil, 0, NewRenderError(ErrCodeRenderFailed, "chromedp execution failed: "+err.Error(), err)
	}

	if len(pdfData) == 0 {
		return nil, 0, NewRenderError(ErrCodeRenderFailed, "generated PDF is empty", nil)
	}

	pageCount, err := api.PageCount(bytes.NewReader(pdfData), nil)
	if err != nil {
		r.logger.Warn("failed to count PDF pages", zap.Error(err))
		pageCount = 0
	}

	r.logger.Info("PDF rendered successfully",
		zap.Int("bytes", len(pdfData)),
		zap.Int("pages", pageCount),
		zap.Duration("duration", time.Since(startTime)))

	return pdfData, pageCount, nil
}

// Close releases resources held by the renderer
func (r *ChromeRenderer) Close() error {
	if r.allocCancel != nil {
		r.allocCancel()
	}
	return nil
}

// Ensure ChromeRenderer implements Renderer
var _ Renderer = (*ChromeRenderer)(nil)
