package export

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/draftly/backend/internal/domain/template"
	"github.com/draftly/backend/internal/infrastructure/config"
)

type fakeRenderer struct {
	lastHTML string
	data     []byte
	pages    int
	err      error
}

func (f *fakeRenderer) Render(ctx context.Context, html string) ([]byte, int, error) {
	f.lastHTML = html
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.data, f.pages, nil
}

type fakeStore struct {
	uploads   map[string][]byte
	uploadErr error
	urlErr    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{uploads: map[string][]byte{}}
}

func (f *fakeStore) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.uploads[key] = data
	return nil
}

func (f *fakeStore) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	if f.urlErr != nil {
		return "", time.Time{}, f.urlErr
	}
	return "https://storage.example.com/" + key, time.Now().Add(expiresIn), nil
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
	}
}

func TestExporter_ExportPDF(t *testing.T) {
	t.Run("renders markdown into a named PDF artifact", func(t *testing.T) {
		renderer := &fakeRenderer{data: []byte("%PDF-1.7 fake"), pages: 2}
		exporter := NewExporter(renderer, nil, config.ExportConfig{}, zap.NewNop())
		exporter.now = fixedClock()

		artifact, err := exporter.ExportPDF(context.Background(), PDFRequest{
			Title:      "Proposal for Acme Corp",
			ClientName: "Acme Corp",
			Markdown:   "# Proposal for Acme Corp",
			Style:      template.StyleFormal,
		})
		require.NoError(t, err)

		assert.Equal(t, "proposal-for-acme-corp_1743508800000.pdf", artifact.Filename)
		assert.Equal(t, "application/pdf", artifact.ContentType)
		assert.Equal(t, 2, artifact.PageCount)
		assert.Empty(t, artifact.DownloadURL)
		assert.Contains(t, renderer.lastHTML, "<h1>Proposal for Acme Corp</h1>")
	})

	t.Run("falls back to client name when title is blank", func(t *testing.T) {
		renderer := &fakeRenderer{data: []byte("pdf"), pages: 1}
		exporter := NewExporter(renderer, nil, config.ExportConfig{}, zap.NewNop())
		exporter.now = fixedClock()

		artifact, err := exporter.ExportPDF(context.Background(), PDFRequest{
			ClientName: "Beta Inc",
			Markdown:   "content",
			Style:      template.StyleFormal,
		})
		require.NoError(t, err)
		assert.Equal(t, "beta-inc_1743508800000.pdf", artifact.Filename)
	})

	t.Run("surfaces renderer failures", func(t *testing.T) {
		renderer := &fakeRenderer{err: NewRenderError(ErrCodeRenderFailed, "boom", nil)}
		exporter := NewExporter(renderer, nil, config.ExportConfig{}, zap.NewNop())

		_, err := exporter.ExportPDF(context.Background(), PDFRequest{
			Markdown: "content",
			Style:    template.StyleFormal,
		})
		require.Error(t, err)

		var renderErr *RenderError
		require.ErrorAs(t, err, &renderErr)
		assert.Equal(t, ErrCodeRenderFailed, renderErr.Code)
	})

	t.Run("uploads when configured and sets the download URL", func(t *testing.T) {
		renderer := &fakeRenderer{data: []byte("pdf"), pages: 1}
		store := newFakeStore()
		exporter := NewExporter(renderer, store, config.ExportConfig{UploadExports: true}, zap.NewNop())
		exporter.now = fixedClock()

		artifact, err := exporter.ExportPDF(context.Background(), PDFRequest{
			Title:    "Invoice for Website Redesign",
			Markdown: "content",
			Style:    template.StyleFormal,
		})
		require.NoError(t, err)

		key := "exports/" + artifact.Filename
		assert.Equal(t, []byte("pdf"), store.uploads[key])
		assert.Equal(t, "https://storage.example.com/"+key, artifact.DownloadURL)
	})

	t.Run("upload failure degrades instead of failing the export", func(t *testing.T) {
		renderer := &fakeRenderer{data: []byte("pdf"), pages: 1}
		store := newFakeStore()
		store.uploadErr = errors.New("bucket unavailable")
		exporter := NewExporter(renderer, store, config.ExportConfig{UploadExports: true}, zap.NewNop())

		artifact, err := exporter.ExportPDF(context.Background(), PDFRequest{
			Title:    "Doc",
			Markdown: "content",
			Style:    template.StyleFormal,
		})
		require.NoError(t, err)
		assert.Empty(t, artifact.DownloadURL)
		assert.Equal(t, []byte("pdf"), artifact.Data)
	})
}

func TestExporter_ExportText(t *testing.T) {
	t.Run("packages raw markdown with a client-derived filename", func(t *testing.T) {
		exporter := NewExporter(&fakeRenderer{}, nil, config.ExportConfig{}, zap.NewNop())
		exporter.now = fixedClock()

		artifact, err := exporter.ExportText(context.Background(), TextRequest{
			ClientName: "Acme Corp",
			Markdown:   "# Proposal\n\nBody.",
		})
		require.NoError(t, err)

		assert.Equal(t, "acme-corp-1743508800.txt", artifact.Filename)
		assert.Equal(t, "text/plain; charset=utf-8", artifact.ContentType)
		assert.Equal(t, "# Proposal\n\nBody.", string(artifact.Data))
		assert.Zero(t, artifact.PageCount)
	})

	t.Run("rejects empty markdown", func(t *testing.T) {
		exporter := NewExporter(&fakeRenderer{}, nil, config.ExportConfig{}, zap.NewNop())

		_, err := exporter.ExportText(context.Background(), TextRequest{ClientName: "Acme"})
		require.Error(t, err)

		var renderErr *RenderError
		require.ErrorAs(t, err, &renderErr)
		assert.Equal(t, ErrCodeInvalidContent, renderErr.Code)
	})
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Acme Corp":            "acme-corp",
		"  Beta  Inc.  ":       "beta-inc",
		"Émile & Sons":         "mile-sons",
		"":                     "document",
		"---":                  "document",
		"Website Redesign 2.0": "website-redesign-2-0",
	}
	for input, want := range cases {
		assert.Equal(t, want, slugify(input), "slugify(%q)", input)
	}
}
