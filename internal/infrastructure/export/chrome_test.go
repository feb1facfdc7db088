package export

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/draftly/backend/internal/infrastructure/config"
)

func TestNewChromeRenderer_Defaults(t *testing.T) {
	r := NewChromeRenderer(config.ExportConfig{}, nil)
	defer r.Close()

	assert.Equal(t, defaultChromeTimeout, r.timeout)
	assert.Equal(t, defaultMarginInch, r.marginInch)
	assert.NotNil(t, r.logger)
	assert.NotNil(t, r.allocCtx)
}

func TestNewChromeRenderer_ConfigOverrides(t *testing.T) {
	r := NewChromeRenderer(config.ExportConfig{
		ChromeTimeout: 10 * time.Second,
		PDFMarginInch: 0.75,
	}, zap.NewNop())
	defer r.Close()

	assert.Equal(t, 10*time.Second, r.timeout)
	assert.Equal(t, 0.75, r.marginInch)
}

func TestChromeRenderer_Render_EmptyHTML(t *testing.T) {
	r := NewChromeRenderer(config.ExportConfig{}, zap.NewNop())
	defer r.Close()

	_, _, err := r.Render(context.Background(), "   ")
	require.Error(t, err)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeInvalidContent, renderErr.Code)
}
