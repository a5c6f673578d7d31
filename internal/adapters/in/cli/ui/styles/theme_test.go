package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMessages(t *testing.T) {
	assert.Contains(t, RenderInfo("Aborted"), "i Aborted")
	assert.Contains(t, RenderSuccess("created"), "✓ created")
	assert.Contains(t, RenderWarning("probe failed"), "! probe failed")
	assert.Contains(t, RenderError("boom"), "✗ boom")
}

func TestRenderBadge(t *testing.T) {
	for _, status := range []string{"running", "destroyed", "paused", "pending"} {
		assert.Contains(t, RenderBadge(status), status)
	}
}
