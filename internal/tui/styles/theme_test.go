package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.NotEmpty(t, theme.Primary)
	assert.True(t, theme.TitleStyle.GetBold())
}

func TestStepStyle(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, theme.StepDone, theme.StepStyle(0, 1))
	assert.Equal(t, theme.StepActive, theme.StepStyle(1, 1))
	assert.Equal(t, theme.StepPending, theme.StepStyle(2, 1))
}
