//go:build unit

package patch_test

import (
	"testing"

	"meeting-room-reservation/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	purpose := "Board meeting"
	assert.Equal(t, "Board meeting", patch.Coalesce(&purpose, "Old"))
	assert.Equal(t, "Old", patch.Coalesce[string](nil, "Old"))
}

func TestCoalesceSlice(t *testing.T) {
	current := []string{"2030-03-04"}
	assert.Equal(t, current, patch.CoalesceSlice(nil, current))
	assert.Equal(t, current, patch.CoalesceSlice([]string{}, current))
	assert.Equal(t, []string{"2030-03-05"}, patch.CoalesceSlice([]string{"2030-03-05"}, current))
}
