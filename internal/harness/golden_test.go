package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Golden fixtures live in testdata/{name}.golden. Regenerate with:
//
//	go test ./internal/harness -update

func TestBoundaryGolden(t *testing.T) {
	result := RunWithGolden(t, filepath.Join("testdata", "scenarios", "boundary.yaml"))
	assert.Zero(t, result.Failed)
}

func TestFractionalGolden(t *testing.T) {
	// The fractional scenario also pins the floating-target policy: the
	// literals "1.5" and "0.1" both parse against float32, because the
	// exact decimal pivot is only rejected on overflow. Bit round-trip
	// exactness between float64 and float32 is an engine-level property
	// and is tested there.
	result := RunWithGolden(t, filepath.Join("testdata", "scenarios", "fractional.yaml"))
	assert.Zero(t, result.Failed)
}
