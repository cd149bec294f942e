package scene

import (
	"testing"

	"glscene/internal/graphics/gltest"
)

func TestMain(m *testing.M) {
	gltest.Main(m)
}
