package util_test

import (
	"testing"

	"github.com/fatih/color"

	"github.com/pkmn-tools/dexctl/internal/util"
)

func TestInitColor_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	prev := color.NoColor
	defer func() { color.NoColor = prev }()
	color.NoColor = false

	util.InitColor(false)
	if !color.NoColor {
		t.Error("NO_COLOR env did not disable color")
	}
}
