package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode_Toggle(t *testing.T) {
	assert.Equal(t, ModeDark, ModeLight.Toggle())
	assert.Equal(t, ModeLight, ModeDark.Toggle())
	assert.Equal(t, ModeAuto, ModeAuto.Toggle())
}

func TestMode_ToggleTwiceIsIdentity(t *testing.T) {
	for _, m := range []Mode{ModeLight, ModeDark} {
		assert.Equal(t, m, m.Toggle().Toggle())
	}
}

func TestMode_Glyph(t *testing.T) {
	assert.Equal(t, "☀", ModeLight.Glyph())
	assert.Equal(t, "☾", ModeDark.Glyph())
	assert.NotEqual(t, ModeLight.Glyph(), ModeDark.Glyph())
}

func TestMode_Valid(t *testing.T) {
	assert.True(t, ModeAuto.Valid())
	assert.True(t, ModeLight.Valid())
	assert.True(t, ModeDark.Valid())
	assert.False(t, Mode("solarized").Valid())
	assert.False(t, Mode("").Valid())
}

func TestResolve_OverrideWins(t *testing.T) {
	t.Setenv(EnvVar, "light")
	assert.Equal(t, ModeDark, Resolve(ModeLight, "dark"))
}

func TestResolve_EnvBeatsPreference(t *testing.T) {
	t.Setenv(EnvVar, "dark")
	assert.Equal(t, ModeDark, Resolve(ModeLight, ""))
}

func TestResolve_Preference(t *testing.T) {
	t.Setenv(EnvVar, "")
	assert.Equal(t, ModeDark, Resolve(ModeDark, ""))
	assert.Equal(t, ModeLight, Resolve(ModeLight, ""))
}

func TestDetect_DefaultsToLightWithoutTerminal(t *testing.T) {
	// Test binaries run with piped stdout, so the background signal is
	// unavailable and detection must fall back to light.
	assert.Equal(t, ModeLight, Detect())
}

func TestResolve_AutoFallsBackToDetection(t *testing.T) {
	t.Setenv(EnvVar, "")
	assert.Equal(t, Detect(), Resolve(ModeAuto, ""))
	assert.Equal(t, ModeLight, Resolve(ModeAuto, ""))
}

func TestResolve_IgnoresInvalidOverride(t *testing.T) {
	t.Setenv(EnvVar, "")
	assert.Equal(t, ModeDark, Resolve(ModeDark, "sepia"))
}

func TestPaletteFor(t *testing.T) {
	assert.Equal(t, Dark, PaletteFor(ModeDark))
	assert.Equal(t, Light, PaletteFor(ModeLight))
	// Unresolved modes get a usable palette rather than zero colors.
	assert.Equal(t, Light, PaletteFor(ModeAuto))
}

func TestNewStyles_FollowsPalette(t *testing.T) {
	light := NewStyles(ModeLight)
	dark := NewStyles(ModeDark)

	assert.Equal(t, Light.Error, light.Banner.GetForeground())
	assert.Equal(t, Dark.Error, dark.Banner.GetForeground())
	assert.NotEqual(t, light.Value.GetForeground(), dark.Value.GetForeground())
	assert.True(t, light.Title.GetBold())
}
