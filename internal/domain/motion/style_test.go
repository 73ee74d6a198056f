package motion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyle(t *testing.T) {
	assert.Equal(t, "", Style(nil))
	assert.Equal(t, "opacity:1;transform:translateY(0px)", Style(HeroSection().Initial()))
	assert.Equal(t,
		"opacity:0.3333;transform:translateY(12.5px) scale(0.8) rotate(5deg);height:40%",
		Style(map[Property]float64{PropOpacity: 1.0 / 3, PropY: 12.5, PropScale: 0.8, PropRotate: 5, PropHeight: 40}),
	)
}

func TestInitial_SkipsProgressTracks(t *testing.T) {
	assert.Empty(t, CTASection(true).Initial())
	assert.Empty(t, FeaturesSection().Initial())
}

func TestClientConfig_RoundTripsPreset(t *testing.T) {
	raw, err := ClientConfig(AdvisorsSection())
	require.NoError(t, err)

	var got Section
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	assert.Equal(t, SectionAdvisors, got.ID)
	assert.Equal(t, -100.0, got.Margin)
	require.NotNil(t, got.Entrance)
	require.NotNil(t, got.Entrance.Spring)
	assert.Equal(t, 100.0, got.Entrance.Spring.Stiffness)
	assert.Equal(t, 15.0, got.Entrance.Spring.Damping)
	assert.InDelta(t, 0.16, got.Entrance.ChildDelay(2), 1e-9)
}
