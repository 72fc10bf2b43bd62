package locality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDefaults(t *testing.T) {
	// No keyword matches: documented default triple.
	for _, location := range []string{"Connaught Place, New Delhi", "Baker Street", ""} {
		ctx := Classify(location)
		assert.Equal(t, AreaUrbanResidential, ctx.AreaType, location)
		assert.Equal(t, TrafficModerate, ctx.TrafficDensity, location)
		assert.Equal(t, IndustrialLow, ctx.IndustrialActivity, location)
	}
}

func TestClassifyIndustrialOverridesCityDefaults(t *testing.T) {
	for _, location := range []string{
		"Okhla Industrial Area, Delhi",
		"FACTORY outlet road, Pune",
		"Steel Factory Gate 2",
	} {
		ctx := Classify(location)
		assert.Equal(t, IndustrialHigh, ctx.IndustrialActivity, location)
	}
}

func TestClassifyAreaTypePrecedence(t *testing.T) {
	// "industrial" is listed before "market": first match in listed order wins.
	ctx := Classify("industrial market zone")
	assert.Equal(t, AreaIndustrial, ctx.AreaType)
	assert.Equal(t, TrafficHigh, ctx.TrafficDensity)
	assert.Equal(t, IndustrialHigh, ctx.IndustrialActivity)
}

func TestClassifyCaseInsensitive(t *testing.T) {
	ctx := Classify("NEHRU PLACE MARKET")
	assert.Equal(t, AreaCommercial, ctx.AreaType)
	assert.Equal(t, TrafficHigh, ctx.TrafficDensity)
	assert.Equal(t, IndustrialModerate, ctx.IndustrialActivity)
}

func TestClassifyRural(t *testing.T) {
	ctx := Classify("Khera village, Haryana")
	assert.Equal(t, AreaRural, ctx.AreaType)
	assert.Equal(t, TrafficLow, ctx.TrafficDensity)
	assert.Equal(t, IndustrialLow, ctx.IndustrialActivity)
}

func TestClassifyIsPure(t *testing.T) {
	first := Classify("highway toll plaza")
	second := Classify("highway toll plaza")
	assert.Equal(t, first, second)
}
