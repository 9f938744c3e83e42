package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAQIFromPM25KnownValues(t *testing.T) {
	tests := []struct {
		conc float64
		want int
	}{
		{0, 0},
		{12.0, 50},
		{35.4, 100},
		{55.4, 150},
		{150.4, 200},
		{250.4, 300},
		{500, 500},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AQIFromPM25(tt.conc), "conc %.1f", tt.conc)
	}
}

// Band boundaries must not jump: 12.0 and 12.1 differ by one AQI point.
func TestAQIFromPM25ContinuousAtBandEdges(t *testing.T) {
	assert.Equal(t, 50, AQIFromPM25(12.0))
	assert.Equal(t, 51, AQIFromPM25(12.1))
	assert.Equal(t, 100, AQIFromPM25(35.4))
	assert.Equal(t, 101, AQIFromPM25(35.5))
}

func TestAQIFromPM25Monotonic(t *testing.T) {
	prev := 0
	for c := 0.0; c <= 500; c += 0.5 {
		got := AQIFromPM25(c)
		assert.GreaterOrEqual(t, got, prev, "conc %.1f", c)
		prev = got
	}
}

func TestAQIFromPM10AndNO2(t *testing.T) {
	assert.Equal(t, 50, AQIFromPM10(54))
	assert.Equal(t, 51, AQIFromPM10(55))
	assert.Equal(t, 500, AQIFromPM10(604))

	assert.Equal(t, 50, AQIFromNO2(53))
	assert.Equal(t, 51, AQIFromNO2(54))
	assert.Equal(t, 300, AQIFromNO2(1249))
}

func TestCategoryForAQI(t *testing.T) {
	tests := []struct {
		aqi   int
		name  string
		color string
	}{
		{0, "Good", "#00e400"},
		{50, "Good", "#00e400"},
		{51, "Moderate", "#ffff00"},
		{150, "Unhealthy for Sensitive Groups", "#ff7e00"},
		{200, "Unhealthy", "#ff0000"},
		{300, "Very Unhealthy", "#8f3f97"},
		{301, "Hazardous", "#7e0023"},
		{500, "Hazardous", "#7e0023"},
	}
	for _, tt := range tests {
		cat := CategoryForAQI(tt.aqi)
		assert.Equal(t, tt.name, cat.Name, "aqi %d", tt.aqi)
		assert.Equal(t, tt.color, cat.Color, "aqi %d", tt.aqi)
		assert.NotEmpty(t, cat.Health)
	}
}

func TestMethaneStyleThresholds(t *testing.T) {
	color, opacity := MethaneStyle(1850 + 700)
	assert.Equal(t, "#dc2626", color)
	assert.Equal(t, 0.7, opacity)

	color, opacity = MethaneStyle(1850 + 400)
	assert.Equal(t, "#f97316", color)
	assert.Equal(t, 0.6, opacity)

	color, opacity = MethaneStyle(1850 + 100)
	assert.Equal(t, "#fbbf24", color)
	assert.Equal(t, 0.5, opacity)
}

func TestCO2Color(t *testing.T) {
	assert.Equal(t, "#991b1b", CO2Color(45.2))
	assert.Equal(t, "#dc2626", CO2Color(12.8))
	assert.Equal(t, "#f97316", CO2Color(5.2))
	assert.Equal(t, "#fbbf24", CO2Color(2.3))
}

func TestTemperatureColorCoversRange(t *testing.T) {
	assert.Equal(t, "#313695", TemperatureColor(-25))
	assert.Equal(t, "#74add1", TemperatureColor(-3))
	assert.Equal(t, "#d73027", TemperatureColor(28))
	assert.Equal(t, "#a50026", TemperatureColor(38))
}
