package services

import "math"

// EPA AQI breakpoint tables. Band edges follow the published scale and are
// load-bearing for frontend color compatibility; change them and every station
// marker shifts category.

type aqiBand struct {
	cLow, cHigh float64
	iLow, iHigh int
}

var pm25Bands = []aqiBand{
	{0, 12.0, 0, 50},
	{12.1, 35.4, 51, 100},
	{35.5, 55.4, 101, 150},
	{55.5, 150.4, 151, 200},
	{150.5, 250.4, 201, 300},
	{250.5, 500.0, 301, 500},
}

var pm10Bands = []aqiBand{
	{0, 54, 0, 50},
	{55, 154, 51, 100},
	{155, 254, 101, 150},
	{255, 354, 151, 200},
	{355, 424, 201, 300},
	{425, 604, 301, 500},
}

var no2Bands = []aqiBand{
	{0, 53, 0, 50},
	{54, 100, 51, 100},
	{101, 360, 101, 150},
	{361, 649, 151, 200},
	{650, 1249, 201, 300},
	{1250, 2049, 301, 500},
}

func aqiFromBands(bands []aqiBand, conc float64) int {
	if conc <= 0 {
		return 0
	}
	for _, b := range bands {
		if conc <= b.cHigh {
			span := b.cHigh - b.cLow
			if span == 0 {
				return b.iHigh
			}
			aqi := float64(b.iLow) + (conc-b.cLow)/span*float64(b.iHigh-b.iLow)
			return int(math.Round(aqi))
		}
	}
	return 500
}

// AQIFromPM25 converts a PM2.5 concentration in µg/m³ to the EPA AQI.
func AQIFromPM25(conc float64) int { return aqiFromBands(pm25Bands, conc) }

// AQIFromPM10 converts a PM10 concentration in µg/m³ to the EPA AQI.
func AQIFromPM10(conc float64) int { return aqiFromBands(pm10Bands, conc) }

// AQIFromNO2 converts an NO2 concentration in ppb to the EPA AQI.
func AQIFromNO2(conc float64) int { return aqiFromBands(no2Bands, conc) }

// AQICategory is the display classification for an AQI value.
type AQICategory struct {
	Name   string
	Color  string
	Health string
}

var aqiCategories = []struct {
	max int
	cat AQICategory
}{
	{50, AQICategory{"Good", "#00e400", "Air quality is satisfactory."}},
	{100, AQICategory{"Moderate", "#ffff00", "Acceptable; some pollutants may affect very sensitive individuals."}},
	{150, AQICategory{"Unhealthy for Sensitive Groups", "#ff7e00", "Sensitive groups may experience health effects."}},
	{200, AQICategory{"Unhealthy", "#ff0000", "Everyone may begin to experience health effects."}},
	{300, AQICategory{"Very Unhealthy", "#8f3f97", "Health alert: everyone may experience more serious effects."}},
}

var aqiHazardous = AQICategory{"Hazardous", "#7e0023", "Health warning of emergency conditions."}

// CategoryForAQI maps an AQI value to its category, color, and health note.
func CategoryForAQI(aqi int) AQICategory {
	for _, c := range aqiCategories {
		if aqi <= c.max {
			return c.cat
		}
	}
	return aqiHazardous
}

// MethaneStyle returns the marker color and opacity for a methane
// concentration in ppb above background.
func MethaneStyle(ppb float64) (color string, opacity float64) {
	excess := ppb - 1850
	switch {
	case excess > 600:
		return "#dc2626", 0.7
	case excess > 300:
		return "#f97316", 0.6
	default:
		return "#fbbf24", 0.5
	}
}

// CO2Color returns the marker color for an annual emission rate in Mt.
func CO2Color(mtYear float64) string {
	switch {
	case mtYear > 20:
		return "#991b1b"
	case mtYear > 10:
		return "#dc2626"
	case mtYear > 5:
		return "#f97316"
	default:
		return "#fbbf24"
	}
}

// TemperatureColor returns the grid cell color for a temperature in °C.
func TemperatureColor(t float64) string {
	switch {
	case t <= -20:
		return "#313695"
	case t <= -10:
		return "#4575b4"
	case t <= 0:
		return "#74add1"
	case t <= 10:
		return "#fee090"
	case t <= 20:
		return "#f46d43"
	case t <= 30:
		return "#d73027"
	default:
		return "#a50026"
	}
}

// NDVIColor returns the vegetation index color, red (bare) to green (dense).
func NDVIColor(ndvi float64) string {
	switch {
	case ndvi < 0.1:
		return "#d73027"
	case ndvi < 0.25:
		return "#fdae61"
	case ndvi < 0.4:
		return "#fee08b"
	case ndvi < 0.55:
		return "#a6d96a"
	default:
		return "#1a9850"
	}
}
