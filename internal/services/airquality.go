package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/models"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/observability"
)

const (
	openaqDefaultBaseURL = "https://api.openaq.org"
	airQualityLiveSource = "OpenAQ"
	airQualitySimSource  = "Kazakhstan Environmental Monitoring Network + Satellite"
)

// fallbackStations mirrors the national monitoring network. Type drives the
// simulated baseline AQI.
var fallbackStations = []struct {
	id, name, city, stationType string
	elevation                   int
	coordinates                 []float64
}{
	{"almaty_center", "Almaty Center", "Almaty", "urban", 800, []float64{76.9458, 43.2220}},
	{"almaty_medeu", "Almaty Medeu", "Almaty", "mountain", 1691, []float64{77.0586, 43.1571}},
	{"astana_center", "Astana Center", "Astana", "urban", 350, []float64{71.4491, 51.1801}},
	{"atyrau_industrial", "Atyrau Industrial Zone", "Atyrau", "industrial", -22, []float64{51.9200, 46.8500}},
	{"aktau_port", "Aktau Port", "Aktau", "coastal", 8, []float64{51.1667, 43.6500}},
	{"karaganda_industrial", "Karaganda Industrial", "Karaganda", "industrial", 550, []float64{73.1022, 49.8047}},
	{"temirtau_metallurgical", "Temirtau Metallurgical", "Temirtau", "heavy_industrial", 400, []float64{72.9589, 50.0547}},
	{"shymkent_center", "Shymkent Center", "Shymkent", "urban", 512, []float64{69.5958, 42.3417}},
}

var baseAQIByType = map[string]int{
	"urban":            65,
	"mountain":         25,
	"industrial":       95,
	"heavy_industrial": 130,
	"coastal":          45,
}

// AirQualityProvider fetches station readings from OpenAQ, falling back to a
// simulated network snapshot shaped by time of day and season.
type AirQualityProvider struct {
	Client  *http.Client
	BaseURL string
	APIKey  string
	Clock   clockwork.Clock
	Rand    *rand.Rand
	Logger  *slog.Logger
	Metrics *observability.Metrics
}

func (p *AirQualityProvider) Fetch(ctx context.Context) Result[models.AirQualityData] {
	if data, err := p.fetchLive(ctx); err == nil {
		p.Metrics.ObserveFetch("air_quality", true)
		return liveResult(data)
	} else {
		p.Logger.Warn("openaq fetch failed, using simulated stations", "error", err)
	}
	p.Metrics.ObserveFetch("air_quality", false)
	return fallbackResult(p.simulate())
}

func (p *AirQualityProvider) fetchLive(ctx context.Context) (models.AirQualityData, error) {
	var zero models.AirQualityData

	base := p.BaseURL
	if base == "" {
		base = openaqDefaultBaseURL
	}
	ctx, cancel := context.WithTimeout(ctx, DefaultProviderTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/v2/latest?country=KZ&limit=100", nil)
	if err != nil {
		return zero, fmt.Errorf("build openaq request: %w", err)
	}
	if p.APIKey != "" {
		req.Header.Set("X-API-Key", p.APIKey)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return zero, fmt.Errorf("call openaq: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return zero, fmt.Errorf("openaq status %d", resp.StatusCode)
	}

	var payload struct {
		Results []struct {
			Location    string `json:"location"`
			City        string `json:"city"`
			Coordinates struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"coordinates"`
			Measurements []struct {
				Parameter string  `json:"parameter"`
				Value     float64 `json:"value"`
			} `json:"measurements"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return zero, fmt.Errorf("decode openaq payload: %w", err)
	}

	var stations []models.AirQualityStation
	for _, r := range payload.Results {
		pollutants := map[string]float64{}
		for _, m := range r.Measurements {
			if m.Value >= 0 {
				pollutants[strings.ToLower(m.Parameter)] = m.Value
			}
		}
		aqi, dominant := aqiFromPollutants(pollutants)
		if aqi == 0 {
			continue
		}
		cat := CategoryForAQI(aqi)
		stations = append(stations, models.AirQualityStation{
			ID:                 strings.ToLower(strings.ReplaceAll(r.Location, " ", "_")),
			Name:               r.Location,
			City:               r.City,
			StationType:        "reference",
			AQI:                aqi,
			Category:           cat.Name,
			Color:              cat.Color,
			HealthImplications: cat.Health,
			Pollutants:         pollutants,
			DominantPollutant:  dominant,
			Coordinates:        []float64{r.Coordinates.Longitude, r.Coordinates.Latitude},
		})
	}
	if len(stations) == 0 {
		return zero, fmt.Errorf("openaq returned no usable stations")
	}
	return p.assemble(stations, airQualityLiveSource), nil
}

// aqiFromPollutants applies the breakpoint tables and reports the dominant
// pollutant, the one contributing the highest sub-index.
func aqiFromPollutants(pollutants map[string]float64) (int, string) {
	maxAQI, dominant := 0, ""
	for _, param := range []string{"pm25", "pm10", "no2"} {
		conc, ok := pollutants[param]
		if !ok {
			continue
		}
		var sub int
		switch param {
		case "pm25":
			sub = AQIFromPM25(conc)
		case "pm10":
			sub = AQIFromPM10(conc)
		case "no2":
			sub = AQIFromNO2(conc)
		}
		if sub > maxAQI {
			maxAQI, dominant = sub, param
		}
	}
	return maxAQI, dominant
}

func (p *AirQualityProvider) simulate() models.AirQualityData {
	now := p.Clock.Now()
	hour, month := now.Hour(), int(now.Month())
	rushHour := (hour >= 7 && hour <= 9) || (hour >= 17 && hour <= 19)
	heatingSeason := month >= 11 || month <= 3

	stations := make([]models.AirQualityStation, 0, len(fallbackStations))
	for _, s := range fallbackStations {
		aqi := baseAQIByType[s.stationType] + p.Rand.Intn(31) - 15
		if rushHour && s.stationType == "urban" {
			aqi += 12
		}
		if heatingSeason && s.stationType != "mountain" && s.stationType != "coastal" {
			aqi += 15
		}
		if aqi < 5 {
			aqi = 5
		}

		pm25 := round1(float64(aqi)*0.45 + randBetween(p.Rand, -3, 3))
		if pm25 < 1 {
			pm25 = 1
		}
		pollutants := map[string]float64{
			"pm25": pm25,
			"pm10": round1(pm25 * 1.9),
			"no2":  round1(float64(aqi)*0.35 + randBetween(p.Rand, -2, 4)),
			"so2":  round1(randBetween(p.Rand, 2, 18)),
			"co":   round1(randBetween(p.Rand, 0.2, 1.8)),
			"o3":   round1(randBetween(p.Rand, 10, 60)),
		}

		cat := CategoryForAQI(aqi)
		stations = append(stations, models.AirQualityStation{
			ID:                 s.id,
			Name:               s.name,
			City:               s.city,
			StationType:        s.stationType,
			Elevation:          s.elevation,
			AQI:                aqi,
			Category:           cat.Name,
			Color:              cat.Color,
			HealthImplications: cat.Health,
			Pollutants:         pollutants,
			DominantPollutant:  "pm25",
			Coordinates:        s.coordinates,
		})
	}
	return p.assemble(stations, airQualitySimSource)
}

func (p *AirQualityProvider) assemble(stations []models.AirQualityStation, source string) models.AirQualityData {
	fc := models.NewFeatureCollection()
	sum := 0
	for _, s := range stations {
		sum += s.AQI
		fc.Features = append(fc.Features, models.PointFeature(s.Coordinates[0], s.Coordinates[1], map[string]any{
			"id":       s.ID,
			"name":     s.Name,
			"city":     s.City,
			"aqi":      s.AQI,
			"category": s.Category,
			"color":    s.Color,
			"pm25":     s.Pollutants["pm25"],
		}))
	}

	return models.AirQualityData{
		Stations: stations,
		AvgAQI:   sum / len(stations),
		GeoJSON:  fc,
		Metadata: models.DataMetadata{
			Source:    source,
			Timestamp: timestamp(p.Clock.Now()),
			Extra:     map[string]any{"station_count": len(stations)},
		},
	}
}

// History returns a simulated hourly AQI series for the past n hours,
// oscillating around the network average with morning and evening peaks.
func (p *AirQualityProvider) History(hours int) ([]string, []int) {
	now := p.Clock.Now()
	labels := make([]string, 0, hours)
	values := make([]int, 0, hours)

	for i := hours - 1; i >= 0; i-- {
		t := now.Add(-time.Duration(i) * time.Hour)
		peak := 0
		if h := t.Hour(); (h >= 7 && h <= 9) || (h >= 17 && h <= 19) {
			peak = 18
		}
		v := 62 + peak + p.Rand.Intn(21) - 10
		if v < 5 {
			v = 5
		}
		labels = append(labels, t.Format("15:04"))
		values = append(values, v)
	}
	return labels, values
}
