package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/models"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/observability"
)

const (
	firmsDefaultBaseURL = "https://firms.modaps.eosdis.nasa.gov"
	fireLiveSource      = "NASA FIRMS VIIRS/MODIS Active Fire Data"
	fireSimSource       = "NASA FIRMS Active Fire Simulation"

	// Kazakhstan bounding box: west,south,east,north.
	kazakhstanBBox = "46.5,40.5,87.3,55.4"
)

var fallbackFires = []models.FireDetection{
	{Latitude: 50.42, Longitude: 66.85, Coordinates: []float64{66.85, 50.42}, Brightness: 312.5, Confidence: 78, FRP: 25.3, Satellite: "VIIRS"},
	{Latitude: 47.85, Longitude: 68.42, Coordinates: []float64{68.42, 47.85}, Brightness: 298.2, Confidence: 65, FRP: 18.7, Satellite: "MODIS"},
	{Latitude: 52.15, Longitude: 77.28, Coordinates: []float64{77.28, 52.15}, Brightness: 324.8, Confidence: 92, FRP: 42.5, Satellite: "VIIRS"},
}

// fireRegions seed the simulated detections added on top of the static list.
var fireRegions = []struct {
	name                 string
	lng, lat, spreadDeg  float64
	maxSimulatedPerFetch int
}{
	{"central steppe", 67.0, 49.5, 2.5, 4},
	{"northern grain belt", 70.5, 53.0, 2.0, 3},
	{"eastern foothills", 82.0, 49.0, 1.5, 2},
}

// FireProvider pulls active fire detections from NASA FIRMS and falls back to
// a static sample plus region-seeded simulated detections.
type FireProvider struct {
	Client  *http.Client
	BaseURL string
	APIKey  string
	Clock   clockwork.Clock
	Rand    *rand.Rand
	Logger  *slog.Logger
	Metrics *observability.Metrics
}

func (p *FireProvider) Fetch(ctx context.Context) Result[models.FireData] {
	if data, err := p.fetchLive(ctx); err == nil {
		p.Metrics.ObserveFetch("fire", true)
		return liveResult(data)
	} else {
		p.Logger.Warn("firms fetch failed, using sample detections", "error", err)
	}
	p.Metrics.ObserveFetch("fire", false)
	return fallbackResult(p.simulate())
}

func (p *FireProvider) fetchLive(ctx context.Context) (models.FireData, error) {
	var zero models.FireData
	if p.APIKey == "" {
		return zero, fmt.Errorf("no FIRMS api key configured")
	}

	base := p.BaseURL
	if base == "" {
		base = firmsDefaultBaseURL
	}
	url := fmt.Sprintf("%s/api/area/csv/%s/VIIRS_SNPP_NRT/%s/1", base, p.APIKey, kazakhstanBBox)

	ctx, cancel := context.WithTimeout(ctx, DefaultProviderTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return zero, fmt.Errorf("build firms request: %w", err)
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return zero, fmt.Errorf("call firms: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return zero, fmt.Errorf("firms status %d", resp.StatusCode)
	}

	fires, err := parseFIRMSCSV(resp.Body)
	if err != nil {
		return zero, err
	}
	if len(fires) == 0 {
		return zero, fmt.Errorf("firms returned no detections")
	}
	return p.assemble(fires, fireLiveSource), nil
}

// parseFIRMSCSV reads the FIRMS area CSV by header name so column reordering
// between product versions does not break parsing.
func parseFIRMSCSV(r io.Reader) ([]models.FireDetection, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read firms header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}

	field := func(rec []string, names ...string) string {
		for _, n := range names {
			if i, ok := col[n]; ok && i < len(rec) {
				return rec[i]
			}
		}
		return ""
	}

	var fires []models.FireDetection
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read firms row: %w", err)
		}

		lat, err1 := strconv.ParseFloat(field(rec, "latitude"), 64)
		lng, err2 := strconv.ParseFloat(field(rec, "longitude"), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		brightness, _ := strconv.ParseFloat(field(rec, "bright_ti4", "brightness"), 64)
		frp, _ := strconv.ParseFloat(field(rec, "frp"), 64)

		fires = append(fires, models.FireDetection{
			Latitude:    lat,
			Longitude:   lng,
			Coordinates: []float64{lng, lat},
			Brightness:  brightness,
			Confidence:  parseConfidence(field(rec, "confidence")),
			FRP:         frp,
			Satellite:   field(rec, "satellite"),
			AcqDate:     field(rec, "acq_date"),
			AcqTime:     field(rec, "acq_time"),
		})
	}
	return fires, nil
}

// parseConfidence accepts both the numeric MODIS scale and the l/n/h VIIRS
// letters.
func parseConfidence(s string) int {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "l":
		return 30
	case "n":
		return 55
	case "h":
		return 85
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

func (p *FireProvider) simulate() models.FireData {
	date := p.Clock.Now().Format("2006-01-02")

	fires := make([]models.FireDetection, 0, len(fallbackFires)+8)
	for _, f := range fallbackFires {
		f.AcqDate = date
		f.AcqTime = "0930"
		fires = append(fires, f)
	}
	for _, region := range fireRegions {
		n := p.Rand.Intn(region.maxSimulatedPerFetch + 1)
		for i := 0; i < n; i++ {
			lng := region.lng + randBetween(p.Rand, -region.spreadDeg, region.spreadDeg)
			lat := region.lat + randBetween(p.Rand, -region.spreadDeg, region.spreadDeg)
			fires = append(fires, models.FireDetection{
				Latitude:    round2(lat),
				Longitude:   round2(lng),
				Coordinates: []float64{round2(lng), round2(lat)},
				Brightness:  round1(randBetween(p.Rand, 290, 340)),
				Confidence:  30 + p.Rand.Intn(65),
				FRP:         round1(randBetween(p.Rand, 5, 60)),
				Satellite:   "VIIRS",
				AcqDate:     date,
				AcqTime:     "0930",
			})
		}
	}
	return p.assemble(fires, fireSimSource)
}

func (p *FireProvider) assemble(fires []models.FireDetection, source string) models.FireData {
	fc := models.NewFeatureCollection()
	high := 0
	frpSum := 0.0
	for _, f := range fires {
		if f.Confidence >= 80 {
			high++
		}
		frpSum += f.FRP
		fc.Features = append(fc.Features, models.PointFeature(f.Longitude, f.Latitude, map[string]any{
			"brightness": f.Brightness,
			"confidence": f.Confidence,
			"frp":        f.FRP,
			"satellite":  f.Satellite,
			"acq_date":   f.AcqDate,
		}))
	}

	avgFRP := 0.0
	if len(fires) > 0 {
		avgFRP = round1(frpSum / float64(len(fires)))
	}
	return models.FireData{
		Fires:          fires,
		HighConfidence: high,
		AvgFRP:         avgFRP,
		GeoJSON:        fc,
		Metadata: models.DataMetadata{
			Source:    source,
			Timestamp: timestamp(p.Clock.Now()),
			Extra:     map[string]any{"detection_count": len(fires)},
		},
	}
}
