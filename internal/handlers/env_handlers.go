package handlers

import (
	"net/http"
	"sync"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/models"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/report"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/services"
)

// EnvHandler serves the environmental snapshot endpoints: provider data plus
// the canonical pre-built map layer for each dataset.
type EnvHandler struct {
	AirQuality  *services.AirQualityProvider
	Methane     services.MethaneSource
	CO2         services.CO2Source
	Fire        services.FireSource
	Temperature services.TemperatureSource
	Viz         *services.Visualization
	Report      *report.Generator
}

func snapshot(data any, live bool, layer models.MapLayer) map[string]any {
	return map[string]any{
		"data":      data,
		"live":      live,
		"map_layer": layer,
	}
}

// HandleAirQuality serves GET /api/environmental/air-quality.
func (h *EnvHandler) HandleAirQuality(w http.ResponseWriter, r *http.Request) {
	result := h.AirQuality.Fetch(r.Context())
	writeJSON(w, http.StatusOK, snapshot(result.Data, result.Live, services.AirQualityLayer(result.Data.GeoJSON)))
}

// HandleAirQualityHistory serves GET /api/environmental/air-quality/history:
// a simulated hourly series shaped as a ready-to-render line chart.
func (h *EnvHandler) HandleAirQualityHistory(w http.ResponseWriter, r *http.Request) {
	labels, values := h.AirQuality.History(24)
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"chart": models.ChartSpec{
			Type:   "line",
			Title:  "Network average AQI, last 24 hours",
			Labels: labels,
			Datasets: []models.ChartDataset{{
				Label:       "AQI",
				Data:        data,
				BorderColor: "#f97316",
			}},
		},
	})
}

// HandleMethane serves GET /api/environmental/methane.
func (h *EnvHandler) HandleMethane(w http.ResponseWriter, r *http.Request) {
	result := h.Methane.Fetch(r.Context())
	writeJSON(w, http.StatusOK, snapshot(result.Data, result.Live, services.MethaneLayer(result.Data.GeoJSON)))
}

// HandleCO2 serves GET /api/environmental/co2.
func (h *EnvHandler) HandleCO2(w http.ResponseWriter, r *http.Request) {
	result := h.CO2.Fetch(r.Context())
	writeJSON(w, http.StatusOK, snapshot(result.Data, result.Live, services.CO2Layer(result.Data.GeoJSON)))
}

// HandleTemperature serves GET /api/environmental/temperature.
func (h *EnvHandler) HandleTemperature(w http.ResponseWriter, r *http.Request) {
	result := h.Temperature.Fetch(r.Context())
	writeJSON(w, http.StatusOK, snapshot(result.Data, result.Live, services.TemperatureLayer(result.Data.GeoJSON)))
}

// HandleSatelliteFire serves GET /api/environmental/satellite/fire.
func (h *EnvHandler) HandleSatelliteFire(w http.ResponseWriter, r *http.Request) {
	result := h.Fire.Fetch(r.Context())
	writeJSON(w, http.StatusOK, snapshot(result.Data, result.Live, services.FireLayer(result.Data.GeoJSON)))
}

// HandleSatelliteNDVI serves GET /api/environmental/satellite/ndvi.
func (h *EnvHandler) HandleSatelliteNDVI(w http.ResponseWriter, r *http.Request) {
	data := h.Viz.NDVIGrid()
	writeJSON(w, http.StatusOK, snapshot(data, false, services.NDVILayer(data.GeoJSON)))
}

// HandleSatelliteLST serves GET /api/environmental/satellite/lst.
func (h *EnvHandler) HandleSatelliteLST(w http.ResponseWriter, r *http.Request) {
	data := h.Viz.LSTGrid()
	writeJSON(w, http.StatusOK, snapshot(data, false, services.TemperatureLayer(data.GeoJSON)))
}

// HandleSatelliteSnow serves GET /api/environmental/satellite/snow.
func (h *EnvHandler) HandleSatelliteSnow(w http.ResponseWriter, r *http.Request) {
	data := h.Viz.SnowCover()
	writeJSON(w, http.StatusOK, snapshot(data, false, services.SnowLayer(data.GeoJSON)))
}

// HandleFlowWind serves GET /api/environmental/flow/wind.
func (h *EnvHandler) HandleFlowWind(w http.ResponseWriter, r *http.Request) {
	data := h.Viz.WindFlow()
	writeJSON(w, http.StatusOK, snapshot(data, false, services.WindLayer(data.GeoJSON)))
}

// HandleFlowPollution serves GET /api/environmental/flow/pollution.
func (h *EnvHandler) HandleFlowPollution(w http.ResponseWriter, r *http.Request) {
	data := h.Viz.PollutionFlow()
	writeJSON(w, http.StatusOK, snapshot(data, false, services.PollutionFlowLayer(data.GeoJSON)))
}

// HandleDashboard serves GET /api/environmental/dashboard, fetching all
// providers concurrently.
func (h *EnvHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		wg      sync.WaitGroup
		air     services.Result[models.AirQualityData]
		methane services.Result[models.MethaneData]
		co2     services.Result[models.CO2Data]
		fire    services.Result[models.FireData]
	)
	wg.Add(4)
	go func() { defer wg.Done(); air = h.AirQuality.Fetch(ctx) }()
	go func() { defer wg.Done(); methane = h.Methane.Fetch(ctx) }()
	go func() { defer wg.Done(); co2 = h.CO2.Fetch(ctx) }()
	go func() { defer wg.Done(); fire = h.Fire.Fetch(ctx) }()
	wg.Wait()

	writeJSON(w, http.StatusOK, map[string]any{
		"air_quality": snapshot(air.Data, air.Live, services.AirQualityLayer(air.Data.GeoJSON)),
		"methane":     snapshot(methane.Data, methane.Live, services.MethaneLayer(methane.Data.GeoJSON)),
		"co2":         snapshot(co2.Data, co2.Live, services.CO2Layer(co2.Data.GeoJSON)),
		"fire":        snapshot(fire.Data, fire.Live, services.FireLayer(fire.Data.GeoJSON)),
		"summary": map[string]any{
			"avg_aqi":         air.Data.AvgAQI,
			"methane_mt_year": methane.Data.TotalEmissionMt,
			"co2_mt_year":     co2.Data.TotalEmissionMt,
			"active_fires":    len(fire.Data.Fires),
			"high_conf_fires": fire.Data.HighConfidence,
		},
	})
}

// HandleReportPDF serves GET /api/environmental/report/pdf. Sections toggle
// via include_* query flags; everything is on by default.
func (h *EnvHandler) HandleReportPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	include := func(name string) bool { return q.Get(name) != "false" }

	opts := report.Options{
		IncludeAirQuality: include("include_air_quality"),
		IncludeMethane:    include("include_methane"),
		IncludeCO2:        include("include_co2"),
		IncludeFire:       include("include_fire"),
	}

	var input report.Input
	if opts.IncludeAirQuality {
		input.AirQuality = h.AirQuality.Fetch(ctx).Data
	}
	if opts.IncludeMethane {
		input.Methane = h.Methane.Fetch(ctx).Data
	}
	if opts.IncludeCO2 {
		input.CO2 = h.CO2.Fetch(ctx).Data
	}
	if opts.IncludeFire {
		input.Fire = h.Fire.Fetch(ctx).Data
	}

	pdf, err := h.Report.Generate(opts, input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "report generation failed")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="environmental-report.pdf"`)
	_, _ = w.Write(pdf)
}
