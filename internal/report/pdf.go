// Package report renders the environmental snapshot as a PDF document:
// header, executive summary, then one table section per included dataset.
package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/jonboulle/clockwork"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/models"
)

type Options struct {
	IncludeAirQuality bool
	IncludeMethane    bool
	IncludeCO2        bool
	IncludeFire       bool
}

// Input carries the datasets for the included sections. Excluded sections may
// stay zero-valued.
type Input struct {
	AirQuality models.AirQualityData
	Methane    models.MethaneData
	CO2        models.CO2Data
	Fire       models.FireData
}

type Generator struct {
	Clock clockwork.Clock
}

func NewGenerator(clock clockwork.Clock) *Generator {
	return &Generator{Clock: clock}
}

func (g *Generator) Generate(opts Options, input Input) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	g.header(pdf)
	g.executiveSummary(pdf, opts, input)

	if opts.IncludeAirQuality {
		g.airQualitySection(pdf, input.AirQuality)
	}
	if opts.IncludeMethane {
		g.methaneSection(pdf, input.Methane)
	}
	if opts.IncludeCO2 {
		g.co2Section(pdf, input.CO2)
	}
	if opts.IncludeFire {
		g.fireSection(pdf, input.Fire)
	}
	g.footer(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *Generator) header(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(30, 58, 138)
	pdf.CellFormat(0, 12, "Kazakhstan Environmental Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, "Generated "+g.Clock.Now().UTC().Format("2006-01-02 15:04 UTC"), "", 1, "C", false, 0, "")
	pdf.Ln(4)
}

func (g *Generator) executiveSummary(pdf *fpdf.Fpdf, opts Options, input Input) {
	g.sectionTitle(pdf, "Executive Summary")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)

	if opts.IncludeAirQuality {
		pdf.CellFormat(0, 6, fmt.Sprintf("Air quality: network average AQI %d across %d stations.",
			input.AirQuality.AvgAQI, len(input.AirQuality.Stations)), "", 1, "L", false, 0, "")
	}
	if opts.IncludeMethane {
		pdf.CellFormat(0, 6, fmt.Sprintf("Methane: %.2f Mt/year from %d tracked hotspots.",
			input.Methane.TotalEmissionMt, len(input.Methane.Hotspots)), "", 1, "L", false, 0, "")
	}
	if opts.IncludeCO2 {
		pdf.CellFormat(0, 6, fmt.Sprintf("CO2: %.1f Mt/year from %d industrial facilities.",
			input.CO2.TotalEmissionMt, len(input.CO2.Sources)), "", 1, "L", false, 0, "")
	}
	if opts.IncludeFire {
		pdf.CellFormat(0, 6, fmt.Sprintf("Fires: %d detections, %d high-confidence.",
			len(input.Fire.Fires), input.Fire.HighConfidence), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func (g *Generator) airQualitySection(pdf *fpdf.Fpdf, data models.AirQualityData) {
	g.sectionTitle(pdf, "Air Quality")
	g.tableHeader(pdf, []colSpec{{"Station", 60}, {"City", 35}, {"AQI", 20}, {"Category", 55}})

	pdf.SetFont("Helvetica", "", 9)
	for _, s := range data.Stations {
		g.tableRow(pdf, []colSpec{
			{s.Name, 60},
			{s.City, 35},
			{fmt.Sprintf("%d", s.AQI), 20},
			{s.Category, 55},
		})
	}
	g.sourceLine(pdf, data.Metadata.Source)
}

func (g *Generator) methaneSection(pdf *fpdf.Fpdf, data models.MethaneData) {
	g.sectionTitle(pdf, "Methane Emissions")
	g.tableHeader(pdf, []colSpec{{"Hotspot", 60}, {"kt/year", 25}, {"Trend", 30}, {"Source", 55}})

	pdf.SetFont("Helvetica", "", 9)
	for _, h := range data.Hotspots {
		g.tableRow(pdf, []colSpec{
			{h.Name, 60},
			{fmt.Sprintf("%.0f", h.EmissionKtYear), 25},
			{h.Trend, 30},
			{h.EmissionSource, 55},
		})
	}
	g.sourceLine(pdf, data.Metadata.Source)
}

func (g *Generator) co2Section(pdf *fpdf.Fpdf, data models.CO2Data) {
	g.sectionTitle(pdf, "CO2 Point Sources")
	g.tableHeader(pdf, []colSpec{{"Facility", 70}, {"Type", 35}, {"Fuel", 25}, {"Mt/year", 25}})

	pdf.SetFont("Helvetica", "", 9)
	for _, s := range data.Sources {
		g.tableRow(pdf, []colSpec{
			{s.Name, 70},
			{s.FacilityType, 35},
			{s.FuelType, 25},
			{fmt.Sprintf("%.1f", s.EmissionMtYear), 25},
		})
	}
	g.sourceLine(pdf, data.Metadata.Source)
}

func (g *Generator) fireSection(pdf *fpdf.Fpdf, data models.FireData) {
	g.sectionTitle(pdf, "Active Fires")
	g.tableHeader(pdf, []colSpec{{"Coordinates", 50}, {"Brightness K", 35}, {"Confidence", 30}, {"FRP MW", 25}, {"Satellite", 30}})

	pdf.SetFont("Helvetica", "", 9)
	for _, f := range data.Fires {
		g.tableRow(pdf, []colSpec{
			{fmt.Sprintf("%.2f, %.2f", f.Latitude, f.Longitude), 50},
			{fmt.Sprintf("%.1f", f.Brightness), 35},
			{fmt.Sprintf("%d", f.Confidence), 30},
			{fmt.Sprintf("%.1f", f.FRP), 25},
			{f.Satellite, 30},
		})
	}
	g.sourceLine(pdf, data.Metadata.Source)
}

func (g *Generator) footer(pdf *fpdf.Fpdf) {
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, "GeoGPT Research Platform - automated environmental reporting", "", 1, "C", false, 0, "")
}

type colSpec struct {
	text  string
	width float64
}

func (g *Generator) sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(30, 58, 138)
	pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func (g *Generator) tableHeader(pdf *fpdf.Fpdf, cols []colSpec) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(226, 232, 240)
	pdf.SetTextColor(0, 0, 0)
	for _, c := range cols {
		pdf.CellFormat(c.width, 7, c.text, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

func (g *Generator) tableRow(pdf *fpdf.Fpdf, cols []colSpec) {
	for _, c := range cols {
		pdf.CellFormat(c.width, 6, c.text, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func (g *Generator) sourceLine(pdf *fpdf.Fpdf, source string) {
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, "Source: "+source, "", 1, "L", false, 0, "")
	pdf.Ln(3)
}
