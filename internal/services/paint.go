package services

// Paint expression templates. Opaque to the backend: these trees are passed
// through to the map renderer verbatim, so shapes here must stay in sync with
// the frontend style layer, not with anything server-side.

func circlePaint(radiusProp string, minRadius, maxRadius float64) map[string]any {
	return map[string]any{
		"circle-radius": []any{
			"interpolate", []any{"linear"}, []any{"get", radiusProp},
			0, minRadius,
			300, maxRadius,
		},
		"circle-color":        []any{"get", "color"},
		"circle-opacity":      0.8,
		"circle-stroke-width": 1,
		"circle-stroke-color": "#ffffff",
	}
}

func fixedCirclePaint(color string, radius float64) map[string]any {
	return map[string]any{
		"circle-radius":       radius,
		"circle-color":        color,
		"circle-opacity":      0.85,
		"circle-stroke-width": 1.5,
		"circle-stroke-color": "#ffffff",
	}
}

func heatmapPaint() map[string]any {
	return map[string]any{
		"heatmap-weight":    []any{"get", "weight"},
		"heatmap-intensity": []any{"interpolate", []any{"linear"}, []any{"zoom"}, 4, 1, 10, 3},
		"heatmap-color": []any{
			"interpolate", []any{"linear"}, []any{"heatmap-density"},
			0, "rgba(33,102,172,0)",
			0.2, "rgb(103,169,207)",
			0.4, "rgb(209,229,240)",
			0.6, "rgb(253,219,199)",
			0.8, "rgb(239,138,98)",
			1, "rgb(178,24,43)",
		},
		"heatmap-radius":  []any{"interpolate", []any{"linear"}, []any{"zoom"}, 4, 30, 8, 50, 12, 80},
		"heatmap-opacity": 0.75,
	}
}

// snowHeatmapPaint uses a cold-to-white ramp instead of the default heat ramp.
func snowHeatmapPaint() map[string]any {
	return map[string]any{
		"heatmap-weight":    []any{"get", "weight"},
		"heatmap-intensity": 1.2,
		"heatmap-color": []any{
			"interpolate", []any{"linear"}, []any{"heatmap-density"},
			0, "rgba(255,255,255,0)",
			0.2, "#e0f3f8",
			0.4, "#abd9e9",
			0.6, "#74add1",
			0.8, "#4575b4",
			1.0, "#ffffff",
		},
		"heatmap-radius":  40,
		"heatmap-opacity": 0.7,
	}
}

func fillPaint(outlineColor string) map[string]any {
	return map[string]any{
		"fill-color":         []any{"get", "color"},
		"fill-opacity":       0.5,
		"fill-outline-color": outlineColor,
	}
}

func fixedFillPaint(color string, opacity float64) map[string]any {
	return map[string]any{
		"fill-color":         color,
		"fill-opacity":       opacity,
		"fill-outline-color": "#1d4ed8",
	}
}

func extrusionPaint() map[string]any {
	return map[string]any{
		"fill-extrusion-color":   []any{"get", "color"},
		"fill-extrusion-height":  []any{"get", "height"},
		"fill-extrusion-base":    0,
		"fill-extrusion-opacity": 0.85,
	}
}

func linePaint(color string, width float64) map[string]any {
	return map[string]any{
		"line-color":   color,
		"line-width":   width,
		"line-opacity": 0.9,
	}
}

func dashedLinePaint(color string, width float64) map[string]any {
	p := linePaint(color, width)
	p["line-dasharray"] = []any{2, 1.5}
	return p
}
