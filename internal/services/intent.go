package services

import (
	"strings"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/store"
)

// Intent is a tag from the closed query vocabulary.
type Intent string

const (
	IntentShowCity    Intent = "show_city"
	IntentPopulation  Intent = "population"
	IntentCompare     Intent = "compare"
	IntentDistance    Intent = "distance"
	IntentHeatmap     Intent = "heatmap"
	IntentTemperature Intent = "temperature"
	IntentAirQuality  Intent = "air_quality"
	IntentNDVI        Intent = "ndvi"
	IntentTerrain     Intent = "3d"
	IntentEconomic    Intent = "economic"
	IntentLandmarks   Intent = "landmarks"
	IntentGlacier     Intent = "glacier"
	IntentRiver       Intent = "river"
	IntentLake        Intent = "lake"
	IntentHydrology   Intent = "hydrology"
	IntentAllCities   Intent = "all_cities"
	IntentRanking     Intent = "ranking"
	IntentMethane     Intent = "methane"
	IntentCO2         Intent = "co2"
	IntentFire        Intent = "fire"
	IntentWind        Intent = "wind"
	IntentDashboard   Intent = "dashboard"
	IntentGeneral     Intent = "general"
)

// IntentSet is the (unordered) result of classification. Priority between
// matched intents belongs to the response builder, not here.
type IntentSet map[Intent]bool

func (s IntentSet) Has(i Intent) bool { return s[i] }

// intentKeywords is evaluated in order, but matching is a set union: every
// intent with at least one keyword hit lands in the result.
var intentKeywords = []struct {
	intent   Intent
	keywords []string
}{
	{IntentShowCity, []string{"show me", "show ", "where is", "map of", "zoom to", "go to", "navigate"}},
	{IntentPopulation, []string{"population", "people live", "inhabitants", "how many people"}},
	{IntentCompare, []string{"compare", " vs ", " versus ", "difference between"}},
	{IntentDistance, []string{"distance", "how far", "kilometers between", "km between"}},
	{IntentHeatmap, []string{"heatmap", "heat map", "density map"}},
	{IntentTemperature, []string{"temperature", "climate", "warming", "how cold", "how hot", "degrees"}},
	{IntentAirQuality, []string{"air quality", "aqi", "pollution", "smog", "pm2.5", "pm10"}},
	{IntentNDVI, []string{"ndvi", "vegetation", "greenness", "crops"}},
	{IntentTerrain, []string{"3d", "terrain", "relief", "elevation", "mountains view"}},
	{IntentEconomic, []string{"econom", "gdp", "industr", "business"}},
	{IntentLandmarks, []string{"landmark", "attraction", "sightseeing", "monument", "what to see"}},
	{IntentGlacier, []string{"glacier", "ice field", "мұздық"}},
	{IntentRiver, []string{"river", "өзен"}},
	{IntentLake, []string{"lake", "көл"}},
	{IntentHydrology, []string{"water", "hydrology", "basin", "watershed"}},
	{IntentAllCities, []string{"all cities", "major cities", "every city", "list cities"}},
	{IntentRanking, []string{"ranking", "largest", "biggest", "top 5", "top 10"}},
	{IntentMethane, []string{"methane", "ch4", "gas leak"}},
	{IntentCO2, []string{"co2", "carbon", "emission", "greenhouse"}},
	{IntentFire, []string{"fire", "wildfire", "burning", "hotspot"}},
	{IntentWind, []string{"wind", "air flow", "air movement"}},
	{IntentDashboard, []string{"dashboard", "overview", "environmental summary", "all data"}},
}

// IntentClassifier maps a free-text query to intents and an optional place.
// Matching is substring-based: crude, but total — Classify never returns an
// empty set and never fails.
type IntentClassifier struct {
	Gazetteer *store.Gazetteer
}

func NewIntentClassifier(g *store.Gazetteer) *IntentClassifier {
	return &IntentClassifier{Gazetteer: g}
}

func (c *IntentClassifier) Classify(query string) IntentSet {
	q := strings.ToLower(query)

	result := make(IntentSet)
	for _, entry := range intentKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(q, kw) {
				result[entry.intent] = true
				break
			}
		}
	}
	if len(result) == 0 {
		result[IntentGeneral] = true
	}
	return result
}

// DetectPlace returns the first gazetteer place named in the query, in table
// order, or nil.
func (c *IntentClassifier) DetectPlace(query string) *store.Place {
	return c.Gazetteer.FindInQuery(query)
}

// DetectPlacePair returns up to two places named in the query, for the compare
// and distance recipes.
func (c *IntentClassifier) DetectPlacePair(query string) []*store.Place {
	return c.Gazetteer.FindTwoInQuery(query)
}
