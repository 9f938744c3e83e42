package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/store"
)

func newTestClassifier(t *testing.T) *IntentClassifier {
	t.Helper()
	g, err := store.NewGazetteer()
	require.NoError(t, err)
	return NewIntentClassifier(g)
}

func TestClassifyTable(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name  string
		query string
		want  []Intent
	}{
		{"show city", "Show me Almaty", []Intent{IntentShowCity}},
		{"population", "what is the population of Astana", []Intent{IntentPopulation}},
		{"compare keyword", "compare Astana and Almaty", []Intent{IntentCompare}},
		{"vs literal", "Astana vs Almaty", []Intent{IntentCompare}},
		{"distance", "how far is Shymkent from Taraz", []Intent{IntentDistance}},
		{"air quality", "air quality in Almaty", []Intent{IntentAirQuality}},
		{"methane", "methane hotspots", []Intent{IntentMethane, IntentFire}},
		{"glacier", "glacier status", []Intent{IntentGlacier}},
		{"dashboard", "environmental dashboard please", []Intent{IntentDashboard}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.query)
			for _, intent := range tt.want {
				assert.True(t, got.Has(intent), "expected %s in %v", intent, got)
			}
		})
	}
}

// No keyword hit must still yield a non-empty set.
func TestClassifyUnmatchedReturnsGeneral(t *testing.T) {
	c := newTestClassifier(t)

	got := c.Classify("qwertyuiop")
	require.Len(t, got, 1)
	assert.True(t, got.Has(IntentGeneral))
}

// Matching is a set union: one query can carry several intents at once, and
// sorting out which one wins is the builder's job.
func TestClassifyMultipleIntents(t *testing.T) {
	c := newTestClassifier(t)

	got := c.Classify("temperature heatmap of the city")
	assert.True(t, got.Has(IntentHeatmap))
	assert.True(t, got.Has(IntentTemperature))
	assert.False(t, got.Has(IntentGeneral))
}

func TestDetectPlace(t *testing.T) {
	c := newTestClassifier(t)

	p := c.DetectPlace("zoom to Karaganda")
	require.NotNil(t, p)
	assert.Equal(t, "karaganda", p.Key)

	assert.Nil(t, c.DetectPlace("no places here"))
}

func TestDetectPlacePairTableOrder(t *testing.T) {
	c := newTestClassifier(t)

	pair := c.DetectPlacePair("compare Astana vs Almaty")
	require.Len(t, pair, 2)
	// Table order, not query order.
	assert.Equal(t, "almaty", pair[0].Key)
	assert.Equal(t, "astana", pair[1].Key)
}
