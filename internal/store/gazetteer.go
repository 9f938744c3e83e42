// Package store holds the static gazetteer: every place the platform knows
// about, loaded once at startup and read-only afterwards. Safe for concurrent
// reads without locking.
package store

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("place not found")

type Category string

const (
	CategoryCity    Category = "city"
	CategoryGlacier Category = "glacier"
	CategoryRiver   Category = "river"
	CategoryLake    Category = "lake"
)

type GlacierStatus string

const (
	GlacierStable     GlacierStatus = "stable"
	GlacierRetreating GlacierStatus = "retreating"
	GlacierCritical   GlacierStatus = "critical"
)

// Place is one gazetteer record. Exactly one of the category attribute
// pointers is set, matching Category.
type Place struct {
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	NativeName  string    `json:"native_name"`
	Category    Category  `json:"category"`
	Coordinates []float64 `json:"coordinates"` // [lng, lat]
	Description string    `json:"description"`

	City    *CityAttrs    `json:"city,omitempty"`
	Glacier *GlacierAttrs `json:"glacier,omitempty"`
	River   *RiverAttrs   `json:"river,omitempty"`
	Lake    *LakeAttrs    `json:"lake,omitempty"`
}

type CityAttrs struct {
	Population int        `json:"population"`
	Elevation  int        `json:"elevation_m"`
	AreaKm2    float64    `json:"area_km2"`
	Founded    int        `json:"founded"`
	Region     string     `json:"region"`
	IsCapital  bool       `json:"is_capital"`
	Industries []string   `json:"industries"`
	Landmarks  []Landmark `json:"landmarks"`
}

type Landmark struct {
	Name        string    `json:"name"`
	Kind        string    `json:"kind"`
	Coordinates []float64 `json:"coordinates"`
}

type GlacierAttrs struct {
	AreaKm2       float64       `json:"area_km2"`
	LengthKm      float64       `json:"length_km"`
	ElevationM    int           `json:"elevation_m"`
	Status        GlacierStatus `json:"status"`
	RetreatMYear  float64       `json:"retreat_m_year"`
	MountainRange string        `json:"mountain_range"`
}

type RiverAttrs struct {
	LengthKm     float64     `json:"length_km"`
	DischargeM3s float64     `json:"discharge_m3s"`
	BasinKm2     float64     `json:"basin_km2"`
	Mouth        string      `json:"mouth"`
	Path         [][]float64 `json:"path"` // coarse course within Kazakhstan
}

type LakeAttrs struct {
	AreaKm2   float64 `json:"area_km2"`
	MaxDepthM float64 `json:"max_depth_m"`
	Saline    bool    `json:"saline"`
	VolumeKm3 float64 `json:"volume_km3"`
}

// Gazetteer indexes places by key and keeps per-category table order.
type Gazetteer struct {
	byKey map[string]*Place
	order []*Place
}

// NewGazetteer loads the built-in tables, rejecting duplicate or malformed
// keys at construction rather than at first use.
func NewGazetteer() (*Gazetteer, error) {
	g := &Gazetteer{byKey: make(map[string]*Place)}

	for _, tbl := range [][]Place{cityTable, glacierTable, riverTable, lakeTable} {
		for i := range tbl {
			p := &tbl[i]
			if p.Key == "" || p.Key != strings.ToLower(p.Key) {
				return nil, fmt.Errorf("invalid place key %q", p.Key)
			}
			if len(p.Coordinates) != 2 {
				return nil, fmt.Errorf("place %q: coordinates must be [lng, lat]", p.Key)
			}
			if _, dup := g.byKey[p.Key]; dup {
				return nil, fmt.Errorf("duplicate place key %q", p.Key)
			}
			g.byKey[p.Key] = p
			g.order = append(g.order, p)
		}
	}
	return g, nil
}

// Lookup returns the place for key, or ErrNotFound. Callers treat a miss as a
// normal outcome and fall through to category-wide responses.
func (g *Gazetteer) Lookup(key string) (*Place, error) {
	p, ok := g.byKey[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

// All returns every place of the category in table order.
func (g *Gazetteer) All(cat Category) []*Place {
	var out []*Place
	for _, p := range g.order {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

// FindInQuery returns the first place, in table order, whose key or name is a
// case-insensitive substring of the query. Known limitation inherited from the
// platform's behavior: a short name that happens to be contained in a longer
// name or an unrelated word wins purely by table position.
func (g *Gazetteer) FindInQuery(query string) *Place {
	q := strings.ToLower(query)
	for _, p := range g.order {
		if strings.Contains(q, p.Key) || strings.Contains(q, strings.ToLower(p.Name)) {
			return p
		}
	}
	return nil
}

// FindTwoInQuery returns up to two distinct places named in the query, in
// table order. Used by the compare and distance recipes.
func (g *Gazetteer) FindTwoInQuery(query string) []*Place {
	q := strings.ToLower(query)
	var out []*Place
	for _, p := range g.order {
		if strings.Contains(q, p.Key) || strings.Contains(q, strings.ToLower(p.Name)) {
			out = append(out, p)
			if len(out) == 2 {
				break
			}
		}
	}
	return out
}
