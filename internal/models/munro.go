// Package models defines the domain types for the Munro dataset.
package models

import "strings"

// Category is the post-1997 classification marker of a hill. The Scottish
// Mountaineering Club reclassification left two active statuses; hills that
// lost their status carry an empty marker and are excluded from default
// result sets.
type Category string

const (
	// CategoryMunro is a hill over 3000ft with sufficient separation.
	CategoryMunro Category = "MUN"
	// CategoryTop is a subsidiary summit of a Munro.
	CategoryTop Category = "TOP"
)

// ParseCategory maps a caller-supplied string onto the known vocabulary.
// Matching is exact and case-sensitive, as in the source dataset.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryMunro, CategoryTop:
		return Category(s), true
	}
	return "", false
}

// SortDirection is a parsed "asc"/"desc" ordering directive.
type SortDirection int

const (
	// SortNone means no ordering was requested for the key.
	SortNone SortDirection = iota
	SortAsc
	SortDesc
)

// ParseSortDirection recognises "asc" and "desc" case-insensitively.
// Anything else, including the empty string, means no sort for that key.
func ParseSortDirection(s string) SortDirection {
	switch strings.ToLower(s) {
	case "asc":
		return SortAsc
	case "desc":
		return SortDesc
	}
	return SortNone
}

// Munro is one row of the munrotab dataset. The running number is the
// primary identifier and is assigned by the dataset, not generated here.
// Descriptive fields (grid references, map sheets, sections) are carried
// through verbatim and never interpreted by the query engine.
type Munro struct {
	RunningNo     int     `csv:"Running No" json:"runningNo"`
	DobihNumber   int     `csv:"DoBIH Number" json:"dobihNumber"`
	Streetmap     string  `csv:"Streetmap" json:"streetmap"`
	Geograph      string  `csv:"Geograph" json:"geograph"`
	HillBagging   string  `csv:"Hill-bagging" json:"hillBagging"`
	Name          string  `csv:"Name" json:"name"`
	SMCSection    string  `csv:"SMC Section" json:"smcSection"`
	RHBSection    string  `csv:"RHB Section" json:"rhbSection"`
	Section       string  `csv:"_Section" json:"section"`
	HeightInMetre float64 `csv:"Height (m)" json:"heightInMetre"`
	HeightInFeet  float64 `csv:"Height (ft)" json:"heightInFeet"`
	Map1To50k     string  `csv:"Map 1:50" json:"map1To50k"`
	Map1To25k     string  `csv:"Map 1:25" json:"map1To25k"`
	GridRef       string  `csv:"Grid Ref" json:"gridRef"`
	GridRefXY     string  `csv:"GridRefXY" json:"gridRefXY"`
	XCoord        string  `csv:"xcoord" json:"xcoord"`
	YCoord        string  `csv:"ycoord" json:"ycoord"`
	Post1997      string  `csv:"Post 1997" json:"post1997"`
	Comments      string  `csv:"Comments" json:"comments,omitempty"`
}

// Classified reports whether the hill kept a post-1997 status.
// Unclassified rows stay in the dataset but never appear in results.
func (m Munro) Classified() bool {
	return m.Post1997 != ""
}

// MatchesCategory reports whether the row's marker equals cat exactly.
func (m Munro) MatchesCategory(cat Category) bool {
	return Category(m.Post1997) == cat
}
