// Package selection holds the "currently selected" identifiers for a single
// landing-view instance: active pricing tier, active statistics region, and
// active feature tab.
//
// A State is owned by the view that created it and dies with it. It is never
// package-global, so several views can coexist on one screen without sharing
// selection.
package selection

import (
	"fmt"

	"fraudlens/internal/catalog"
)

// Dimension names one independently selectable axis of the landing UI.
type Dimension int

const (
	DimensionTier Dimension = iota
	DimensionRegion
	DimensionTab
)

func (d Dimension) String() string {
	switch d {
	case DimensionTier:
		return "tier"
	case DimensionRegion:
		return "region"
	case DimensionTab:
		return "tab"
	default:
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
}

// State is the current selection along each dimension.
type State struct {
	catalog *catalog.Catalog

	ActiveTierID string         // "" until the user picks a tier
	ActiveRegion catalog.Region // defaults to RegionGlobal
	ActiveTab    int            // index into catalog.FeatureTabs
}

// New returns a State with the documented defaults: no tier selected,
// global region, first feature tab.
func New(c *catalog.Catalog) *State {
	if c == nil {
		panic("selection: nil catalog")
	}
	return &State{
		catalog:      c,
		ActiveRegion: catalog.RegionGlobal,
	}
}

// Select sets the named dimension to value and leaves every other dimension
// untouched. value must be enumerable from the catalog: a tier ID (string)
// for DimensionTier, a catalog.Region for DimensionRegion, a feature-tab
// index (int) for DimensionTab.
//
// Every valid value is drawn from the same catalog the UI renders, so an
// unknown value can only come from a programming error; Select panics
// rather than ignoring it.
func (s *State) Select(dim Dimension, value any) {
	switch dim {
	case DimensionTier:
		id, ok := value.(string)
		if !ok {
			panic(fmt.Sprintf("selection: tier value must be a string id, got %T", value))
		}
		if _, ok := s.catalog.TierByID(id); !ok {
			panic(fmt.Sprintf("selection: tier %q not in catalog", id))
		}
		s.ActiveTierID = id
	case DimensionRegion:
		r, ok := value.(catalog.Region)
		if !ok {
			panic(fmt.Sprintf("selection: region value must be a catalog.Region, got %T", value))
		}
		if !s.catalog.HasRegion(r) {
			panic(fmt.Sprintf("selection: region %q not in catalog", r))
		}
		s.ActiveRegion = r
	case DimensionTab:
		i, ok := value.(int)
		if !ok {
			panic(fmt.Sprintf("selection: tab value must be an int index, got %T", value))
		}
		if i < 0 || i >= len(s.catalog.FeatureTabs) {
			panic(fmt.Sprintf("selection: tab index %d out of range [0,%d)", i, len(s.catalog.FeatureTabs)))
		}
		s.ActiveTab = i
	default:
		panic(fmt.Sprintf("selection: unknown dimension %v", dim))
	}
}

// SelectTier is Select(DimensionTier, id).
func (s *State) SelectTier(id string) { s.Select(DimensionTier, id) }

// SelectRegion is Select(DimensionRegion, r).
func (s *State) SelectRegion(r catalog.Region) { s.Select(DimensionRegion, r) }

// SelectTab is Select(DimensionTab, i).
func (s *State) SelectTab(i int) { s.Select(DimensionTab, i) }
