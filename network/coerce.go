package network

import (
	"fmt"

	"github.com/go-wrangler/wrangler"
	werrors "github.com/go-wrangler/wrangler/errors"
	"github.com/go-wrangler/wrangler/schema"
	multierror "github.com/hashicorp/go-multierror"
)

// Coercion prunes every table of a network or feed to its declared data
// model: columns absent from the model are dropped, identifying columns
// are moved to the front, and table-specific overrides (such as dropping
// locationReferences from links while keeping their geometry) are
// applied.

// linkSpec is the cleaning recipe for roadway links: identifying columns
// first, locationReferences always dropped, geometry retained when the
// source data carries it
func linkSpec(t wrangler.Table) *wrangler.ProjectionSpec {
	spec := &wrangler.ProjectionSpec{
		ForceDrop:      []string{"locationReferences"},
		PriorityFields: []string{"model_link_id", "A", "B"},
	}
	if t != nil && t.HasColumn("geometry") {
		spec.ForceKeep = []string{"geometry"}
	}
	return spec
}

func nodeSpec(t wrangler.Table) *wrangler.ProjectionSpec {
	spec := &wrangler.ProjectionSpec{
		PriorityFields: []string{"model_node_id"},
	}
	if t != nil && t.HasColumn("geometry") {
		spec.ForceKeep = []string{"geometry"}
	}
	return spec
}

func keySpec(keys ...string) *wrangler.ProjectionSpec {
	return &wrangler.ProjectionSpec{PriorityFields: keys}
}

// CoerceRoadway returns a copy of net with every table pruned to its
// data model. Per-table failures are aggregated; on any failure the
// original network is left untouched and no partial result is returned.
func CoerceRoadway(net *RoadwayNetwork) (*RoadwayNetwork, error) {
	if net == nil {
		return nil, werrors.NilArgumentError{Name: "network"}
	}
	coerced := &RoadwayNetwork{}
	var result *multierror.Error

	links, err := wrangler.Project(net.Links, schema.RoadLinks(), linkSpec(net.Links))
	if err != nil {
		result = multierror.Append(result, fmt.Errorf("links: %w", err))
	} else {
		coerced.Links = links
	}
	nodes, err := wrangler.Project(net.Nodes, schema.RoadNodes(), nodeSpec(net.Nodes))
	if err != nil {
		result = multierror.Append(result, fmt.Errorf("nodes: %w", err))
	} else {
		coerced.Nodes = nodes
	}
	if net.Shapes != nil {
		shapes, err := wrangler.Project(net.Shapes, schema.RoadShapes(), keySpec("shape_id"))
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("shapes: %w", err))
		} else {
			coerced.Shapes = shapes
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return coerced, nil
}

// CoerceFeed returns a copy of feed with every table pruned to its data
// model. Per-table failures are aggregated; on any failure no partial
// result is returned.
func CoerceFeed(feed *TransitFeed) (*TransitFeed, error) {
	if feed == nil {
		return nil, werrors.NilArgumentError{Name: "feed"}
	}
	coerced := &TransitFeed{}
	var result *multierror.Error
	project := func(name string, t wrangler.Table, s wrangler.Schema, spec *wrangler.ProjectionSpec, assign func(wrangler.Table)) {
		if t == nil {
			return
		}
		projected, err := wrangler.Project(t, s, spec)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", name, err))
			return
		}
		assign(projected)
	}
	project("trips", feed.Trips, schema.TransitTrips(), keySpec("trip_id"), func(t wrangler.Table) { coerced.Trips = t })
	project("stops", feed.Stops, schema.TransitStops(), keySpec("stop_id"), func(t wrangler.Table) { coerced.Stops = t })
	project("stop_times", feed.StopTimes, schema.TransitStopTimes(), keySpec("trip_id", "stop_id"), func(t wrangler.Table) { coerced.StopTimes = t })
	project("shapes", feed.Shapes, schema.TransitShapes(), keySpec("shape_id"), func(t wrangler.Table) { coerced.Shapes = t })
	project("frequencies", feed.Frequencies, schema.TransitFrequencies(), keySpec("trip_id"), func(t wrangler.Table) { coerced.Frequencies = t })
	project("routes", feed.Routes, schema.TransitRoutes(), keySpec("route_id"), func(t wrangler.Table) { coerced.Routes = t })
	project("agency", feed.Agencies, schema.TransitAgencies(), keySpec("agency_id"), func(t wrangler.Table) { coerced.Agencies = t })
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return coerced, nil
}
