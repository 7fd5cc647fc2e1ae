// Package network loads, prunes and writes roadway networks and transit
// feeds stored in the wrangler interchange formats: GeoJSON or flat JSON
// for roadway tables, GTFS-style DSV for transit tables, with optional
// parquet output.
package network

import (
	"github.com/go-wrangler/wrangler"
)

// RoadwayNetwork holds the three standard roadway tables
type RoadwayNetwork struct {
	Links  wrangler.Table
	Nodes  wrangler.Table
	Shapes wrangler.Table // nil when the network has no shape file
}

// TransitFeed holds the flattened GTFS tables for one feed
type TransitFeed struct {
	Trips       wrangler.Table
	Stops       wrangler.Table
	StopTimes   wrangler.Table
	Shapes      wrangler.Table
	Frequencies wrangler.Table
	Routes      wrangler.Table
	Agencies    wrangler.Table // nil when the feed has no agency file
}
