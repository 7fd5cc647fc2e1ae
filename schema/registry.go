package schema

import (
	"github.com/go-wrangler/wrangler"
	"github.com/go-wrangler/wrangler/errors"
)

// Canonical data models for the roadway network standard and the wrangler
// flavor of GTFS. Field order follows the standard: identifying columns
// first, then required fields, then optional fields.

func mustCreate(name string, fieldNames ...string) wrangler.Schema {
	s, err := Create(name, fieldNames...)
	if err != nil {
		panic(err)
	}
	return s
}

// RoadLinks returns the data model for roadway link tables
func RoadLinks() wrangler.Schema {
	return mustCreate("road_links",
		"model_link_id", "A", "B", "shape_id",
		"name", "roadway", "distance", "lanes", "price", "managed",
		"rail_only", "bus_only", "drive_access", "bike_access", "walk_access",
		"truck_access", "access", "sc_lanes", "sc_price",
		"ML_lanes", "ML_price", "ML_access", "ML_access_point", "ML_egress_point",
		"ML_geometry", "ML_shape_id",
		"osm_link_id", "projects", "locationReferences", "geometry",
	)
}

// RoadNodes returns the data model for roadway node tables
func RoadNodes() wrangler.Schema {
	return mustCreate("road_nodes",
		"model_node_id", "osm_node_id", "X", "Y",
		"inboundReferenceIds", "outboundReferenceIds",
		"projects", "geometry",
	)
}

// RoadShapes returns the data model for roadway shape tables
func RoadShapes() wrangler.Schema {
	return mustCreate("road_shapes",
		"shape_id", "ref_shape_id", "geometry",
	)
}

// TransitTrips returns the data model for GTFS trip tables
func TransitTrips() wrangler.Schema {
	return mustCreate("trips",
		"trip_id", "route_id", "service_id", "shape_id", "direction_id",
		"trip_short_name", "trip_headsign", "block_id",
		"wheelchair_accessible", "bikes_allowed", "projects",
	)
}

// TransitStops returns the data model for GTFS stop tables
func TransitStops() wrangler.Schema {
	return mustCreate("stops",
		"stop_id", "stop_id_GTFS", "stop_code", "stop_name", "tts_stop_name",
		"stop_desc", "stop_lat", "stop_lon", "zone_id", "stop_url",
		"location_type", "parent_station", "stop_timezone",
		"wheelchair_boarding", "projects",
	)
}

// TransitStopTimes returns the data model for GTFS stop-time tables
func TransitStopTimes() wrangler.Schema {
	return mustCreate("stop_times",
		"trip_id", "stop_id", "stop_sequence",
		"arrival_time", "departure_time", "stop_headsign",
		"pickup_type", "drop_off_type", "shape_dist_traveled", "timepoint",
		"projects",
	)
}

// TransitShapes returns the data model for GTFS shape tables
func TransitShapes() wrangler.Schema {
	return mustCreate("shapes",
		"shape_id", "shape_pt_lat", "shape_pt_lon", "shape_pt_sequence",
		"shape_dist_traveled", "shape_model_node_id", "projects",
	)
}

// TransitFrequencies returns the data model for GTFS frequency tables
func TransitFrequencies() wrangler.Schema {
	return mustCreate("frequencies",
		"trip_id", "start_time", "end_time", "headway_secs", "projects",
	)
}

// TransitRoutes returns the data model for GTFS route tables
func TransitRoutes() wrangler.Schema {
	return mustCreate("routes",
		"route_id", "agency_id", "route_short_name", "route_long_name",
		"route_desc", "route_type", "route_url", "route_color",
		"route_text_color",
	)
}

// TransitAgencies returns the data model for GTFS agency tables
func TransitAgencies() wrangler.Schema {
	return mustCreate("agency",
		"agency_id", "agency_name", "agency_url", "agency_timezone",
		"agency_lang", "agency_phone", "agency_fare_url", "agency_email",
	)
}

// For returns the registered data model for the given table type name
func For(tableName string) (wrangler.Schema, error) {
	switch tableName {
	case "road_links", "links":
		return RoadLinks(), nil
	case "road_nodes", "nodes":
		return RoadNodes(), nil
	case "road_shapes":
		return RoadShapes(), nil
	case "trips":
		return TransitTrips(), nil
	case "stops":
		return TransitStops(), nil
	case "stop_times":
		return TransitStopTimes(), nil
	case "shapes":
		return TransitShapes(), nil
	case "frequencies":
		return TransitFrequencies(), nil
	case "routes":
		return TransitRoutes(), nil
	case "agency", "agencies":
		return TransitAgencies(), nil
	}
	return nil, errors.UnknownSchemaError{Name: tableName}
}
