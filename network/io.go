package network

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-wrangler/wrangler"
	"github.com/go-wrangler/wrangler/datasource/dsv"
	"github.com/go-wrangler/wrangler/datasource/geojson"
	"github.com/go-wrangler/wrangler/datasource/parquet"
	werrors "github.com/go-wrangler/wrangler/errors"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// feedFiles maps TransitFeed fields to their GTFS file names
var feedFiles = []struct {
	name     string
	optional bool
	assign   func(*TransitFeed, wrangler.Table)
}{
	{"trips.txt", false, func(f *TransitFeed, t wrangler.Table) { f.Trips = t }},
	{"stops.txt", false, func(f *TransitFeed, t wrangler.Table) { f.Stops = t }},
	{"stop_times.txt", false, func(f *TransitFeed, t wrangler.Table) { f.StopTimes = t }},
	{"shapes.txt", false, func(f *TransitFeed, t wrangler.Table) { f.Shapes = t }},
	{"frequencies.txt", false, func(f *TransitFeed, t wrangler.Table) { f.Frequencies = t }},
	{"routes.txt", false, func(f *TransitFeed, t wrangler.Table) { f.Routes = t }},
	{"agency.txt", true, func(f *TransitFeed, t wrangler.Table) { f.Agencies = t }},
}

// IO reads and writes networks and feeds on disk
type IO struct {
	logger *zap.Logger
}

// CreateIO returns a new IO. A nil logger disables logging.
func CreateIO(logger *zap.Logger) *IO {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IO{logger: logger}
}

// LoadRoadway reads a roadway network from its link, node and (optional)
// shape files. Formats are chosen by file extension (.geojson, .json,
// .csv, .txt). A missing shape file is not an error - the network is
// simply loaded without shapes.
func (nio *IO) LoadRoadway(linksFile string, nodesFile string, shapesFile string) (*RoadwayNetwork, error) {
	links, err := nio.readTable(linksFile)
	if err != nil {
		return nil, fmt.Errorf("loading links: %w", err)
	}
	nodes, err := nio.readTable(nodesFile)
	if err != nil {
		return nil, fmt.Errorf("loading nodes: %w", err)
	}
	net := &RoadwayNetwork{Links: links, Nodes: nodes}
	if len(shapesFile) > 0 {
		if _, err := os.Stat(shapesFile); err == nil {
			shapes, err := nio.readTable(shapesFile)
			if err != nil {
				return nil, fmt.Errorf("loading shapes: %w", err)
			}
			net.Shapes = shapes
		} else {
			nio.logger.Warn("shape file not found, loading network without shapes",
				zap.String("file", shapesFile))
		}
	}
	return net, nil
}

// LoadFeed reads a transit feed from a directory of GTFS-style files.
// Files load concurrently; agency.txt is optional, all other tables are
// required.
func (nio *IO) LoadFeed(dir string) (*TransitFeed, error) {
	feed := &TransitFeed{}
	var group errgroup.Group
	for _, file := range feedFiles {
		file := file
		group.Go(func() error {
			path := filepath.Join(dir, file.name)
			if _, err := os.Stat(path); err != nil {
				if file.optional {
					return nil
				}
				return fmt.Errorf("feed is missing required file %s", file.name)
			}
			t, err := nio.readTable(path)
			if err != nil {
				return fmt.Errorf("loading %s: %w", file.name, err)
			}
			file.assign(feed, t)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return feed, nil
}

// WriteRoadway writes a roadway network into dir, one file per table,
// named <prefix>links, <prefix>nodes and <prefix>shapes. format selects
// the serialization: "geojson", "json" or "parquet".
func (nio *IO) WriteRoadway(net *RoadwayNetwork, dir string, prefix string, format string) error {
	if net == nil {
		return werrors.NilArgumentError{Name: "network"}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tables := []struct {
		name string
		t    wrangler.Table
	}{
		{"links", net.Links},
		{"nodes", net.Nodes},
		{"shapes", net.Shapes},
	}
	for _, entry := range tables {
		if entry.t == nil {
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("%s%s.%s", prefix, entry.name, extensionFor(format)))
		if err := nio.writeTable(path, entry.t, format); err != nil {
			return fmt.Errorf("writing %s: %w", entry.name, err)
		}
	}
	return nil
}

// WriteFeed writes a transit feed into dir as GTFS-style files
func (nio *IO) WriteFeed(feed *TransitFeed, dir string) error {
	if feed == nil {
		return werrors.NilArgumentError{Name: "feed"}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tables := []struct {
		name string
		t    wrangler.Table
	}{
		{"trips.txt", feed.Trips},
		{"stops.txt", feed.Stops},
		{"stop_times.txt", feed.StopTimes},
		{"shapes.txt", feed.Shapes},
		{"frequencies.txt", feed.Frequencies},
		{"routes.txt", feed.Routes},
		{"agency.txt", feed.Agencies},
	}
	parser := dsv.CreateParser(nil)
	for _, entry := range tables {
		if entry.t == nil {
			continue
		}
		path := filepath.Join(dir, entry.name)
		err := writeAtomically(path, func(w io.Writer) error {
			return parser.Write(w, entry.t)
		})
		if err != nil {
			return fmt.Errorf("writing %s: %w", entry.name, err)
		}
		nio.logger.Info("wrote feed table",
			zap.String("file", path),
			zap.Int("rows", entry.t.NumRows()))
	}
	return nil
}

func (nio *IO) readTable(path string) (wrangler.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var t wrangler.Table
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		t, err = geojson.Parse(bufio.NewReader(f))
	case ".csv", ".txt":
		t, err = dsv.CreateParser(nil).Parse(bufio.NewReader(f))
	default:
		return nil, werrors.UnsupportedFormatError{Path: path}
	}
	if err != nil {
		return nil, err
	}
	nio.logger.Info("loaded table",
		zap.String("file", path),
		zap.Int("rows", t.NumRows()),
		zap.Int("columns", t.NumColumns()))
	return t, nil
}

func (nio *IO) writeTable(path string, t wrangler.Table, format string) error {
	err := writeAtomically(path, func(w io.Writer) error {
		switch format {
		case "geojson":
			return geojson.WriteFeatures(w, t)
		case "json":
			return geojson.WriteRecords(w, t)
		case "parquet":
			return parquet.Write(w, t)
		}
		return werrors.UnsupportedFormatError{Path: path}
	})
	if err != nil {
		return err
	}
	nio.logger.Info("wrote table",
		zap.String("file", path),
		zap.Int("rows", t.NumRows()))
	return nil
}

func extensionFor(format string) string {
	if format == "json" {
		return "json"
	}
	if format == "parquet" {
		return "parquet"
	}
	return "geojson"
}

// writeAtomically writes through a uniquely-named temp file and renames
// it into place, so a failed write never leaves a partial table behind
func writeAtomically(path string, write func(io.Writer) error) error {
	id, err := uuid.NewV4()
	if err != nil {
		return err
	}
	tmpPath := fmt.Sprintf("%s.%s.tmp", path, id)
	f, err := os.Create(tmpPath)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, path)
}
