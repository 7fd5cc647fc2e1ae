package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/go-wrangler/wrangler"
	"github.com/go-wrangler/wrangler/config"
	"github.com/go-wrangler/wrangler/network"
	"github.com/spf13/cobra"
)

func createInfoCommand() *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Summarize the tables of a network without modifying them",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := createLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			conf, err := config.Load(configFile)
			if err != nil {
				return err
			}
			nio := network.CreateIO(logger)
			net, err := nio.LoadRoadway(conf.LinksFile(), conf.NodesFile(), conf.ShapesFile())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TABLE\tROWS\tCOLUMNS")
			printTable(w, "links", net.Links)
			printTable(w, "nodes", net.Nodes)
			printTable(w, "shapes", net.Shapes)
			if len(conf.BaseNetwork.TransitDir) > 0 {
				feed, err := nio.LoadFeed(conf.BaseNetwork.TransitDir)
				if err != nil {
					return err
				}
				printTable(w, "trips", feed.Trips)
				printTable(w, "stops", feed.Stops)
				printTable(w, "stop_times", feed.StopTimes)
				printTable(w, "transit shapes", feed.Shapes)
				printTable(w, "frequencies", feed.Frequencies)
				printTable(w, "routes", feed.Routes)
				printTable(w, "agency", feed.Agencies)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "scenario configuration file (required)")
	cmd.MarkFlagRequired("config")
	return cmd
}

func printTable(w *tabwriter.Writer, name string, t wrangler.Table) {
	if t == nil {
		fmt.Fprintf(w, "%s\t-\t-\n", name)
		return
	}
	fmt.Fprintf(w, "%s\t%d\t%d\n", name, t.NumRows(), t.NumColumns())
}
