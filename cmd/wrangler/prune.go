package main

import (
	"github.com/go-wrangler/wrangler/config"
	"github.com/go-wrangler/wrangler/network"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func createPruneCommand() *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Prune network tables to their declared data models",
		Long: `Prune loads the roadway network (and transit feed, when the scenario
declares one), drops every column its data model does not declare, moves
identifying columns to the front, and writes the cleaned tables to the
scenario's output directory.`,
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
			coerced, err := network.CoerceRoadway(net)
			if err != nil {
				return err
			}
			logger.Info("pruned roadway network",
				zap.Bool("links_changed", net.Links.Fingerprint() != coerced.Links.Fingerprint()),
				zap.Bool("nodes_changed", net.Nodes.Fingerprint() != coerced.Nodes.Fingerprint()))

			var coercedFeed *network.TransitFeed
			if len(conf.BaseNetwork.TransitDir) > 0 {
				feed, err := nio.LoadFeed(conf.BaseNetwork.TransitDir)
				if err != nil {
					return err
				}
				coercedFeed, err = network.CoerceFeed(feed)
				if err != nil {
					return err
				}
			}

			if !conf.Scenario.WriteOut {
				logger.Info("write_out is disabled, skipping serialization")
				return nil
			}
			err = nio.WriteRoadway(coerced, conf.Scenario.OutputDir, conf.Scenario.OutPrefix, conf.Scenario.Format)
			if err != nil {
				return err
			}
			if coercedFeed != nil {
				if err := nio.WriteFeed(coercedFeed, conf.Scenario.OutputDir); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "scenario configuration file (required)")
	cmd.MarkFlagRequired("config")
	return cmd
}
