package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hydrokit/streamnet/pkg/config"
	"github.com/hydrokit/streamnet/pkg/connectivity"
	"github.com/hydrokit/streamnet/pkg/source"
)

// connectOpts holds the command-line flags for the connect command.
type connectOpts struct {
	output          string // output file path (scratch default if empty)
	maxUpstreams    int    // upstream column bound (0 = observed max)
	idField         string // reach identifier column override
	downstreamField string // downstream identifier column override
	configPath      string // explicit config file path
}

// newConnectCmd creates the connect command, the tool's core operation:
// read a network, build the connectivity table, write the CSV.
func newConnectCmd() *cobra.Command {
	var opts connectOpts

	cmd := &cobra.Command{
		Use:   "connect <input>",
		Short: "Build the network connectivity table for a routing model",
		Long: `Build the upstream connectivity table for a stream network.

The input is a CSV attribute table with reach-identifier and downstream-
identifier columns (HydroID and NextDownID by default, matched case-
insensitively), or a JSON reach list. Each output row holds the reach ID,
its downstream ID (0 for outlets), the upstream reach count, and the
upstream reach IDs padded with zeros to a fixed number of columns.

Examples:
  streamnet connect drainage_lines.csv
  streamnet connect drainage_lines.csv -o rapid_connect.csv
  streamnet connect drainage_lines.csv --max-upstreams 6
  streamnet connect network.json --id-field ReachID --downstream-field DownID`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConnect(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (defaults to streamnet_connect.csv in the scratch dir)")
	cmd.Flags().IntVarP(&opts.maxUpstreams, "max-upstreams", "m", 0, "maximum number of upstream reaches per row, 1-12 (0 = observed maximum)")
	cmd.Flags().StringVar(&opts.idField, "id-field", "", "reach identifier column name")
	cmd.Flags().StringVar(&opts.downstreamField, "downstream-field", "", "downstream identifier column name")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (defaults to the user config if present)")

	return cmd
}

// loadConfig resolves the effective configuration: explicit file, user
// config, or built-in defaults, with flags layered on top.
func (o connectOpts) loadConfig() (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.Load(o.configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return config.Config{}, err
	}

	if o.maxUpstreams != 0 {
		cfg.MaxUpstreams = o.maxUpstreams
	}
	if o.idField != "" {
		cfg.Fields.ID = o.idField
	}
	if o.downstreamField != "" {
		cfg.Fields.Downstream = o.downstreamField
	}
	return cfg, nil
}

// runConnect executes the full connect flow.
func runConnect(ctx context.Context, input string, opts connectOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	if err := connectivity.ValidateMaxUpstreams(cfg.MaxUpstreams); err != nil {
		return err
	}

	logger.Debugf("Reading network from %s (fields: %s, %s)", input, cfg.Fields.ID, cfg.Fields.Downstream)
	prog := newProgress(logger)
	net, err := source.ReadFile(input, cfg.SourceFields())
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Read %d reaches (%d outlets)", net.Len(), len(net.Outlets())))

	table, err := connectivity.Build(net, connectivity.Options{MaxUpstreams: cfg.MaxUpstreams})
	if err != nil {
		return err
	}

	out := resolveOutputPath(opts.output, cfg.ScratchDir)
	if err := table.ExportCSV(out); err != nil {
		return err
	}

	printSummary(len(table.Rows), table.Width, out)
	return nil
}
