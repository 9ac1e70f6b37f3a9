// Command cli inspects the fixture data behind the dashboard and writes the
// workbooks and charts it would show.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cessao-fidc/internal/charts"
	"cessao-fidc/internal/config"
	"cessao-fidc/internal/export"
	"cessao-fidc/internal/fixtures"
	"cessao-fidc/internal/model"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var fixturesFile string

	rootCmd := &cobra.Command{
		Use:          "cessao",
		Short:        "Inspect the cession dashboard fixtures",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&fixturesFile, "fixtures", os.Getenv("CESSAO_FIXTURES_FILE"), "YAML fixture overlay (default: built-in data)")

	load := func() (*fixtures.Static, error) {
		return fixtures.LoadFile(fixturesFile)
	}

	rootCmd.AddCommand(
		newFixturesCmd(load),
		newExportCmd(load),
		newChartCmd(load),
		newConfigCmd(),
	)
	return rootCmd
}

type loader func() (*fixtures.Static, error)

func newFixturesCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "fixtures",
		Short: "Print the effective fixture dataset as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := load()
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), p.Dataset())
		},
	}
}

func newExportCmd(load loader) *cobra.Command {
	var (
		simulation string
		options    []string
		format     string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the report workbook for a simulation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := load()
			if err != nil {
				return err
			}

			ids := make([]model.DownloadOptionID, 0, len(options))
			for _, o := range options {
				id := model.DownloadOptionID(strings.TrimSpace(o))
				if !fixtures.HasOption(p, id) {
					return fmt.Errorf("unknown option %q", o)
				}
				ids = append(ids, id)
			}
			if len(ids) == 0 {
				for _, opt := range p.DownloadOptions() {
					ids = append(ids, opt.ID)
				}
			}

			out, closeOut, err := openOutput(cmd, outPath)
			if err != nil {
				return err
			}
			defer closeOut()

			sim := model.SimulationID(simulation)
			switch format {
			case "xlsx":
				if outPath == "" {
					return fmt.Errorf("--out is required for xlsx")
				}
				return export.WriteWorkbook(out, p, sim, ids)
			case "csv":
				if len(ids) != 1 {
					return fmt.Errorf("csv holds one report; pass exactly one --option")
				}
				table, err := export.BuildTable(p, sim, ids[0])
				if err != nil {
					return err
				}
				return export.WriteCSV(out, table)
			default:
				return fmt.Errorf("invalid format: %s (must be xlsx or csv)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&simulation, "simulation", "s", "1", "Simulation id")
	cmd.Flags().StringSliceVar(&options, "option", nil, "Report ids (default: all)")
	cmd.Flags().StringVar(&format, "format", "xlsx", "Output format: xlsx or csv")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file path (default: stdout, csv only)")
	return cmd
}

func newChartCmd(load loader) *cobra.Command {
	var (
		simulation string
		outPath    string
		width      int
		height     int
	)

	cmd := &cobra.Command{
		Use:   "chart [maturity|states]",
		Short: "Render a statistics chart as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := charts.ParseKind(args[0])
			if err != nil {
				return err
			}
			p, err := load()
			if err != nil {
				return err
			}

			svg, err := charts.NewRenderer(p, charts.NewCache(0), width, height).
				Render(kind, model.SimulationID(simulation))
			if err != nil {
				return err
			}

			out, closeOut, err := openOutput(cmd, outPath)
			if err != nil {
				return err
			}
			defer closeOut()
			_, err = out.Write(svg)
			return err
		},
	}

	defaults := config.Default().Charts
	cmd.Flags().StringVarP(&simulation, "simulation", "s", "1", "Simulation id")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file path (default: stdout)")
	cmd.Flags().IntVar(&width, "width", defaults.Width, "Chart width in pixels")
	cmd.Flags().IntVar(&height, "height", defaults.Height, "Chart height in pixels")
	return cmd
}

func newConfigCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective server configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadUnchecked(path)
			if err != nil {
				return err
			}
			if err := writeYAML(cmd.OutOrStdout(), cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "config", os.Getenv("CESSAO_CONFIG"), "Path to YAML config")
	return cmd
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func openOutput(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output: %w", err)
	}
	return f, func() { f.Close() }, nil
}
