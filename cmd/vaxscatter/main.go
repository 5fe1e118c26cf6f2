// Package main provides the CLI entry point for vaxscatter-go.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter"
	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/chart"
	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/models"
	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/output"
	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/parser"
	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/render"
	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/server"
)

var (
	configPath string
	dataPath   string
	variant    string

	addr string

	outputPath string
	field      string
	format     string
	width      int
	height     int

	asJSON bool
	pretty bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vaxscatter",
		Short: "Plot COVID-19 vaccinations against new weekly cases",
		Long: `vaxscatter-go draws a scatter chart of US states, fully vaccinated
people against new weekly COVID-19 cases, and serves it as an interactive page.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "CSV/xlsx path or URL (default: variant location)")
	rootCmd.PersistentFlags().StringVar(&variant, "variant", "fixed", "Sizing variant: fixed, responsive")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive chart",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render the chart to an SVG or PNG file",
		Args:  cobra.NoArgs,
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	renderCmd.Flags().StringVar(&field, "field", string(models.DefaultField), "X axis field")
	renderCmd.Flags().StringVar(&format, "format", "svg", "Output format: svg, png")
	renderCmd.Flags().IntVar(&width, "width", 960, "Chart width in pixels (default: config width)")
	renderCmd.Flags().IntVar(&height, "height", 500, "Chart height in pixels (default: config height)")

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize the loaded dataset",
		Args:  cobra.NoArgs,
		RunE:  runInspect,
	}
	inspectCmd.Flags().BoolVar(&asJSON, "json", false, "Print records as JSON")
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(serveCmd, renderCmd, inspectCmd)
	return rootCmd
}

// loadOptions layers defaults, the config file, .env and the environment,
// then explicitly set flags.
func loadOptions(cmd *cobra.Command) (vaxscatter.Options, error) {
	opts := vaxscatter.DefaultOptions()
	if configPath != "" {
		var err error
		if opts, err = vaxscatter.LoadConfig(configPath); err != nil {
			return opts, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return opts, fmt.Errorf("failed to load .env: %w", err)
	}
	opts.ApplyEnv(os.Getenv)

	flags := cmd.Flags()
	if flags.Changed("data") {
		opts.DataPath = dataPath
	}
	if flags.Changed("variant") {
		opts.Variant = vaxscatter.Variant(variant)
	}
	if flags.Changed("addr") {
		opts.Addr = addr
	}
	if flags.Changed("width") {
		opts.Width = width
	}
	if flags.Changed("height") {
		opts.Height = height
	}

	return opts, opts.Validate()
}

func runServe(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	session, err := server.NewSession(cmd.Context(), opts, nil)
	if err != nil {
		return fmt.Errorf("failed to build chart: %w", err)
	}

	log.Printf("Server starting on %s (%s variant, data %s)...", opts.Addr, opts.Variant, opts.Source())
	return http.ListenAndServe(opts.Addr, server.NewHandler(session).Router())
}

func runRender(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	f, err := models.ParseField(field)
	if err != nil {
		return err
	}

	state, err := vaxscatter.Build(cmd.Context(), opts, opts.Width, opts.Height)
	if err != nil {
		return fmt.Errorf("failed to build chart: %w", err)
	}
	if state, _, err = chart.Select(state, f); err != nil {
		return err
	}

	var buf bytes.Buffer
	switch format {
	case "svg":
		err = render.SVG(&buf, chart.Compose(state), nil)
	case "png":
		err = render.PNG(&buf, state)
	default:
		return fmt.Errorf("invalid format: %s (must be svg or png)", format)
	}
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = os.Stdout.Write(buf.Bytes())
	return err
}

func runInspect(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	records, err := parser.Load(cmd.Context(), opts.Source())
	if err != nil {
		return err
	}

	if asJSON {
		jsonData, err := output.ToJSON(records, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Println(string(jsonData))
		return nil
	}

	fmt.Println(summaryTable(opts.Source(), records))
	return nil
}
