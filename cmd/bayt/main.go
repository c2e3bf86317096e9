package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bay-transit/bayt-cli/internal/api"
	"github.com/bay-transit/bayt-cli/internal/config"
	"github.com/bay-transit/bayt-cli/internal/operators"
	"github.com/bay-transit/bayt-cli/internal/output"
	"github.com/bay-transit/bayt-cli/internal/tui"
)

var version = "0.3.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bayt",
	Short: "CLI for querying Bay Area real-time transit information",
	Long: `bayt is a command-line interface for querying real-time Bay Area
transit information from the 511 transit API.

Features:
  - Real-time departure boards for any stop
  - Stop and line listings per operator
  - Filter departures by line
  - JSON output for scripting
  - Interactive full-screen TUI

An API key is required (free at https://511.org/open-data/token).
Configure it once with 'bayt config set-key <key>', or pass it via
--api-key or the BAYT_API_KEY environment variable.

Quick Start:
  1. Store your key:          bayt config set-key YOUR_KEY
  2. List operators:          bayt operators
  3. List stops:              bayt stops SF
  4. Show departures:         bayt departures SF:15553
  5. Launch TUI:              bayt tui SF`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Global flags
var (
	flagAPIKey  string
	flagJSON    bool
	flagRawJSON bool
	flagColor   string
	flagTimeout time.Duration
)

// Departures flags
var (
	flagLine  string
	flagWatch bool
)

func init() {
	rootCmd.AddCommand(departuresCmd)
	rootCmd.AddCommand(stopsCmd)
	rootCmd.AddCommand(linesCmd)
	rootCmd.AddCommand(operatorsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(tuiCmd)
	configCmd.AddCommand(configSetKeyCmd)
	configCmd.AddCommand(configShowCmd)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "511 API key (overrides env and config file)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagRawJSON, "raw-json", false, "Output raw API response")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 10*time.Second, "HTTP request timeout")

	// Departures-specific flags
	departuresCmd.Flags().StringVarP(&flagLine, "line", "l", "", "Filter by line (exact match)")
	departuresCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Watch mode: refresh every 30 seconds")
}

// createClient creates an API client with the resolved credential
func createClient() *api.Client {
	key := config.ResolveAPIKey(flagAPIKey, config.DefaultStore())
	return api.NewClient(key, api.WithTimeout(flagTimeout))
}

// getColorMode returns the color mode based on flag
func getColorMode() output.ColorMode {
	return output.ParseColorMode(flagColor)
}

var departuresCmd = &cobra.Command{
	Use:   "departures <operator>:<stop_code>",
	Short: "Show upcoming departures at a stop",
	Long: `Show the next departures at a stop (at most five, soonest first).

The stop must be specified as OPERATOR:STOPCODE, e.g.:
  bayt departures SF:15553

Use 'bayt stops <operator>' to find stop codes.

Filtering:
  --line, -l <line>      Filter by line (exact match, e.g., N, KT)

Examples:
  bayt departures SF:15553            # All departures
  bayt departures SF:15553 --line N   # Only the N line
  bayt departures SF:15553 --watch    # Refresh every 30 seconds
  bayt departures SF:15553 --json     # Machine-readable output`,
	Args: cobra.ExactArgs(1),
	RunE: runDepartures,
}

var stopsCmd = &cobra.Command{
	Use:   "stops <operator>",
	Short: "List stops for an operator",
	Long: `List all stops known for an operator, sorted by name.

Example:
  bayt stops SF
  bayt stops CT --json`,
	Args: cobra.ExactArgs(1),
	RunE: runStops,
}

var linesCmd = &cobra.Command{
	Use:   "lines <operator>",
	Short: "List lines for an operator",
	Long: `List all lines known for an operator, sorted by display name.

Example:
  bayt lines SF
  bayt lines BA --json`,
	Args: cobra.ExactArgs(1),
	RunE: runLines,
}

var operatorsCmd = &cobra.Command{
	Use:   "operators",
	Short: "List known Bay Area operators",
	RunE:  runOperators,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage stored configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key <api_key>",
	Short: "Store the 511 API key",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetKey,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored configuration",
	RunE:  runConfigShow,
}

var tuiCmd = &cobra.Command{
	Use:   "tui <operator>",
	Short: "Launch interactive full-screen TUI",
	Long: `Launch an interactive full-screen terminal UI for browsing an
operator's stops and their departure boards.

Keyboard:
  Tab            Cycle focus between panels
  j/k or arrows  Navigate the stop list
  Enter          Show departures for the selected stop
  r              Refresh the board
  a              Toggle 30s auto-refresh
  Esc, q         Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	client := createClient()

	model := tui.New(client, args[0])
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// parseStopArg splits an OPERATOR:STOPCODE argument
func parseStopArg(arg string) (string, string, error) {
	parts := strings.SplitN(arg, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("stop must be in format OPERATOR:STOPCODE (e.g., SF:15553)\nUse 'bayt stops <operator>' to find stop codes")
	}
	return parts[0], parts[1], nil
}

// runWatch runs a continuous refresh loop for watch mode
func runWatch(fetchAndRender func() error) error {
	const refreshInterval = 30 * time.Second

	sigChan := output.SetupSignalHandler()
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	output.HideCursor(os.Stdout)
	defer output.ShowCursor(os.Stdout)

	for {
		output.ClearScreen(os.Stdout)

		now := time.Now()
		fmt.Printf("Last update: %s | Next refresh in 30s | Press Ctrl+C to exit\n\n",
			now.Format("15:04:05"))

		if err := fetchAndRender(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		select {
		case <-ticker.C:
			continue
		case <-sigChan:
			output.ClearScreen(os.Stdout)
			fmt.Println("Watch mode ended.")
			return nil
		}
	}
}

func runDepartures(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	operatorID, stopCode, err := parseStopArg(args[0])
	if err != nil {
		return err
	}

	client := createClient()
	req := api.DepartureRequest{
		Agency:   operatorID,
		StopCode: stopCode,
		Line:     flagLine,
	}

	if flagWatch {
		return runWatch(func() error {
			departures, err := client.GetDepartures(ctx, req)
			if err != nil {
				return err
			}
			output.RenderDepartures(os.Stdout, departures, output.TableOptions{
				Colors: output.NewColors(getColorMode()),
			})
			return nil
		})
	}

	if flagRawJSON {
		raw, err := client.GetDeparturesRaw(ctx, req)
		if err != nil {
			return err
		}
		return printPrettyJSON(raw)
	}

	departures, err := client.GetDepartures(ctx, req)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(departures)
	}

	output.RenderDepartures(os.Stdout, departures, output.TableOptions{
		Colors: output.NewColors(getColorMode()),
	})
	return nil
}

func runStops(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	client := createClient()

	if flagRawJSON {
		raw, err := client.GetStopsRaw(ctx, args[0])
		if err != nil {
			return err
		}
		return printPrettyJSON(raw)
	}

	stations, err := client.GetStops(ctx, args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stations)
	}

	output.RenderStations(os.Stdout, stations, output.TableOptions{
		Colors: output.NewColors(getColorMode()),
	})
	return nil
}

func runLines(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	client := createClient()

	if flagRawJSON {
		raw, err := client.GetLinesRaw(ctx, args[0])
		if err != nil {
			return err
		}
		return printPrettyJSON(raw)
	}

	lines, err := client.GetLines(ctx, args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(lines)
	}

	output.RenderLines(os.Stdout, lines, output.TableOptions{
		Colors: output.NewColors(getColorMode()),
	})
	return nil
}

func runOperators(cmd *cobra.Command, args []string) error {
	ops := operators.All()

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ops)
	}

	output.RenderOperators(os.Stdout, ops, output.TableOptions{
		Colors: output.NewColors(getColorMode()),
	})
	return nil
}

func runConfigSetKey(cmd *cobra.Command, args []string) error {
	store := config.DefaultStore()
	cfg, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.APIKey = args[0]
	if err := store.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("API key stored in %s\n", store.Path())
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	store := config.DefaultStore()
	cfg, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Printf("Config file: %s\n", store.Path())
	if cfg.APIKey == "" {
		fmt.Println("API key:     (not set)")
	} else {
		fmt.Printf("API key:     %s\n", maskKey(cfg.APIKey))
	}
	return nil
}

// maskKey hides all but the last four characters of a credential
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

// printPrettyJSON re-indents a raw JSON body for terminal output
func printPrettyJSON(raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		// Not valid JSON; print as-is
		fmt.Println(string(raw))
		return nil
	}
	fmt.Println(buf.String())
	return nil
}
