package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/sector-atlas/geo"
	"github.com/lixenwraith/sector-atlas/scene"
	"github.com/lixenwraith/sector-atlas/sector"
)

var inspectLinear bool

var (
	headerStyle  = color.New(color.FgCyan, color.Bold)
	systemStyle  = color.New(color.FgYellow)
	pendingStyle = color.New(color.FgHiBlack)
	valueStyle   = color.New(color.FgGreen)
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Resolve and print the dataset without the map",
	Long: "inspect resolves every sector's coordinates and prints a table\n" +
		"plus a meridian-band histogram. Useful for checking a dataset\n" +
		"before flying it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect()
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectLinear, "linear", false,
		"resolve with the linear system instead of geodesic")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect() error {
	store, err := sector.OpenFileStore(datasetPath())
	if err != nil {
		return fail("open dataset: %w", err)
	}
	sectors, err := store.GetAll()
	if err != nil {
		return fail("load sectors: %w", err)
	}
	if len(sectors) == 0 {
		fmt.Println("dataset is empty:", datasetPath())
		return nil
	}

	sys := geo.SystemGeodesic
	if inspectLinear {
		sys = geo.SystemLinear
	}
	nodes := scene.Build(sectors, sys)

	headerStyle.Printf("%-14s %-18s %-6s %9s %9s %5s\n",
		"ADDRESS", "NAME", "FLAG", "LAT", "LON", "BAND")

	pending := 0
	var bands [geo.MeridianBands]int
	for i := range nodes {
		n := &nodes[i]
		bands[n.Meridian]++

		flag := ""
		style := valueStyle
		if n.IsSystem {
			flag = "system"
			style = systemStyle
		}

		if n.Pending {
			pending++
			pendingStyle.Printf("%-14s %-18s %-6s %9s %9s %5d\n",
				shortAddr(n.Address), clip(n.Name, 18), flag, "-", "-", n.Meridian)
			continue
		}
		style.Printf("%-14s %-18s %-6s %9.3f %9.3f %5d\n",
			shortAddr(n.Address), clip(n.Name, 18), flag, n.GroundY, n.GroundX, n.Meridian)
	}

	fmt.Println()
	headerStyle.Printf("%d sectors, %d pending (%s)\n", len(nodes), pending, sys)

	fmt.Println()
	printHistogram(bands[:])
	return nil
}

// printHistogram prints occupied meridian bands with a proportional bar
func printHistogram(bands []int) {
	max := 0
	for _, c := range bands {
		if c > max {
			max = c
		}
	}
	if max == 0 {
		return
	}

	headerStyle.Println("meridian occupancy")
	for i, c := range bands {
		if c == 0 {
			continue
		}
		bar := strings.Repeat("▪", 1+c*30/max)
		fmt.Printf("  band %2d %4d %s\n", i, c, bar)
	}
}

func shortAddr(addr string) string {
	if len(addr) <= 14 {
		return addr
	}
	return addr[:8] + "…" + addr[len(addr)-4:]
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
