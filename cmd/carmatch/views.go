package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"carmatch/internal/api"
)

const (
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
	ansiReset  = "\x1b[0m"
)

func decisionLabel(out io.Writer, decision string) string {
	if !isTerminal(out) {
		return decision
	}
	switch decision {
	case "PERFECT":
		return ansiGreen + decision + ansiReset
	case "LIKELY", "POSSIBLE":
		return ansiYellow + decision + ansiReset
	case "UNLIKELY", "NO_CANDIDATES":
		return ansiRed + decision + ansiReset
	default:
		return decision
	}
}

func printSearchResult(out io.Writer, result api.SearchResult) {
	if !result.Found {
		fmt.Fprintf(out, "No trim found for %s", result.OriginalCode)
		if result.Error != "" {
			fmt.Fprintf(out, " (%s)", result.Error)
		}
		fmt.Fprintln(out)
		return
	}

	fmt.Fprintf(out, "Source: %s\n", result.InfocarName)
	if result.WasInverted {
		fmt.Fprintf(out, "Code:   %s (inverted from %s)\n", result.UsedCode, result.OriginalCode)
	} else {
		fmt.Fprintf(out, "Code:   %s\n", result.UsedCode)
	}
	fmt.Fprintf(out, "Profile: %s (max score %d)\n", result.WeightProfile, result.MaxScore)
	fmt.Fprintf(out, "Decision: %s", decisionLabel(out, result.Decision))
	if result.RecommendedNatcode != "" {
		fmt.Fprintf(out, " -> %s", result.RecommendedNatcode)
	}
	fmt.Fprintln(out)
	if result.ExistingMapping != nil {
		fmt.Fprintf(out, "Existing mapping: %s (%s)\n",
			result.ExistingMapping.DestCode, result.ExistingMapping.Provider)
	}

	if len(result.Candidates) == 0 {
		fmt.Fprintln(out, "No candidates")
		return
	}
	fmt.Fprintf(out, "Candidates (%d evaluated):\n", result.CandidateCount)
	fmt.Fprintln(out, renderTable(
		[]column{
			{title: "Natcode"},
			{title: "Name"},
			{title: "Score", numeric: true},
			{title: "%", numeric: true},
			{title: "OEM"},
		},
		buildCandidateRows(result),
	))
}

func buildCandidateRows(result api.SearchResult) [][]string {
	rows := make([][]string, 0, len(result.Candidates))
	for _, c := range result.Candidates {
		pct := ""
		if result.MaxScore > 0 {
			pct = fmt.Sprintf("%.1f", float64(c.Score)/float64(result.MaxScore)*100)
		}
		rows = append(rows, []string{
			c.Natcode,
			c.Name,
			strconv.Itoa(c.Score),
			pct,
			c.OEMMatchType,
		})
	}
	return rows
}

func buildProfileRows(resp api.ProfilesResponse) [][]string {
	rows := make([][]string, 0, len(resp.Profiles))
	for _, p := range resp.Profiles {
		name := p.Name
		if name == resp.Default {
			name += " (default)"
		}
		rows = append(rows, []string{name, strconv.Itoa(p.MaxScore)})
	}
	return rows
}

func buildWeightRows(weights map[string]int) [][]string {
	factors := make([]string, 0, len(weights))
	for factor := range weights {
		factors = append(factors, factor)
	}
	sort.Strings(factors)
	rows := make([][]string, 0, len(factors))
	for _, factor := range factors {
		rows = append(rows, []string{factor, strconv.Itoa(weights[factor])})
	}
	return rows
}

func printStats(out io.Writer, stats api.StatsResponse) {
	fmt.Fprintf(out, "Daemon running:  %t\n", stats.Running)
	fmt.Fprintf(out, "Catalog loaded:  %t\n", stats.CatalogLoaded)
	fmt.Fprintf(out, "Records:         %d\n", stats.Records)
	fmt.Fprintf(out, "Makes:           %d\n", stats.Makes)
	fmt.Fprintf(out, "OEM codes:       %d\n", stats.OEMCodes)
	fmt.Fprintf(out, "Refresh count:   %d\n", stats.RefreshCount)
	if stats.BuiltAt != "" {
		fmt.Fprintf(out, "Index built at:  %s\n", stats.BuiltAt)
	}
	if stats.LastRefresh != "" {
		fmt.Fprintf(out, "Last refresh:    %s\n", stats.LastRefresh)
	}
	if stats.LastError != "" {
		fmt.Fprintf(out, "Last error:      %s\n", stats.LastError)
	}
}

func printVehicle(out io.Writer, view api.VehicleView) {
	fmt.Fprintf(out, "Natcode: %s\n", view.Natcode)
	fmt.Fprintf(out, "Name:    %s\n", view.Name)
	fmt.Fprintf(out, "Make:    %s  Model: %s  Class: %s\n", view.Make, view.Model, view.VehicleClass)
	fmt.Fprintf(out, "Fuel:    %s  Body: %s  Gearbox: %s  Traction: %s\n",
		view.FuelNorm, view.BodyNorm, view.GearType, view.Traction)
	fmt.Fprintf(out, "Power:   %d hp / %d kw  CC: %d  Doors: %d  Seats: %d  Gears: %d\n",
		view.HP, view.KW, view.CC, view.Doors, view.Seats, view.Gears)
	fmt.Fprintf(out, "Price:   %.2f  Mass: %.0f\n", view.Price, view.Mass)
	if view.SellableBegin != 0 || view.SellableEnd != 0 {
		fmt.Fprintf(out, "Sellable: %d - %d\n", view.SellableBegin, view.SellableEnd)
	}
	if view.OEMCode != "" {
		fmt.Fprintf(out, "OEM code: %s\n", view.OEMCode)
	}
}
