package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/osse101/craftboard/internal/crafting"
	"github.com/osse101/craftboard/internal/domain"
)

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func formatUnlockTime(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}

func formatKeywords(keywords []domain.Keyword) string {
	if len(keywords) == 0 {
		return "-"
	}
	parts := make([]string, len(keywords))
	for i, k := range keywords {
		parts[i] = string(k)
	}
	return strings.Join(parts, ",")
}

func formatIngredients(reqs []domain.RecipeRequirement) string {
	parts := make([]string, len(reqs))
	for i, req := range reqs {
		if req.Count > 1 {
			parts[i] = fmt.Sprintf("%dx %s", req.Count, req.ItemID)
		} else {
			parts[i] = req.ItemID
		}
	}
	return strings.Join(parts, " + ")
}

func printItems(w io.Writer, items []crafting.ItemView) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tUNLOCKED\tKEYWORDS\tFINAL\tUNLOCKED AT")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			item.ID, item.DisplayName, yesNo(item.Unlocked), formatKeywords(item.Keywords),
			yesNo(item.Final), formatUnlockTime(item.TimeUnlocked))
	}
	return tw.Flush()
}

func printRecipes(w io.Writer, recipes []crafting.RecipeView) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tINGREDIENTS\tPRODUCTS\tUNLOCKED\tBUILDABLE")
	for _, recipe := range recipes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			recipe.ID, formatIngredients(recipe.Ingredients), strings.Join(recipe.Products, ", "),
			yesNo(recipe.Unlocked), yesNo(recipe.Buildable))
	}
	return tw.Flush()
}

func printStats(w io.Writer, stats crafting.Stats) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Items\t%d / %d unlocked\n", stats.UnlockedItems, stats.TotalItems)
	fmt.Fprintf(tw, "Recipes\t%d / %d unlocked\n", stats.UnlockedRecipes, stats.TotalRecipes)
	fmt.Fprintf(tw, "Final items\t%d\n", stats.FinalItems)
	fmt.Fprintf(tw, "Depleted items\t%d\n", stats.DepletedItems)
	fmt.Fprintf(tw, "Hinted items\t%d\n", stats.HintedItems)
	fmt.Fprintf(tw, "Completion\t%.2f%%\n", stats.Completion)
	return tw.Flush()
}
