package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"rangekit/bench"
	"rangekit/engine"
	"rangekit/filters"
	"rangekit/seqs"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List the registered class hierarchy",
	RunE: func(cmd *cobra.Command, _ []string) error {
		printClasses(cmd.OutOrStdout())
		return nil
	},
}

func printClasses(w io.Writer) {
	all := engine.Classes()
	slices.SortFunc(all, func(a, b *engine.Class) int { return strings.Compare(a.Name(), b.Name()) })

	children := lo.GroupBy(all, func(c *engine.Class) *engine.Class { return c.Super() })

	var walk func(c *engine.Class, depth int)
	walk = func(c *engine.Class, depth int) {
		mark := ""
		if slices.Contains(bench.SampleClasses, c) {
			mark = " *"
		}
		fmt.Fprintf(w, "%s%s %s%s\n", strings.Repeat("  ", depth), c.Name(), c.GUID(), mark)
		for _, child := range children[c] {
			walk(child, depth+1)
		}
	}
	for _, root := range children[nil] {
		walk(root, 0)
	}

	packages := seqs.CountFunc(slices.Values(all), filters.IsChildOf[*engine.Class](engine.PackageClass))
	fmt.Fprintf(w, "%d classes, %d package classes\n", len(all), packages)
}
