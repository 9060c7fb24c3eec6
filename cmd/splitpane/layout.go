package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/xonecas/splitpane/internal/config"
	"github.com/xonecas/splitpane/internal/splitpane"
)

// BoxResult is one row of `splitpane layout` output.
type BoxResult struct {
	Kind   string `json:"kind" yaml:"kind"`
	Index  int    `json:"index" yaml:"index"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Offset int    `json:"offset" yaml:"offset"`
	Size   int    `json:"size" yaml:"size"`
}

// LayoutResult is the structured output of `splitpane layout`.
type LayoutResult struct {
	Axis      string      `json:"axis" yaml:"axis"`
	Container int         `json:"container" yaml:"container"`
	Boxes     []BoxResult `json:"boxes" yaml:"boxes"`
}

func newLayoutCommand() *cobra.Command {
	var (
		size   int
		output string
	)
	cmd := &cobra.Command{
		Use:   "layout [files...]",
		Short: "Print the panel and divider boxes for a container size",
		Long: `Compute the initial layout for the configured panels in a container of
--size cells and print every panel and divider with its offset and size.

Examples:
  # Three equal panels across 302 columns
  splitpane layout --size 302 a.go b.go c.go

  # YAML output
  splitpane layout --size 120 -o yaml`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 0 {
				return fmt.Errorf("--size must not be negative")
			}
			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}
			sp, _, err := buildSplitPane(cfg, args, false)
			if err != nil {
				return err
			}
			defer sp.Close()
			if err := sp.ContainerResized(size); err != nil {
				return err
			}
			return writeLayout(cmd.OutOrStdout(), layoutResult(sp), output)
		},
	}
	cmd.Flags().IntVarP(&size, "size", "s", 80, "container size in cells along the split axis")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json, yaml")
	return cmd
}

func layoutResult(sp *splitpane.SplitPane) LayoutResult {
	res := LayoutResult{Axis: sp.Axis().String(), Container: sp.ContainerSize()}
	for _, b := range sp.Boxes() {
		kind := "panel"
		if b.Kind == splitpane.BoxDivider {
			kind = "divider"
		}
		res.Boxes = append(res.Boxes, BoxResult{
			Kind:   kind,
			Index:  b.Index,
			Name:   b.Name,
			Offset: b.Offset,
			Size:   b.Size,
		})
	}
	return res
}

func writeLayout(w io.Writer, res LayoutResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "KIND\tINDEX\tNAME\tOFFSET\tSIZE")
		for _, b := range res.Boxes {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%d\n", b.Kind, b.Index, b.Name, b.Offset, b.Size)
		}
		return tw.Flush()
	}
	return fmt.Errorf("unknown output format %q", format)
}
