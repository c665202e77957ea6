package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/aretw0/chillmcp/pkg/breaks"
)

// breaksCmd represents the breaks command
var breaksCmd = &cobra.Command{
	Use:   "breaks",
	Short: "List the break actions the server exposes",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogPath, _ := cmd.Flags().GetString("catalog")
		catalog, err := breaks.Load(catalogPath)
		if err != nil {
			return err
		}

		var md strings.Builder
		md.WriteString("# ChillMCP Break Catalog\n\n")
		md.WriteString("| Tool | Relief | Activity |\n")
		md.WriteString("|------|--------|----------|\n")
		for _, p := range catalog.Profiles() {
			fmt.Fprintf(&md, "| `%s` | %d–%d | %s |\n", p.Name, p.MinRelief, p.MaxRelief, p.Description)
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
		)
		if err != nil {
			return err
		}
		out, err := r.Render(md.String())
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(breaksCmd)
}
