package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop"
	"github.com/katalvlaran/pipeloop/interior"
)

const boxFlagName = "box"

// boxGlyphs maps pipe tiles to box-drawing characters.
var boxGlyphs = map[rune]rune{
	'|': '│',
	'-': '─',
	'L': '└',
	'J': '┘',
	'7': '┐',
	'F': '┌',
}

// palette styles the three cell classes of a rendered grid.
type palette struct {
	onLoop, inside, outside lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		onLoop:  r.NewStyle().Foreground(lipgloss.Color("12")),
		inside:  r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		outside: r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (a *app) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw the loop with enclosed (I) and outside (O) tiles marked",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := cmd.Flags().GetBool(boxFlagName)
			if err != nil {
				return err
			}
			opts := a.traceOptions()
			results, err := runAll(cmd.Context(), a, args, cmd.InOrStdin(), func(buf []byte) (*pipeloop.Report, error) {
				return pipeloop.Analyze(buf, opts...)
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			drawing := results[0].Value.Classification.Render()
			if box {
				drawing = toBox(drawing)
			}
			if a.config.GetBool(colorConfigKey) {
				drawing = colorize(newPalette(out), drawing)
			}
			_, err = fmt.Fprintln(out, drawing)
			return err
		},
	}

	cmd.Flags().Bool(colorFlagName, a.config.GetBool(colorConfigKey), "color loop, enclosed and outside tiles")
	a.bindFlagToConfig(cmd.Flags().Lookup(colorFlagName), colorConfigKey)
	cmd.Flags().Bool(boxFlagName, false, "draw pipes with box-drawing characters")

	return cmd
}

func toBox(drawing string) string {
	return strings.Map(func(r rune) rune {
		if g, ok := boxGlyphs[r]; ok {
			return g
		}
		return r
	}, drawing)
}

// colorize styles runs of equally classified cells line by line.
func colorize(p palette, drawing string) string {
	lines := strings.Split(drawing, "\n")
	for i, line := range lines {
		var sb strings.Builder
		runes := []rune(line)
		for start := 0; start < len(runes); {
			kind := kindOf(runes[start])
			end := start + 1
			for end < len(runes) && kindOf(runes[end]) == kind {
				end++
			}
			sb.WriteString(p.style(kind).Render(string(runes[start:end])))
			start = end
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// kindOf maps a rendered rune back to its cell class.
func kindOf(r rune) interior.Class {
	switch r {
	case 'I':
		return interior.Interior
	case 'O':
		return interior.Exterior
	}
	return interior.Loop
}

func (p palette) style(k interior.Class) lipgloss.Style {
	switch k {
	case interior.Interior:
		return p.inside
	case interior.Exterior:
		return p.outside
	}
	return p.onLoop
}
