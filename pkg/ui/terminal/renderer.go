// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/pkgshift/pkg/ui/display"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders a result with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	var out string
	var err error
	switch v := result.(type) {
	case *display.RunResult:
		out, err = renderRun(v)
	case *display.InspectResult:
		out, err = renderInspect(v)
	default:
		out = fmt.Sprintf("%+v", result)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, out)
	return err
}

func renderRun(v *display.RunResult) (string, error) {
	var b strings.Builder
	b.WriteString(titleStyle.Render(v.Command) + " " + v.Source + "\n\n")

	data := pterm.TableData{{"Transform", "In", "Out", "Added", "Removed", "Time"}}
	for _, s := range v.Report.Steps {
		data = append(data, []string{
			kindStyle.Render(s.Transform),
			fmt.Sprint(s.EntriesIn),
			fmt.Sprint(s.EntriesOut),
			fmt.Sprint(len(s.Added)),
			fmt.Sprint(len(s.Removed)),
			s.Duration.String(),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}
	b.WriteString(table + "\n")

	for _, s := range v.Report.Steps {
		for _, name := range s.Added {
			b.WriteString(indent.Render(addedStyle.Render("+ "+name)) + "\n")
		}
		for _, name := range s.Removed {
			b.WriteString(indent.Render(removedStyle.Render("- "+name)) + "\n")
		}
	}

	b.WriteString("\n" + pterm.Success.Prefix.Text + " " + fmt.Sprintf("%d entries", v.Report.Entries))
	if v.Output != "" {
		b.WriteString(mutedStyle.Render(" -> " + v.Output))
	}
	if v.Deploy != nil {
		b.WriteString("\n" + pterm.Info.Prefix.Text + " " +
			fmt.Sprintf("deployed %d bytes to %s ", v.Deploy.Bytes, v.Deploy.Target) +
			mutedStyle.Render("("+v.Deploy.Backend+", "+v.Deploy.Checksum+")"))
	}
	return b.String(), nil
}

func renderInspect(v *display.InspectResult) (string, error) {
	var b strings.Builder
	b.WriteString(titleStyle.Render(v.Source) + mutedStyle.Render(fmt.Sprintf(" %d entries", len(v.Entries))) + "\n")

	marked := make(map[string]bool, len(v.Marked))
	for _, name := range v.Marked {
		marked[name] = true
	}
	for _, e := range v.Entries {
		line := e.Name
		if marked[e.Name] {
			line = removedStyle.Render(e.Name)
		}
		b.WriteString(indent.Render(line+mutedStyle.Render(fmt.Sprintf(" %dB", e.Size))) + "\n")
	}

	if m := v.Manifest; m != nil {
		data := pterm.TableData{{"Type", "Members"}}
		for _, t := range m.Types {
			data = append(data, []string{kindStyle.Render(t.Name), fmt.Sprint(len(t.Members))})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return "", err
		}
		b.WriteString("\n" + titleStyle.Render(m.Entry))
		if m.Version != "" {
			b.WriteString(mutedStyle.Render(" v" + m.Version))
		}
		b.WriteString("\n" + table)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintln(r.output, pterm.Error.Prefix.Text+" "+removedStyle.Render(err.Error()))
	return writeErr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, pterm.Info.Prefix.Text+" "+msg)
	return err
}
