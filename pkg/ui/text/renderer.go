// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/pkgshift/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders a result as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.RunResult:
		return r.renderRun(v)
	case *display.InspectResult:
		return r.renderInspect(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderRun(v *display.RunResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", v.Command, v.Source)
	for _, step := range v.Report.Steps {
		fmt.Fprintf(&b, "  %s\n", display.StepLine(step))
		for _, name := range step.Added {
			fmt.Fprintf(&b, "    + %s\n", name)
		}
		for _, name := range step.Removed {
			fmt.Fprintf(&b, "    - %s\n", name)
		}
	}
	fmt.Fprintf(&b, "%d entries\n", v.Report.Entries)
	if v.Output != "" {
		fmt.Fprintf(&b, "written to %s\n", v.Output)
	}
	if v.Deploy != nil {
		fmt.Fprintf(&b, "deployed %d bytes to %s (%s, %s)\n", v.Deploy.Bytes, v.Deploy.Target, v.Deploy.Backend, v.Deploy.Checksum)
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *Renderer) renderInspect(v *display.InspectResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d entries\n", v.Source, len(v.Entries))
	for _, e := range v.Entries {
		fmt.Fprintf(&b, "  %s (%d bytes)\n", e.Name, e.Size)
	}
	if m := v.Manifest; m != nil {
		fmt.Fprintf(&b, "manifest %s", m.Entry)
		if m.Version != "" {
			fmt.Fprintf(&b, " version %s", m.Version)
		}
		b.WriteString("\n")
		for _, t := range m.Types {
			fmt.Fprintf(&b, "  %s: %d members\n", t.Name, len(t.Members))
		}
	}
	if len(v.Marked) > 0 {
		fmt.Fprintf(&b, "marked for pruning: %s\n", strings.Join(v.Marked, ", "))
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return writeErr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
