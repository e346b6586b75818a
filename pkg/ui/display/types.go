// Package display defines the result types commands hand to renderers.
package display

import (
	"fmt"
	"time"

	"github.com/arthur-debert/pkgshift/pkg/pipeline"
)

// RunResult describes one transform or deploy invocation.
type RunResult struct {
	Command    string          `json:"command" yaml:"command"`
	Source     string          `json:"source" yaml:"source"`
	Output     string          `json:"output,omitempty" yaml:"output,omitempty"`
	Transforms []string        `json:"transforms" yaml:"transforms"`
	Report     pipeline.Report `json:"report" yaml:"report"`
	Deploy     *DeployInfo     `json:"deploy,omitempty" yaml:"deploy,omitempty"`
	Timestamp  time.Time       `json:"timestamp" yaml:"timestamp"`
}

// DeployInfo describes what a deploy backend accepted.
type DeployInfo struct {
	Backend  string `json:"backend" yaml:"backend"`
	Target   string `json:"target" yaml:"target"`
	Bytes    int    `json:"bytes" yaml:"bytes"`
	Checksum string `json:"checksum" yaml:"checksum"`
}

// InspectResult lists an archive's entries and manifest declarations.
type InspectResult struct {
	Source   string        `json:"source" yaml:"source"`
	Entries  []EntryInfo   `json:"entries" yaml:"entries"`
	Manifest *ManifestInfo `json:"manifest,omitempty" yaml:"manifest,omitempty"`
	Marked   []string      `json:"marked,omitempty" yaml:"marked,omitempty"`
}

// EntryInfo is one archive entry.
type EntryInfo struct {
	Name string `json:"name" yaml:"name"`
	Size int    `json:"size" yaml:"size"`
}

// ManifestInfo summarizes the manifest entry.
type ManifestInfo struct {
	Entry   string     `json:"entry" yaml:"entry"`
	Version string     `json:"version,omitempty" yaml:"version,omitempty"`
	Types   []TypeInfo `json:"types" yaml:"types"`
}

// TypeInfo is one declared metadata type.
type TypeInfo struct {
	Name    string   `json:"name" yaml:"name"`
	Members []string `json:"members,omitempty" yaml:"members,omitempty"`
}

// StepLine renders a step as a one-line summary shared by the text
// renderers.
func StepLine(s pipeline.Step) string {
	return fmt.Sprintf("%s: %d -> %d entries (%s)", s.Transform, s.EntriesIn, s.EntriesOut, s.Duration.Round(time.Microsecond))
}
