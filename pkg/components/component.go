// Package components defines the mod-installation data model shared by the
// merge engine, the URL validator, and the manifest codecs. A Component is
// one installable mod unit: scalar metadata, tag lists, GUID reference sets,
// a download link map, and ordered Instructions and Options.
package components

import (
	"sort"
	"strings"
)

// FileMap maps an expected filename to its download eligibility flag.
type FileMap map[string]DownloadFlag

// Component represents one installable mod unit in a manifest.
type Component struct {
	// Core identity. GUID may be empty before a merge: empty means
	// "not yet identified" and must never overwrite a non-empty GUID.
	GUID   string `json:"guid,omitempty" yaml:"guid,omitempty" toml:"guid,omitempty"`
	Name   string `json:"name" yaml:"name" toml:"name"`
	Author string `json:"author,omitempty" yaml:"author,omitempty" toml:"author,omitempty"`

	// Descriptive metadata
	Description        string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Directions         string `json:"directions,omitempty" yaml:"directions,omitempty" toml:"directions,omitempty"`
	Tier               string `json:"tier,omitempty" yaml:"tier,omitempty" toml:"tier,omitempty"`
	InstallationMethod string `json:"installation_method,omitempty" yaml:"installation_method,omitempty" toml:"installation_method,omitempty"`

	// Tag lists
	Category []string `json:"category,omitempty" yaml:"category,omitempty" toml:"category,omitempty"`
	Language []string `json:"language,omitempty" yaml:"language,omitempty" toml:"language,omitempty"`

	// Reference sets: logical sets of component GUIDs, order irrelevant
	Dependencies  []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty" toml:"dependencies,omitempty"`
	Restrictions  []string `json:"restrictions,omitempty" yaml:"restrictions,omitempty" toml:"restrictions,omitempty"`
	InstallBefore []string `json:"install_before,omitempty" yaml:"install_before,omitempty" toml:"install_before,omitempty"`
	InstallAfter  []string `json:"install_after,omitempty" yaml:"install_after,omitempty" toml:"install_after,omitempty"`

	// Links maps a download URL to the filenames expected from it.
	Links map[string]FileMap `json:"links,omitempty" yaml:"links,omitempty" toml:"links,omitempty"`

	// Ordered sub-entities
	Instructions []*Instruction `json:"instructions,omitempty" yaml:"instructions,omitempty" toml:"instructions,omitempty"`
	Options      []*Option      `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
}

// Instruction represents one installation step under a component or option.
type Instruction struct {
	GUID        string     `json:"guid,omitempty" yaml:"guid,omitempty" toml:"guid,omitempty"`
	Action      ActionKind `json:"action" yaml:"action" toml:"action"`
	Source      []string   `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty"` // paths, or Option GUIDs for ActionChoose
	Destination string     `json:"destination,omitempty" yaml:"destination,omitempty" toml:"destination,omitempty"`
	Arguments   string     `json:"arguments,omitempty" yaml:"arguments,omitempty" toml:"arguments,omitempty"`
	Overwrite   bool       `json:"overwrite,omitempty" yaml:"overwrite,omitempty" toml:"overwrite,omitempty"`

	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty" toml:"dependencies,omitempty"`
	Restrictions []string `json:"restrictions,omitempty" yaml:"restrictions,omitempty" toml:"restrictions,omitempty"`
}

// Option represents a selectable sub-variant of a component with its own
// nested installation instructions.
type Option struct {
	GUID        string `json:"guid,omitempty" yaml:"guid,omitempty" toml:"guid,omitempty"`
	Name        string `json:"name" yaml:"name" toml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	IsSelected  bool   `json:"is_selected,omitempty" yaml:"is_selected,omitempty" toml:"is_selected,omitempty"`

	Restrictions []string `json:"restrictions,omitempty" yaml:"restrictions,omitempty" toml:"restrictions,omitempty"`
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty" toml:"dependencies,omitempty"`

	Instructions []*Instruction `json:"instructions,omitempty" yaml:"instructions,omitempty" toml:"instructions,omitempty"`
}

// HasGUID reports whether the component carries a non-empty GUID.
func (c *Component) HasGUID() bool {
	return strings.TrimSpace(c.GUID) != ""
}

// FirstLink returns the first URL in the component's link map in
// deterministic (sorted) order, or "" when the map is empty.
func (c *Component) FirstLink() string {
	var first string
	for url := range c.Links {
		if first == "" || url < first {
			first = url
		}
	}
	return first
}

// URLs returns the component's link-map URLs in insertion-independent
// deterministic order.
func (c *Component) URLs() []string {
	urls := make([]string, 0, len(c.Links))
	for url := range c.Links {
		urls = append(urls, url)
	}
	sort.Strings(urls)
	return urls
}

// Key returns the structural dedup key for an instruction:
// (Action, Destination), case-insensitive.
func (in *Instruction) Key() string {
	return strings.ToLower(in.Action.String()) + "\x00" + strings.ToLower(strings.TrimSpace(in.Destination))
}

// Key returns the structural dedup key for an option: its Name trimmed and
// lower-cased.
func (o *Option) Key() string {
	return strings.ToLower(strings.TrimSpace(o.Name))
}
