package components

import (
	"fmt"
	"strings"
)

// ActionKind identifies the operation an instruction performs. The set is
// closed: codecs reject unrecognized values instead of carrying free-form
// strings through the engine.
type ActionKind string

// String returns the string representation of an ActionKind.
func (a ActionKind) String() string {
	return string(a)
}

// Instruction action kinds.
const (
	ActionUnknown      ActionKind = ""             // zero value, never valid in a manifest
	ActionExtract      ActionKind = "extract"      // Extract an archive into the workspace
	ActionCopy         ActionKind = "copy"         // Copy files into the destination
	ActionMove         ActionKind = "move"         // Move files into the destination
	ActionRename       ActionKind = "rename"       // Rename a file in place
	ActionDelete       ActionKind = "delete"       // Delete files from the destination
	ActionDelDuplicate ActionKind = "delduplicate" // Delete duplicate files by extension
	ActionPatch        ActionKind = "patch"        // Run a patcher against the destination
	ActionExecute      ActionKind = "execute"      // Execute a bundled program or script
	ActionChoose       ActionKind = "choose"       // Let the user choose among option GUIDs in Source
)

// AllActions returns every valid action kind.
func AllActions() []ActionKind {
	return []ActionKind{
		ActionExtract, ActionCopy, ActionMove, ActionRename, ActionDelete,
		ActionDelDuplicate, ActionPatch, ActionExecute, ActionChoose,
	}
}

// IsValid reports whether the action kind is one of the closed set.
func (a ActionKind) IsValid() bool {
	switch a {
	case ActionExtract, ActionCopy, ActionMove, ActionRename, ActionDelete,
		ActionDelDuplicate, ActionPatch, ActionExecute, ActionChoose:
		return true
	default:
		return false
	}
}

// DefaultOverwrite returns the Overwrite default for the action kind.
// File-placement actions overwrite by default; destructive and tool-running
// actions do not take the flag into account and default to false.
func (a ActionKind) DefaultOverwrite() bool {
	switch a {
	case ActionCopy, ActionMove, ActionRename, ActionExtract:
		return true
	case ActionDelete, ActionDelDuplicate, ActionPatch, ActionExecute, ActionChoose, ActionUnknown:
		return false
	default:
		return false
	}
}

// TakesArguments reports whether the Arguments field is meaningful for the
// action kind.
func (a ActionKind) TakesArguments() bool {
	switch a {
	case ActionPatch, ActionExecute, ActionDelDuplicate:
		return true
	case ActionExtract, ActionCopy, ActionMove, ActionRename, ActionDelete, ActionChoose, ActionUnknown:
		return false
	default:
		return false
	}
}

// ParseActionKind parses a manifest action value, case-insensitively.
func ParseActionKind(s string) (ActionKind, error) {
	a := ActionKind(strings.ToLower(strings.TrimSpace(s)))
	if !a.IsValid() {
		return ActionUnknown, fmt.Errorf("unrecognized action kind %q", s)
	}
	return a, nil
}

// MarshalText implements encoding.TextMarshaler.
func (a ActionKind) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *ActionKind) UnmarshalText(text []byte) error {
	parsed, err := ParseActionKind(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
