// Package model defines the data structures shared by the cleanup pipeline.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// ErrInvalidPolicy is returned when a removal policy cannot be resolved.
var ErrInvalidPolicy = errors.New("invalid removal policy")

// ConsoleReceiver is the identifier whose method calls the call pruner removes.
const ConsoleReceiver = "console"

// ConsoleMethods is the full catalog of console methods known to the call pruner.
var ConsoleMethods = []string{
	"log", "error", "warn", "info", "debug",
	"trace", "dir", "dirxml", "table", "group",
	"groupCollapsed", "groupEnd", "clear", "count",
	"countReset", "assert", "profile", "profileEnd",
	"time", "timeLog", "timeEnd", "timeStamp",
}

// ConsoleMode selects how console calls are chosen for removal.
type ConsoleMode string

const (
	// ConsoleNone disables call removal.
	ConsoleNone ConsoleMode = "none"
	// ConsoleAll removes every catalogued console method.
	ConsoleAll ConsoleMode = "all"
	// ConsoleSet removes only the listed methods.
	ConsoleSet ConsoleMode = "set"
)

// ConsoleSelection is the "none" | "all" | set<string> removal selector.
type ConsoleSelection struct {
	Mode    ConsoleMode
	Methods []string
}

// ParseConsoleSelection accepts "none", "all" or a comma separated method list.
func ParseConsoleSelection(value string) ConsoleSelection {
	value = strings.TrimSpace(value)

	switch strings.ToLower(value) {
	case "", string(ConsoleNone):
		return ConsoleSelection{Mode: ConsoleNone}
	case string(ConsoleAll):
		return ConsoleSelection{Mode: ConsoleAll}
	}

	return ConsoleSelection{Mode: ConsoleSet, Methods: SplitList(value)}
}

// SplitList splits a comma separated list, trimming blanks.
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}

// String renders the selection the way it is written on the command line.
func (c ConsoleSelection) String() string {
	switch c.Mode {
	case ConsoleAll:
		return string(ConsoleAll)
	case ConsoleSet:
		return strings.Join(c.Methods, ",")
	default:
		return string(ConsoleNone)
	}
}

// MarshalJSON encodes the selection as "none", "all" or an array of names.
func (c ConsoleSelection) MarshalJSON() ([]byte, error) {
	if c.Mode == ConsoleSet {
		methods := c.Methods
		if methods == nil {
			methods = []string{}
		}

		return json.Marshal(methods)
	}

	if c.Mode == "" {
		return json.Marshal(string(ConsoleNone))
	}

	return json.Marshal(string(c.Mode))
}

// UnmarshalJSON decodes "none", "all" or an array of method names.
func (c *ConsoleSelection) UnmarshalJSON(data []byte) error {
	var methods []string
	if err := json.Unmarshal(data, &methods); err == nil {
		*c = ConsoleSelection{Mode: ConsoleSet, Methods: methods}
		return nil
	}

	var mode string
	if err := json.Unmarshal(data, &mode); err != nil {
		return fmt.Errorf("console selection: %w", err)
	}

	switch ConsoleMode(mode) {
	case ConsoleNone, ConsoleAll:
		*c = ConsoleSelection{Mode: ConsoleMode(mode)}
		return nil
	}

	return fmt.Errorf("%w: console remove must be \"none\", \"all\" or a list, got %q", ErrInvalidPolicy, mode)
}

// MarshalYAML mirrors MarshalJSON for YAML output.
func (c ConsoleSelection) MarshalYAML() (interface{}, error) {
	if c.Mode == ConsoleSet {
		return c.Methods, nil
	}

	if c.Mode == "" {
		return string(ConsoleNone), nil
	}

	return string(c.Mode), nil
}

// RemovalPolicy is the immutable configuration driving comment, call and emoji removal.
type RemovalPolicy struct {
	Comments        bool
	PreserveJSDoc   bool
	PreserveLicense bool
	Console         ConsoleSelection
	ConsoleExclude  []string
	Emojis          bool
}

// Validate rejects policies that cannot be resolved.
func (p RemovalPolicy) Validate() error {
	switch p.Console.Mode {
	case ConsoleNone, ConsoleAll, "":
	case ConsoleSet:
		if len(p.Console.Methods) == 0 {
			return fmt.Errorf("%w: console method list is empty", ErrInvalidPolicy)
		}
	default:
		return fmt.Errorf("%w: unknown console mode %q", ErrInvalidPolicy, p.Console.Mode)
	}

	for _, name := range append(slices.Clone(p.Console.Methods), p.ConsoleExclude...) {
		if !isIdentifier(name) {
			return fmt.Errorf("%w: %q is not a method name", ErrInvalidPolicy, name)
		}
	}

	for _, name := range p.Console.Methods {
		if !slices.Contains(ConsoleMethods, name) {
			return fmt.Errorf("%w: %q is not a console method", ErrInvalidPolicy, name)
		}
	}

	return nil
}

// RemovesCalls reports whether the call pruner has anything to do.
func (p RemovalPolicy) RemovesCalls() bool {
	return len(p.RemovalSet()) > 0
}

// NeedsTree reports whether any structural pass is enabled.
func (p RemovalPolicy) NeedsTree() bool {
	return p.Comments || p.RemovesCalls()
}

// KeepsComments reports whether surviving comments are rendered.
func (p RemovalPolicy) KeepsComments() bool {
	return !p.Comments || p.PreserveJSDoc || p.PreserveLicense
}

// RemovalSet resolves the effective set of console methods to remove: the
// catalog or the requested set intersected with it, minus the exclusions.
func (p RemovalPolicy) RemovalSet() map[string]struct{} {
	var candidates []string

	switch p.Console.Mode {
	case ConsoleAll:
		candidates = ConsoleMethods
	case ConsoleSet:
		candidates = p.Console.Methods
	default:
		return nil
	}

	set := make(map[string]struct{}, len(candidates))

	for _, name := range candidates {
		if !slices.Contains(ConsoleMethods, name) || slices.Contains(p.ConsoleExclude, name) {
			continue
		}

		set[name] = struct{}{}
	}

	return set
}

// Fingerprint returns a stable key identifying the policy's behaviour.
func (p RemovalPolicy) Fingerprint() string {
	methods := make([]string, 0)
	for name := range p.RemovalSet() {
		methods = append(methods, name)
	}

	sort.Strings(methods)

	return fmt.Sprintf("c=%t;j=%t;l=%t;e=%t;m=%s",
		p.Comments, p.PreserveJSDoc, p.PreserveLicense, p.Emojis, strings.Join(methods, ","))
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}
