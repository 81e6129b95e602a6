package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// KeyChangeType describes how a key differs between two configurations.
type KeyChangeType int

const (
	KeyChangeAdded KeyChangeType = iota
	KeyChangeRemoved
	KeyChangeModified
)

// KeyChange is one differing dotted key.
type KeyChange struct {
	Type     KeyChangeType
	Key      string
	OldValue string
	NewValue string
}

// Diff lists the keys whose values differ between from and to, sorted by key.
func Diff(from, to *Config) []KeyChange {
	if from == nil || to == nil {
		return nil
	}
	oldKeys := flatten(from)
	newKeys := flatten(to)

	var changes []KeyChange
	for key, newValue := range newKeys {
		oldValue, ok := oldKeys[key]
		switch {
		case !ok:
			changes = append(changes, KeyChange{Type: KeyChangeAdded, Key: key, NewValue: newValue})
		case oldValue != newValue:
			changes = append(changes, KeyChange{Type: KeyChangeModified, Key: key, OldValue: oldValue, NewValue: newValue})
		}
	}
	for key, oldValue := range oldKeys {
		if _, ok := newKeys[key]; !ok {
			changes = append(changes, KeyChange{Type: KeyChangeRemoved, Key: key, OldValue: oldValue})
		}
	}

	sort.Slice(changes, func(i, j int) bool { return changes[i].Key < changes[j].Key })
	return changes
}

// FormatChanges returns changes formatted as a diff for display.
func FormatChanges(changes []KeyChange) string {
	if len(changes) == 0 {
		return "No changes detected."
	}

	var sb strings.Builder
	for _, change := range changes {
		switch change.Type {
		case KeyChangeAdded:
			fmt.Fprintf(&sb, "  + %s = %s\n", change.Key, change.NewValue)
		case KeyChangeRemoved:
			fmt.Fprintf(&sb, "  - %s = %s\n", change.Key, change.OldValue)
		case KeyChangeModified:
			fmt.Fprintf(&sb, "  ~ %s: %s -> %s\n", change.Key, change.OldValue, change.NewValue)
		}
	}
	return sb.String()
}

// flatten maps dotted TOML keys to their rendered values.
func flatten(cfg *Config) map[string]string {
	out := make(map[string]string)

	data, err := toml.Marshal(cfg)
	if err != nil {
		return out
	}
	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		return out
	}

	var walk func(prefix string, node map[string]any)
	walk = func(prefix string, node map[string]any) {
		for k, v := range node {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			if child, ok := v.(map[string]any); ok {
				walk(key, child)
				continue
			}
			out[key] = fmt.Sprint(v)
		}
	}
	walk("", tree)
	return out
}
