package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap_AllBindingsDefined(t *testing.T) {
	km := DefaultKeyMap()

	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Quit", km.Quit},
		{"Left", km.Left},
		{"Right", km.Right},
		{"Home", km.Home},
		{"End", km.End},
		{"Increment", km.Increment},
		{"Decrement", km.Decrement},
		{"Insert", km.Insert},
		{"Delete", km.Delete},
		{"Swap", km.Swap},
		{"ShiftLeft", km.ShiftLeft},
		{"ShiftRight", km.ShiftRight},
		{"SortAsc", km.SortAsc},
		{"SortDesc", km.SortDesc},
		{"Scale", km.Scale},
		{"Or", km.Or},
		{"Save", km.Save},
	}

	for _, b := range bindings {
		t.Run(b.name, func(t *testing.T) {
			if !b.binding.Enabled() {
				t.Errorf("expected %s binding to be enabled", b.name)
			}
			if len(b.binding.Keys()) == 0 {
				t.Errorf("expected %s binding to have at least one key", b.name)
			}
			if b.binding.Help().Desc == "" {
				t.Errorf("expected %s binding to have a help description", b.name)
			}
		})
	}
}

func TestDefaultKeyMap_QuitKeys(t *testing.T) {
	km := DefaultKeyMap()

	hasQ, hasCtrlC := false, false
	for _, k := range km.Quit.Keys() {
		switch k {
		case "q":
			hasQ = true
		case "ctrl+c":
			hasCtrlC = true
		}
	}
	if !hasQ {
		t.Error("expected Quit binding to include 'q'")
	}
	if !hasCtrlC {
		t.Error("expected Quit binding to include 'ctrl+c'")
	}
}

func TestDefaultKeyMap_NoDuplicateKeys(t *testing.T) {
	km := DefaultKeyMap()
	seen := make(map[string]string)
	for _, b := range append(km.ShortHelp(), km.Home, km.End) {
		for _, k := range b.Keys() {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %q and %q", k, prev, b.Help().Desc)
			}
			seen[k] = b.Help().Desc
		}
	}
}
