// Package registry maps runner variants to game constructors. Variant
// packages register in init(); the CLI resolves names through it and the
// platform only ever sees the Game interface.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/voicerun/internal/config"
	"github.com/vovakirdan/voicerun/internal/core"
)

// Game is what the platform drives once per frame. Implementations hold no
// terminal or audio state; the platform owns timing, input and output.
type Game interface {
	// Variant identifies the rule set, also used for config file names.
	Variant() config.Variant

	// Title is the display name shown on the start screen.
	Title() string

	// Reset discards the current run and starts a new one.
	Reset(cfg core.RuntimeConfig)

	// Step simulates one frame from the actions, voice readings and
	// wall-clock duration collected since the previous frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	// State reports score, game over and pause.
	State() core.GameState
}

// Factory constructs a fresh game for one variant.
type Factory func() Game

// Entry describes a registered variant.
type Entry struct {
	Variant     config.Variant
	Title       string
	Description string // Rules summary from the variant's default config
}

type registration struct {
	Entry
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[config.Variant]registration)
)

// Register makes a variant available. Registering the same variant twice
// is a programming error and panics.
func Register(v config.Variant, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[v]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v))
	}
	entries[v] = registration{
		Entry: Entry{
			Variant:     v,
			Title:       f().Title(),
			Description: config.DefaultConfig(v).Summary(),
		},
		factory: f,
	}
}

// List returns every registered variant, sorted by name.
func List() []Entry {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Entry, 0, len(entries))
	for _, r := range entries {
		result = append(result, r.Entry)
	}
	slices.SortFunc(result, func(a, b Entry) int {
		return strings.Compare(string(a.Variant), string(b.Variant))
	})
	return result
}

// Resolve turns a CLI name into a registered variant.
func Resolve(name string) (config.Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, err := config.ParseVariant(name)
	if err != nil {
		return "", err
	}
	if _, ok := entries[v]; !ok {
		return "", fmt.Errorf("registry: variant %q is not registered", name)
	}
	return v, nil
}

// Create builds a new game for v.
func Create(v config.Variant) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	r, ok := entries[v]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", v)
	}
	return r.factory(), nil
}
