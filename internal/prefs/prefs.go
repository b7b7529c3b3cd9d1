// Package prefs persists the user's presentation preferences.
package prefs

import (
	"context"

	"github.com/subculture-collective/subcvlt/internal/repository"
)

// EffectLevel controls how much visual noise the UI layers on.
type EffectLevel string

const (
	EffectsClean EffectLevel = "clean"
	EffectsMild  EffectLevel = "mild"
	EffectsFull  EffectLevel = "full"
)

// Prefs reads and writes preference flags. Reads degrade to defaults when
// the store is unavailable; preferences are never worth an error.
type Prefs struct {
	store repository.StateStore
}

func New(store repository.StateStore) *Prefs {
	return &Prefs{store: store}
}

// Effects returns the stored effect level, defaulting to full.
func (p *Prefs) Effects(ctx context.Context) EffectLevel {
	v, err := p.store.Get(ctx, repository.KeyEffects)
	if err != nil {
		return EffectsFull
	}
	switch level := EffectLevel(v); level {
	case EffectsClean, EffectsMild, EffectsFull:
		return level
	}
	return EffectsFull
}

// SetEffects stores the effect level. Best-effort.
func (p *Prefs) SetEffects(ctx context.Context, level EffectLevel) {
	_ = p.store.Set(ctx, repository.KeyEffects, string(level))
}

// HighContrast returns the stored contrast flag, defaulting to normal.
func (p *Prefs) HighContrast(ctx context.Context) bool {
	v, err := p.store.Get(ctx, repository.KeyContrast)
	return err == nil && v == "high"
}

// SetHighContrast stores the contrast flag. Best-effort.
func (p *Prefs) SetHighContrast(ctx context.Context, high bool) {
	value := "normal"
	if high {
		value = "high"
	}
	_ = p.store.Set(ctx, repository.KeyContrast, value)
}
