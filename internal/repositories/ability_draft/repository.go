// Package abilitydraft stores in-progress ability score steps of character builds
package abilitydraft

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=abilitydraftmock github.com/KirkDiggler/rpg-sheet/internal/repositories/ability_draft Repository

// CreateInput contains a new draft. ID, PlayerID and Method must be set;
// timestamps are assigned by the repository.
type CreateInput struct {
	Draft *dnd5e.AbilityDraft
}

// CreateOutput contains the stored draft
type CreateOutput struct {
	Draft *dnd5e.AbilityDraft
}

// GetInput identifies a draft
type GetInput struct {
	ID string
}

// GetOutput contains the draft
type GetOutput struct {
	Draft *dnd5e.AbilityDraft
}

// UpdateInput contains the new draft state
type UpdateInput struct {
	Draft *dnd5e.AbilityDraft
}

// UpdateOutput contains the stored draft
type UpdateOutput struct {
	Draft *dnd5e.AbilityDraft
}

// DeleteInput identifies a draft
type DeleteInput struct {
	ID string
}

// DeleteOutput is empty
type DeleteOutput struct{}

// Repository defines storage for ability drafts. Drafts expire a fixed
// time after creation; updates never extend the lifetime.
type Repository interface {
	// Create stores a new draft
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a draft. Expired drafts are reported as not found.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces the method and scores of an existing draft
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a draft
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
