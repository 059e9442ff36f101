// Package character provides the interface for character sheet persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/rpg-sheet/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Repository stores validated character sheets. Sheets are saved as the
// sanitized document the engine produced; the repository never re-validates.
type Repository interface {
	// Create stores a new sheet and stamps its created and updated times
	// Returns errors.InvalidArgument for a nil sheet or empty ID
	// Returns errors.AlreadyExists if a sheet with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a sheet by ID
	// Returns errors.NotFound if the sheet doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing sheet, keeping its creation time
	// Returns errors.NotFound if the sheet doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a sheet and its player index entry
	// Returns errors.NotFound if the sheet doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByPlayerID retrieves every sheet owned by a player
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)
}

// CreateInput defines the input for creating a sheet
type CreateInput struct {
	Character *dnd5e.Character
}

// CreateOutput defines the output for creating a sheet
type CreateOutput struct {
	Character *dnd5e.Character
}

// GetInput defines the input for getting a sheet
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a sheet
type GetOutput struct {
	Character *dnd5e.Character
}

// UpdateInput defines the input for updating a sheet
type UpdateInput struct {
	Character *dnd5e.Character
}

// UpdateOutput defines the output for updating a sheet
type UpdateOutput struct {
	Character *dnd5e.Character
}

// DeleteInput defines the input for deleting a sheet
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a sheet
type DeleteOutput struct{}

// ListByPlayerIDInput defines the input for listing a player's sheets
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput contains the player's sheets ordered by ID
type ListByPlayerIDOutput struct {
	Characters []*dnd5e.Character
}
