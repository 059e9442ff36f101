// Package errors provides structured errors for the rpg-sheet service layers.
//
// Rules validation of a character document never produces one of these errors; the engine
// reports document problems as plain messages in its result. These errors describe failures
// around the engine: bad requests, missing records, storage and transport problems.
//
// Creating errors:
//
//	err := errors.NotFound("character not found")
//	err := errors.InvalidArgumentf("invalid character id: %q", id)
//
// Adding metadata:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", charID)
//
// Wrapping errors keeps the code of an *Error cause:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get character")
//	}
//
// Accumulating field problems:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("playerID", input.PlayerID, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// The builder keeps messages in the order they were added, so callers that surface them
// (config validation, the engine's fail-slow validator) get a deterministic list.
package errors
