// Package errors provides the coded errors used across the dungeon-gains
// service layers.
//
// Engine packages never return errors for gameplay preconditions; they
// no-op instead. Errors from this package describe service faults: unknown
// players, malformed requests, and storage failures.
//
// Creating errors:
//
//	err := errors.NotFoundf("game state for user %s not found", userID)
//	err := errors.InvalidArgument("character name is required")
//
// Adding metadata:
//
//	err := errors.NotFound("game state not found").
//	    WithMeta("user_id", userID)
//
// Wrapping keeps the original code:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save game state")
//	}
//
// Handlers convert at the transport boundary:
//
//	return nil, errors.ToGRPCError(err)
//
// Metadata is carried as a google.protobuf.Struct status detail and restored
// by FromGRPCError on the client side.
package errors
