// Package worldgen wires the blobgraph packages into one deterministic
// pipeline: sample sites, tessellate, split land from water with a noise
// field, paint seed colours, build regions and condition them.
//
// What:
//
//   - Config / DefaultConfig / Validate: every knob in one value.
//   - SeedColours: nearest-seed colouring for water, the raw input the
//     conditioner repairs; land colours grown as connected patches.
//   - Generate: the full run, ending with a structural check of the world.
//
// Errors:
//
//   - ErrInvalidConfig for out-of-range Config fields.
//   - ErrNilGraph from SeedColours.
//   - Stage errors are wrapped with the stage name; palette exhaustion and
//     context cancellation keep their sentinels (errors.Is works).
package worldgen
