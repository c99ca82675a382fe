// Package options defines the three orthogonal edit-policy axes
// (Mode, Restriction, Conversion), the Selector and LBKind and DriverKind
// discriminants, and a validated, immutable Config assembled via functional
// options — the same pattern as lvlath's builder.BuilderOption /
// core.GraphOption.
//
// Config mirrors the external CLI surface described by the solver's
// specification (mode/restriction/conversion/length/with_cycles/selector/
// lb/driver/k_min/k_max/all_solutions/threads) without parsing any CLI
// arguments itself — argument parsing remains an external concern.
package options
