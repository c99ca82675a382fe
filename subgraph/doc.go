// Package subgraph defines the Subgraph value (an induced P_ℓ or C_ℓ as an
// ordered vertex sequence) and ConflictHelpers: the policy-driven iteration
// of "edges eligible for editing" over a Subgraph's vertex sequence, per
// the active Mode/Restriction/Conversion (options.Config).
package subgraph
