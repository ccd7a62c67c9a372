// Package stocksim simulates a self-managed stock portfolio.
//
// A Portfolio holds a cash balance and an ordered list of Positions. Cash is
// deposited, invested into positions, and positions are held for a number of
// days during which their price follows a random walk:
//   - Each day the price moves uniformly within a band around itself whose
//     width is given by the position's risk tier (from 5% for tier 1 to 50%
//     for tier 5).
//   - The price never exceeds the position's market cap and never goes below
//     zero.
//   - The number of shares is fixed when the simulation starts, so the
//     invested value follows the price.
//
// Liquidating a position brings its worth back to the cash balance.
//
// Every mutation is validated and either commits or fails with one of the
// package errors (ErrNegativeValue, ErrSymbolFormat, ...) leaving the target
// unchanged. Randomness always comes from a rand.Source provided by the
// caller, see NewSource.
//
// Portfolios are persisted as a single JSON document, see Save and Load.
//
// This package serves as the foundational logic for the `pss` command-line
// tool.
package stocksim
