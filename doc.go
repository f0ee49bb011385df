// Package stlot implements a lot ledger engine for tracking ownership of
// tradable assets purchased over time.
//
// A plain-text ledger file records deposits, withdrawals, buys and sells.
// Buys create lots: discrete, datable batches of shares whose acquisition
// price is kept so that cost basis and gain can be computed per batch. Sells
// consume lots through a tax-aware selection policy that prefers the lots
// with the smallest unrealized gain, approximating a minimal immediately
// realized taxable gain.
//
// The core functionalities include:
//   - Ledger Parsing: reading the line-oriented ledger format, collecting
//     non-fatal warnings for malformed lines instead of aborting the load.
//   - Lot Tracking: applying transactions to a portfolio of lots and a cash
//     balance, with sells resolved through tax-aware lot selection.
//   - Quote Caching: a process-owned cache in front of an external quote
//     source, populated lazily and refreshed explicitly.
//   - Aggregation: per-asset and portfolio-wide summaries (shares, cost
//     basis, value, daily change, gain) derived on demand from current lots
//     and cached quotes.
//
// This package serves as the foundational logic for the `st` command-line
// tool; all presentation layers consume its read-only snapshots.
package stlot
