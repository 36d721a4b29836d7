// Package cashlog provides the types and operations for keeping a personal
// income and expense ledger. It is designed to be local-first and auditable:
// the whole ledger lives in a single human-readable text file under the
// user's control.
//
// The core functionalities include:
//   - Ledger Store: an ordered sequence of income/expense records with
//     aggregation (totals, net savings, per-category spending) and sorting,
//     always computed fresh from the sequence itself.
//   - Data Persistence: encoding and decoding of the ledger to and from a
//     line-oriented, '|'-delimited text format that round-trips exactly.
//
// This package serves as the foundational logic for the `csl` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package cashlog
