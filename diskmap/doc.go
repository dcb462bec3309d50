// Package diskmap compacts a run-length encoded disk and computes its checksum.
//
// The dense format alternates file and free-space lengths, one digit each:
// "12345" is a 1-unit file (ID 0), 2 free units, a 3-unit file (ID 1), 4 free
// units and a 5-unit file (ID 2). Expanding the runs gives one entry per unit,
// holding a file ID or Free.
//
// Two strategies are provided:
//
//   - Units moves single units from the tail into the leftmost free unit until
//     every file unit is left of every free unit.
//   - Files moves whole files, highest ID first, into the leftmost free span
//     before the file that can hold it. Files that fit nowhere stay put.
//
// Both preserve the number of units and the number of occupied units. The
// checksum is the sum of position × file ID over occupied units.
package diskmap
