// Package integrity provides health checks for the corpus infrastructure.
//
// # Checks Provided
//
//   - Structure: Checks that the maps/, monsters/ and items/ folders exist in the
//     storage bucket the corpus is published to.
//   - Schema: Validates that the relational backend has every column the item,
//     stat and drop queries read.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/schema : Runs relational schema check.
package integrity
