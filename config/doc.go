// Package config loads configuration documents once and exposes typed,
// path-addressable lookups with fluent validation helpers.
//
// The package uses an interface-based design with four extension points:
//   - Parser: turns raw bytes into a generic value tree (maps, slices, scalars)
//   - Source: checks, canonicalizes and reads configuration files
//   - Validator: validates a decoded config struct
//   - Defaulter: applies default values before validation
//
// # Store
//
// A Store caches parsed trees by canonical (absolute, symlink-resolved) path.
// Open parses a file at most once per Store; failures are never cached, so a
// later Open retries. Load always re-reads and re-parses and leaves the cache
// untouched. Share one Store across a process to get parse-once semantics;
// construct one per test to get isolation.
//
//	store := config.NewStore()
//	cfg, err := store.Open("config.yml")
//	if err != nil {
//	    return err // *FileError or *ParseError
//	}
//
// # Keys
//
// Keys address nested mappings with dots ("application.releaseStage") or an
// explicit Key ([]string{"application", "releaseStage"}); both resolve to the
// same value. Dots cannot be escaped. Sequences and scalars cannot be
// descended into.
//
// Get returns the fallback when a key is missing or holds null; the two cases
// are deliberately indistinguishable:
//
//	stage := cfg.Get("application.releaseStage", "Production")
//
// # Evaluation
//
// Evaluate binds a key and starts an assertion chain. The first violation is
// kept and the rest of the chain is skipped:
//
//	err := cfg.Evaluate("application.releaseStage").
//	    IsRequired().
//	    IsString().
//	    IsOneOf("Production", "Staging", "Test").
//	    Err()
//
// Every assertion is enforced, whether or not IsRequired ran first. Violations
// are *ViolationError values wrapping ErrRequired, ErrType or ErrNotAllowed.
// Assertions on a session that was never bound report ErrNoEvaluationKey.
package config
