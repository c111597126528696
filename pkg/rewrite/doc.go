// Package rewrite re-roots a generated automake fragment under a
// subdirectory.
//
// A fragment such as lib/Makefile.am lists sources relative to its own
// directory. To include it from the top-level Makefile.am of a project that
// uses subdir-objects, every relative file reference has to gain the "lib/"
// prefix, per-library flags have to be scoped to the library, and variables
// that the parent may also set have to accumulate instead of overwrite.
//
// [Transform] applies the whole rule set. The individual steps
// ([Classify], [PrefixWord], [PrefixWords], [RewriteAssignment]) are exported
// so they can be tested and reused on their own.
//
// The rules rely on the regular shape of generated fragments. They are not
// idempotent: running [Transform] twice prefixes paths twice.
package rewrite
