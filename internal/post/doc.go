// Package post holds the pure naming and front matter rules shared by the
// lifecycle manager and its CLI tools: slug derivation, date-prefix handling,
// and the canonical draft template consumed by the external site generator.
package post
