// Package textutil provides small display helpers shared by CLI surfaces:
// grouped decimal counts, human-readable byte sizes, and a generic
// conditional.
package textutil
