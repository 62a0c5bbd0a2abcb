package reconcile

import (
	"github.com/pmezard/go-difflib/difflib"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

// blockList runs the sequence-level diff of spec.md §4.B: structural
// elements are reduced to fingerprints and fed through an LCS sequence
// matcher, producing a block list of {equal | replace | insert | delete}
// spans. go-difflib's SequenceMatcher is the same Ratcliff/Obershelp-style
// LCS matcher Python's difflib uses, operating here over fingerprint
// strings rather than source lines.
func blockList(base, desired []*docmodel.StructuralElement) []difflib.OpCode {
	baseFp := fingerprints(base)
	desiredFp := fingerprints(desired)
	sm := difflib.NewMatcher(baseFp, desiredFp)
	return sm.GetOpCodes()
}

func fingerprints(elements []*docmodel.StructuralElement) []string {
	out := make([]string, len(elements))
	for i, e := range elements {
		out[i] = fingerprint(e)
	}
	return out
}
