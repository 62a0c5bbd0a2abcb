package mock

import (
	"crypto/rand"
	"fmt"
)

// newKixID generates a server-assigned list id in the kix.* shape the real
// API uses for bullet lists (spec.md §8 equality relation excludes these
// from comparison, but the mock still needs something to assign).
func newKixID() string {
	return "kix." + randomToken()
}

// newSegmentID generates a t.* segment id for a newly created
// header/footer/footnote (spec.md §4.D createHeader/createFooter/
// createFootnote).
func newSegmentID() string {
	return "t." + randomToken()
}

func randomToken() string {
	var buf [8]byte
	_, _ = rand.Read(buf[:])
	return fmt.Sprintf("%x", buf)
}
