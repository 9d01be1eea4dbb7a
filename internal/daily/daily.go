// internal/daily/daily.go
//
// Deterministic puzzle-of-the-day selection. Instances serving the same
// puzzle set and salt agree on the day's puzzle without any coordination.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"io"
	"time"
)

// DateKey returns the UTC calendar day as YYYY-MM-DD. It is both the HMAC
// input and the key shown to clients next to the daily puzzle.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// PuzzleIndex maps a date to a stable position in a set of setSize puzzles:
// HMAC-SHA256(salt, date key) reduced modulo the set size. Deployments with
// different salts walk their sets in unrelated orders.
func PuzzleIndex(date time.Time, salt string, setSize int) int {
	if setSize <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	_, _ = io.WriteString(mac, DateKey(date))

	// Fold the leading digest bytes into one integer; eight bytes keep the
	// modulo bias negligible for any realistic set size.
	var v uint64
	for _, b := range mac.Sum(nil)[:8] {
		v = v<<8 | uint64(b)
	}
	return int(v % uint64(setSize))
}
