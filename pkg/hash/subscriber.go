package hash

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// SubscriberHash returns the id Mailchimp derives for a list member:
// the hex MD5 of the lowercased address.
func SubscriberHash(email string) string {
	//nolint:gosec
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}
