package utils

import (
    "crypto/rand"
    "fmt"
    "math/big"
    "strconv"
    "strings"
    "time"
)

// NewBookingReference generates a booking reference of the form
// "BK-<timestamp36>-<random36>", upper-cased.  References are shown to
// users and printed on tickets, so they stay short and unambiguous
// rather than being UUIDs.
func NewBookingReference() (string, error) {
    ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
    n, err := rand.Int(rand.Reader, big.NewInt(36*36*36*36*36*36)) // six base-36 digits
    if err != nil {
        return "", err
    }
    suffix := strconv.FormatInt(n.Int64(), 36)
    for len(suffix) < 6 {
        suffix = "0" + suffix
    }
    return strings.ToUpper(fmt.Sprintf("BK-%s-%s", ts, suffix)), nil
}
