// Package uuidgen builds RFC 4122 UUIDs for versions 1, 3, 4 and 5.
package uuidgen

import (
	"encoding/binary"
	"time"

	"github.com/google/uuid"

	"genrs/domain"
	"genrs/keygen"
)

// Version selects one of the four construction algorithms.
type Version string

const (
	V1 Version = "v1" // time-based
	V3 Version = "v3" // namespace + name, MD5
	V4 Version = "v4" // random
	V5 Version = "v5" // namespace + name, SHA-1
)

// gregorianOffset is the number of 100ns ticks between the UUID epoch
// (1582-10-15) and the Unix epoch (1970-01-01).
const gregorianOffset = 122192928000000000

// ParseVersion validates a version string from the command line.
func ParseVersion(s string) (Version, error) {
	switch s {
	case "v1":
		return V1, nil
	case "v3":
		return V3, nil
	case "v4":
		return V4, nil
	case "v5":
		return V5, nil
	default:
		return "", domain.NewUnsupportedUUIDVersionError(s)
	}
}

// ParseNamespace parses the namespace UUID text used by v3/v5 requests.
func ParseNamespace(s string) (uuid.UUID, error) {
	ns, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, domain.NewInvalidNamespaceError(s, err)
	}
	return ns, nil
}

// Generate builds a UUID for the request. v3/v5 are deterministic in
// (namespace, name); v1/v4 draw fresh randomness every call.
func Generate(req domain.UUIDRequest) (uuid.UUID, error) {
	version, err := ParseVersion(req.Version)
	if err != nil {
		return uuid.Nil, err
	}

	switch version {
	case V1:
		return newTimeBased()
	case V4:
		return newRandom()
	default: // V3, V5
		if req.Namespace == nil || req.Name == nil {
			return uuid.Nil, domain.NewMissingNamespaceOrNameError(string(version))
		}
		ns, err := ParseNamespace(*req.Namespace)
		if err != nil {
			return uuid.Nil, err
		}
		if version == V3 {
			return uuid.NewMD5(ns, []byte(*req.Name)), nil
		}
		return uuid.NewSHA1(ns, []byte(*req.Name)), nil
	}
}

// newTimeBased packs a v1 UUID from the current time, a random clock
// sequence and a random node id. Clock sequence and node are drawn fresh
// every call instead of being persisted; the node id carries the multicast
// bit that marks it as not an IEEE 802 address (RFC 4122 section 4.5).
func newTimeBased() (uuid.UUID, error) {
	ts := uint64(time.Now().UnixNano()/100) + gregorianOffset

	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], uint32(ts))     // time-low
	binary.BigEndian.PutUint16(u[4:6], uint16(ts>>32)) // time-mid
	binary.BigEndian.PutUint16(u[6:8], uint16(ts>>48)) // time-hi

	// clock-seq-hi, clock-seq-low and the 6 node bytes
	tail, err := keygen.RandomBytes(8)
	if err != nil {
		return uuid.Nil, err
	}
	copy(u[8:], tail)

	u[6] = (u[6] & 0x0f) | 0x10 // version 1
	u[8] = (u[8] & 0x3f) | 0x80 // variant is 10
	u[10] |= 0x01               // multicast bit: node id is random, not a MAC
	return u, nil
}

// newRandom packs a v4 UUID from 16 random bytes.
func newRandom() (uuid.UUID, error) {
	b, err := keygen.RandomBytes(16)
	if err != nil {
		return uuid.Nil, err
	}
	var u uuid.UUID
	copy(u[:], b)
	u[6] = (u[6] & 0x0f) | 0x40 // version 4
	u[8] = (u[8] & 0x3f) | 0x80 // variant is 10
	return u, nil
}
