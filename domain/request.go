// Package domain defines core value types for the generator.
package domain

// Format is the text encoding applied to generated key bytes
type Format string

const (
	// FormatHex renders two lowercase hex digits per byte
	FormatHex Format = "hex"
	// FormatBase64 renders standard padded base64 (RFC 4648 section 4)
	FormatBase64 Format = "base64"
)

// KeyRequest describes a single key generation run. When Preset is set it
// overrides Length with the preset's fixed byte count.
type KeyRequest struct {
	Length int
	Format Format
	Preset string
}

// UUIDRequest describes a single UUID generation run. Namespace and Name are
// only meaningful for v3/v5 and are nil when their flags were not provided.
type UUIDRequest struct {
	Version   string
	Namespace *string
	Name      *string
}
