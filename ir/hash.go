package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainSpec is the domain prefix for spec fingerprints.
// The version suffix leaves room for algorithm migration.
const DomainSpec = "enumview/spec/v1"

// hashWithDomain computes SHA256(domain + 0x00 + data).
// The null byte separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint computes a content-addressed identity for an enum spec.
// Equal specs always produce equal fingerprints; any change to a name,
// value, order or metadata field produces a different one.
func Fingerprint(spec EnumSpec) (string, error) {
	members := make([]any, len(spec.Members))
	for i, m := range spec.Members {
		entry := map[string]any{"name": m.Name}
		if m.Value != nil {
			entry["value"] = m.Value
		}
		members[i] = entry
	}

	capabilities := spec.Capabilities
	if capabilities == nil {
		capabilities = []string{}
	}

	obj := map[string]any{
		"spec_version": SpecVersion,
		"name":         spec.Name,
		"namespace":    spec.Namespace,
		"parent":       spec.Parent,
		"backing":      string(spec.Backing),
		"capabilities": capabilities,
		"members":      members,
		"user_defined": spec.UserDefined,
	}

	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("Fingerprint: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainSpec, canonical), nil
}

// MustFingerprint is like Fingerprint but panics on error.
// Use only in tests or when the descriptor is known to be valid.
func MustFingerprint(spec EnumSpec) string {
	fp, err := Fingerprint(spec)
	if err != nil {
		panic(err)
	}
	return fp
}
