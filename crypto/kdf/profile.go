package kdf

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Profile is a portable, named set of KDF cost parameters that can be
// agreed on out of band (e.g. a "low-power-device" preset) independently
// of any one container's embedded Params. It carries no salt or secret
// material.
type Profile struct {
	_ struct{} `cbor:",toarray"`

	MemoryKiB   uint32 `cbor:"1,keyasint"`
	Iterations  uint32 `cbor:"2,keyasint"`
	Parallelism uint8  `cbor:"3,keyasint"`
}

// ProfileFromParams converts Params into a portable Profile token source.
func ProfileFromParams(p Params) Profile {
	return Profile{
		MemoryKiB:   p.MemoryKiB,
		Iterations:  p.Iterations,
		Parallelism: p.Parallelism,
	}
}

// Params converts the profile back into Params usable by DeriveMaster.
func (p Profile) Params() Params {
	return Params{
		MemoryKiB:   p.MemoryKiB,
		Iterations:  p.Iterations,
		Parallelism: p.Parallelism,
	}
}

// Pack encodes the profile as a compact base64url(CBOR) token.
func (p Profile) Pack() (string, error) {
	payload, err := cbor.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("unable to serialize kdf profile: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(payload), nil
}

// maxProfileTokenLen bounds the decoded payload so a malicious token can't
// force an unbounded allocation.
const maxProfileTokenLen = 64

// DecodeProfile decodes a profile token produced by Profile.Pack.
func DecodeProfile(token string) (Profile, error) {
	if token == "" {
		return Profile{}, errors.New("kdf: empty profile token")
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Profile{}, fmt.Errorf("unable to decode kdf profile token: %w", err)
	}

	var p Profile
	if err := cbor.NewDecoder(io.LimitReader(bytes.NewReader(raw), maxProfileTokenLen)).Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("unable to decode kdf profile: %w", err)
	}
	return p, nil
}
