package rummikub

import (
	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v4"
)

// Identifier names tiles, sets and players.
// It holds either a canonical UUID string or a short token; two identifiers are equal
// when their text is equal, so an Identifier can be used directly as a map key.
type Identifier struct {
	text string
}

// NewIdentifier returns a random UUID-backed identifier.
func NewIdentifier() Identifier {
	return FromUUID(uuid.New())
}

// NewShortIdentifier returns a random identifier in the short (base57) textual form.
func NewShortIdentifier() Identifier {
	return Identifier{text: shortuuid.New()}
}

// FromUUID wraps a UUID.
func FromUUID(u uuid.UUID) Identifier {
	return Identifier{text: u.String()}
}

// ParseIdentifier accepts either form as-is. No validation is done here;
// conversion errors surface from UUID().
func ParseIdentifier(text string) Identifier {
	return Identifier{text: text}
}

func (id Identifier) String() string {
	return id.text
}

// IsZero reports whether the identifier was never set.
func (id Identifier) IsZero() bool {
	return id.text == ""
}

// UUID converts the identifier back to a UUID, decoding the short form when needed.
func (id Identifier) UUID() (uuid.UUID, error) {
	if u, err := uuid.Parse(id.text); err == nil {
		return u, nil
	}
	return shortuuid.DefaultEncoder.Decode(id.text)
}

// Short returns the short textual form of a UUID-backed identifier.
// Identifiers that cannot be converted are returned unchanged.
func (id Identifier) Short() Identifier {
	u, err := uuid.Parse(id.text)
	if err != nil {
		return id
	}
	return Identifier{text: shortuuid.DefaultEncoder.Encode(u)}
}

func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.text), nil
}

func (id *Identifier) UnmarshalText(b []byte) error {
	id.text = string(b)
	return nil
}
