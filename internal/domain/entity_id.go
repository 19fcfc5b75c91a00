package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"
)

// IDKind discriminates the two identifier representations.
type IDKind uint8

const (
	// IDKindInt is a positive 64-bit integer identifier.
	IDKindInt IDKind = iota + 1
	// IDKindUUID is a canonical (lowercase, hyphenated) UUID identifier.
	IDKindUUID
)

// EntityID is a strongly typed unique identifier for a domain entity.
// It holds either a positive integer or a canonical UUID string.
//
// EntityID is an immutable, comparable value object: two identifiers built
// from the same value (including the same UUID in different letter cases)
// compare equal with ==. The zero value is invalid; construct through
// ParseEntityID, EntityIDFromInt, or EntityIDFromUUID.
type EntityID struct {
	kind IDKind
	num  int64
	str  string
}

// ParseEntityID creates an EntityID from a raw value.
//
// Integer coercion is attempted first: ints, integral float64 (as produced by
// JSON decoding), and decimal digit strings become integer identifiers.
// Anything else is treated as a UUID candidate and normalized to canonical
// lowercase form. Failures wrap ErrInvalidEntityID and preserve the cause.
func ParseEntityID(value any) (EntityID, error) {
	switch v := value.(type) {
	case EntityID:
		if v.kind == 0 {
			return EntityID{}, fmt.Errorf("%w: zero EntityID", ErrInvalidEntityID)
		}
		return v, nil
	case int:
		return EntityIDFromInt(int64(v))
	case int32:
		return EntityIDFromInt(int64(v))
	case int64:
		return EntityIDFromInt(v)
	case uint:
		return EntityIDFromInt(int64(v))
	case uint32:
		return EntityIDFromInt(int64(v))
	case uint64:
		if v > math.MaxInt64 {
			return EntityID{}, fmt.Errorf("%w: integer overflow: %d", ErrInvalidEntityID, v)
		}
		return EntityIDFromInt(int64(v))
	case float64:
		if math.Trunc(v) != v || math.IsInf(v, 0) || math.IsNaN(v) {
			return EntityID{}, fmt.Errorf("%w: non-integral number: %v", ErrInvalidEntityID, v)
		}
		return EntityIDFromInt(int64(v))
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return EntityIDFromInt(n)
		}
		return EntityIDFromUUID(v)
	case uuid.UUID:
		return EntityIDFromUUID(v.String())
	default:
		return EntityID{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidEntityID, value)
	}
}

// EntityIDFromInt creates an integer EntityID. The value must be positive.
func EntityIDFromInt(value int64) (EntityID, error) {
	if value <= 0 {
		return EntityID{}, fmt.Errorf("%w: must be a positive integer, got %d", ErrInvalidEntityID, value)
	}
	return EntityID{kind: IDKindInt, num: value}, nil
}

// EntityIDFromUUID creates a UUID EntityID. Uppercase hex is accepted and
// stored lowercased; any syntactically invalid UUID fails with the parser
// error preserved in the chain.
func EntityIDFromUUID(value string) (EntityID, error) {
	u, err := uuid.Parse(value)
	if err != nil {
		return EntityID{}, fmt.Errorf("%w: must be a valid UUID, got %q: %w", ErrInvalidEntityID, value, err)
	}
	return EntityID{kind: IDKindUUID, str: u.String()}, nil
}

// MustEntityID is ParseEntityID that panics on failure. For tests and wiring
// of compile-time-known identifiers only.
func MustEntityID(value any) EntityID {
	id, err := ParseEntityID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// Kind reports whether the identifier holds an integer or a UUID.
func (id EntityID) Kind() IDKind { return id.kind }

// IsZero reports whether the identifier was never initialized.
func (id EntityID) IsZero() bool { return id.kind == 0 }

// Value returns the raw identifier value: int64 or string.
func (id EntityID) Value() any {
	if id.kind == IDKindUUID {
		return id.str
	}
	return id.num
}

// Int returns the integer value, or ErrInvalidEntityID when the identifier
// holds a UUID.
func (id EntityID) Int() (int64, error) {
	if id.kind != IDKindInt {
		return 0, fmt.Errorf("%w: entity id is not an integer", ErrInvalidEntityID)
	}
	return id.num, nil
}

// UUID returns the canonical UUID string, or ErrInvalidEntityID when the
// identifier holds an integer.
func (id EntityID) UUID() (string, error) {
	if id.kind != IDKindUUID {
		return "", fmt.Errorf("%w: entity id is not a UUID", ErrInvalidEntityID)
	}
	return id.str, nil
}

// String renders the identifier for logs and storage keys: decimal digits for
// the integer kind, the canonical UUID otherwise.
func (id EntityID) String() string {
	if id.kind == IDKindUUID {
		return id.str
	}
	return strconv.FormatInt(id.num, 10)
}

// MarshalJSON encodes integer identifiers as JSON numbers and UUID
// identifiers as strings.
func (id EntityID) MarshalJSON() ([]byte, error) {
	if id.kind == 0 {
		return nil, fmt.Errorf("%w: cannot marshal zero EntityID", ErrInvalidEntityID)
	}
	return json.Marshal(id.Value())
}

// UnmarshalJSON decodes either representation via ParseEntityID.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseEntityID(raw)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
