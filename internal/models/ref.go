package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ref is a document identifier. Store-generated documents carry an ObjectID;
// legacy documents carry an arbitrary string key in the same _id field, so a
// Ref is one or the other, never both.
type Ref struct {
	oid primitive.ObjectID
	raw string
}

// ParseRef interprets a caller-supplied identifier. A valid 24-character hex
// string becomes a structured reference; anything else is kept as a raw key.
func ParseRef(s string) Ref {
	if oid, err := primitive.ObjectIDFromHex(s); err == nil {
		return Ref{oid: oid}
	}
	return Ref{raw: s}
}

// RefFromObjectID wraps a store-assigned ObjectID.
func RefFromObjectID(oid primitive.ObjectID) Ref {
	return Ref{oid: oid}
}

// Structured reports whether the reference is an ObjectID.
func (r Ref) Structured() bool { return r.raw == "" }

// ObjectID returns the structured form, if any.
func (r Ref) ObjectID() (primitive.ObjectID, bool) {
	if r.raw != "" {
		return primitive.NilObjectID, false
	}
	return r.oid, true
}

// Value returns the form usable in a store filter.
func (r Ref) Value() any {
	if r.raw != "" {
		return r.raw
	}
	return r.oid
}

func (r Ref) String() string {
	if r.raw != "" {
		return r.raw
	}
	return r.oid.Hex()
}

func (r Ref) IsZero() bool {
	return r.raw == "" && r.oid.IsZero()
}

func (r Ref) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if r.raw != "" {
		return bson.MarshalValue(r.raw)
	}
	return bson.MarshalValue(r.oid)
}

func (r *Ref) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeObjectID:
		return rv.Unmarshal(&r.oid)
	case bson.TypeString:
		return rv.Unmarshal(&r.raw)
	default:
		return fmt.Errorf("unsupported _id type %s", t)
	}
}

// MarshalJSON renders the reference the way clients expect ids: as a string.
func (r Ref) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("ref must be a JSON string")
	}
	*r = ParseRef(string(data[1 : len(data)-1]))
	return nil
}
