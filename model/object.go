package model

// Object is an immutable record: a caller-assigned identity plus the
// encoded sparse vector it was constructed with.
//
// The buffer is produced once (by codec.Pack) and never mutated in place,
// so objects are safe for concurrent reads without synchronization.
type Object struct {
	id    ID
	label Label
	data  []byte
}

// NewObject wraps an encoded buffer in an Object. Ownership of data
// transfers to the object; the caller must not modify it afterwards.
func NewObject(id ID, label Label, data []byte) *Object {
	return &Object{id: id, label: label, data: data}
}

// ID returns the caller-assigned identifier.
func (o *Object) ID() ID { return o.id }

// Label returns the caller-assigned label.
func (o *Object) Label() Label { return o.label }

// Data returns the encoded vector buffer. Read-only: callers must not
// modify the returned slice.
func (o *Object) Data() []byte { return o.data }

// DataLen returns the encoded buffer length in bytes.
func (o *Object) DataLen() int { return len(o.data) }
