package sshcfg

import (
	"bytes"
	"encoding/json"
	"iter"
)

// Well-known field names populated by `vagrant ssh-config` output.
const (
	// FieldHost is the symbolic host name from a block's header line.
	FieldHost = "Host"
	// FieldHostName is the address the host is reachable at.
	FieldHostName = "HostName"
	// FieldPort is the SSH port, the one numerically typed field.
	FieldPort = "Port"
)

// Record is the reduced mapping of field name to value for one host block.
//
// Field names are unique: setting an existing field overwrites its value but
// keeps the position of its first occurrence, so iteration order is always
// first-occurrence order.
type Record struct {
	fields map[string]Value
	keys   []string
}

// NewRecord creates an empty Record.
func NewRecord() *Record {
	return &Record{fields: make(map[string]Value)}
}

// Set stores a field value. A later Set of the same key overwrites the
// value; the key's iteration position remains that of its first occurrence.
func (r *Record) Set(key string, value Value) {
	if _, ok := r.fields[key]; !ok {
		r.keys = append(r.keys, key)
	}

	r.fields[key] = value
}

// Get returns the value of a field and whether it is present.
func (r *Record) Get(key string) (Value, bool) {
	v, ok := r.fields[key]

	return v, ok
}

// Len returns the number of fields in the record.
func (r *Record) Len() int { return len(r.keys) }

// Fields returns an iterator over all fields in first-occurrence order.
func (r *Record) Fields() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, key := range r.keys {
			if !yield(key, r.fields[key]) {
				return
			}
		}
	}
}

// Host returns the record's Host field, or "" if absent.
func (r *Record) Host() string {
	v, _ := r.Get(FieldHost)

	return v.Text()
}

// Native returns the record as a map of native Go values. The map loses
// field order; use [Record.Fields] where order matters.
func (r *Record) Native() map[string]any {
	m := make(map[string]any, len(r.keys))
	for key, value := range r.Fields() {
		m[key] = value.Native()
	}

	return m
}

// MarshalJSON implements json.Marshaler, encoding the record as a JSON
// object whose members appear in first-occurrence order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(r.fields[key])
		if err != nil {
			return nil, err
		}

		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Document is the ordered sequence of host records produced by one parse
// call, in the order their blocks appear in the source text.
type Document []*Record

// Hosts returns the Host field of every record, in document order.
func (d Document) Hosts() []string {
	hosts := make([]string, len(d))
	for i, rec := range d {
		hosts[i] = rec.Host()
	}

	return hosts
}

// Lookup returns the record whose Host field equals name.
func (d Document) Lookup(name string) (*Record, bool) {
	for _, rec := range d {
		if rec.Host() == name {
			return rec, true
		}
	}

	return nil, false
}
