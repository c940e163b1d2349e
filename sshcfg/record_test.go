package sshcfg

import (
	"encoding/json"
	"testing"
)

func TestRecord_SetGet(t *testing.T) {
	rec := NewRecord()

	rec.Set(FieldHost, Text("worker-001"))
	rec.Set(FieldPort, Number(2222))

	if rec.Len() != 2 {
		t.Fatalf("expected 2 fields, got %d", rec.Len())
	}

	host, ok := rec.Get(FieldHost)
	if !ok || host.Text() != "worker-001" {
		t.Errorf("expected Host worker-001, got %v", host)
	}

	if _, ok := rec.Get("Missing"); ok {
		t.Error("Get returned true for missing field")
	}

	// Overwrite keeps the original position.
	rec.Set(FieldHost, Text("worker-002"))

	if rec.Len() != 2 {
		t.Errorf("overwrite changed field count to %d", rec.Len())
	}

	var first string
	for key := range rec.Fields() {
		first = key

		break
	}

	if first != FieldHost {
		t.Errorf("expected Host to remain first, got %q", first)
	}

	if rec.Host() != "worker-002" {
		t.Errorf("expected overwritten host worker-002, got %q", rec.Host())
	}
}

func TestRecord_HostAbsent(t *testing.T) {
	rec := NewRecord()
	rec.Set(FieldPort, Number(22))

	if rec.Host() != "" {
		t.Errorf("expected empty host, got %q", rec.Host())
	}
}

func TestRecord_MarshalJSON_Order(t *testing.T) {
	rec := NewRecord()
	rec.Set(FieldHost, Text("worker-001"))
	rec.Set(FieldHostName, Text("127.0.0.1"))
	rec.Set(FieldPort, Number(2222))

	out, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"Host":"worker-001","HostName":"127.0.0.1","Port":2222}`
	if string(out) != want {
		t.Errorf("expected %s, got %s", want, out)
	}
}

func TestRecord_Native(t *testing.T) {
	rec := NewRecord()
	rec.Set(FieldHost, Text("a"))
	rec.Set(FieldPort, Number(22))

	m := rec.Native()

	if host, ok := m[FieldHost].(string); !ok || host != "a" {
		t.Errorf("expected native string host, got %#v", m[FieldHost])
	}

	if port, ok := m[FieldPort].(int); !ok || port != 22 {
		t.Errorf("expected native int port, got %#v", m[FieldPort])
	}
}

func TestValue_Kinds(t *testing.T) {
	text := Text("yes")
	if text.Kind() != KindText || text.Native() != "yes" {
		t.Errorf("unexpected text value: %v", text)
	}

	num := Number(2222)
	if num.Kind() != KindNumber || num.Native() != 2222 {
		t.Errorf("unexpected number value: %v", num)
	}

	if num.String() != "2222" {
		t.Errorf("expected string 2222, got %q", num.String())
	}
}

func TestValue_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(Text("no"))
	if err != nil || string(out) != `"no"` {
		t.Errorf(`expected "no", got %s (%v)`, out, err)
	}

	out, err = json.Marshal(Number(22))
	if err != nil || string(out) != "22" {
		t.Errorf("expected 22, got %s (%v)", out, err)
	}
}

func TestDocument_Lookup(t *testing.T) {
	doc := Document{
		func() *Record {
			r := NewRecord()
			r.Set(FieldHost, Text("a"))

			return r
		}(),
		func() *Record {
			r := NewRecord()
			r.Set(FieldHost, Text("b"))

			return r
		}(),
	}

	if _, ok := doc.Lookup("b"); !ok {
		t.Error("Lookup(b) failed")
	}

	if _, ok := doc.Lookup("c"); ok {
		t.Error("Lookup(c) should fail")
	}

	hosts := doc.Hosts()
	if len(hosts) != 2 || hosts[0] != "a" || hosts[1] != "b" {
		t.Errorf("unexpected hosts: %v", hosts)
	}
}
