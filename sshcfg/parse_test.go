package sshcfg

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
)

const workerBlock = `Host worker-001
  HostName 127.0.0.1
  User vagrant
  Port 2222
  UserKnownHostsFile /dev/null
  StrictHostKeyChecking no
  PasswordAuthentication no
  IdentityFile /home/user/.vagrant.d/insecure_private_key
  IdentitiesOnly yes
  LogLevel FATAL
`

func TestParse_SingleBlock(t *testing.T) {
	doc, err := Parse(context.Background(), workerBlock)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc) != 1 {
		t.Fatalf("expected 1 record, got %d", len(doc))
	}

	rec := doc[0]

	if rec.Host() != "worker-001" {
		t.Errorf("expected host worker-001, got %q", rec.Host())
	}

	port, ok := rec.Get(FieldPort)
	if !ok {
		t.Fatal("Port field missing")
	}

	if port.Kind() != KindNumber {
		t.Errorf("expected Port to be numeric, got kind %v", port.Kind())
	}

	if port.Number() != 2222 {
		t.Errorf("expected Port 2222, got %d", port.Number())
	}

	addr, ok := rec.Get(FieldHostName)
	if !ok {
		t.Fatal("HostName field missing")
	}

	if addr.Kind() != KindText || addr.Text() != "127.0.0.1" {
		t.Errorf("expected HostName 127.0.0.1, got %v", addr)
	}

	ident, _ := rec.Get("IdentityFile")
	if ident.Text() != "/home/user/.vagrant.d/insecure_private_key" {
		t.Errorf("unexpected IdentityFile: %q", ident.Text())
	}

	if rec.Len() != 10 {
		t.Errorf("expected 10 fields, got %d", rec.Len())
	}
}

func TestParse_FieldOrder(t *testing.T) {
	doc, err := Parse(context.Background(), workerBlock)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"Host", "HostName", "User", "Port",
		"UserKnownHostsFile", "StrictHostKeyChecking",
		"PasswordAuthentication", "IdentityFile",
		"IdentitiesOnly", "LogLevel",
	}

	var got []string
	for key := range doc[0].Fields() {
		got = append(got, key)
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(got))
	}

	for i, key := range want {
		if got[i] != key {
			t.Errorf("key %d: expected %q, got %q", i, key, got[i])
		}
	}
}

func TestParse_MultipleBlocks(t *testing.T) {
	input := `Host control-01
  HostName 192.168.100.10
  Port 2222

Host worker-001
  HostName 192.168.100.11
  Port 2200

Host worker-002
  HostName 192.168.100.12
  Port 2201
`

	doc, err := Parse(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"control-01", "worker-001", "worker-002"}

	hosts := doc.Hosts()
	if len(hosts) != len(want) {
		t.Fatalf("expected %d hosts, got %d", len(want), len(hosts))
	}

	for i, host := range want {
		if hosts[i] != host {
			t.Errorf("host %d: expected %q, got %q", i, host, hosts[i])
		}
	}

	rec, ok := doc.Lookup("worker-002")
	if !ok {
		t.Fatal("Lookup(worker-002) failed")
	}

	port, _ := rec.Get(FieldPort)
	if port.Number() != 2201 {
		t.Errorf("expected Port 2201, got %d", port.Number())
	}
}

func TestParse_TrailingNewlineOptional(t *testing.T) {
	terminated := "Host a\n  HostName 10.0.0.1\n  Port 22\n"
	unterminated := strings.TrimSuffix(terminated, "\n")

	docA, err := Parse(context.Background(), terminated)
	if err != nil {
		t.Fatalf("terminated input: %v", err)
	}

	docB, err := Parse(context.Background(), unterminated)
	if err != nil {
		t.Fatalf("unterminated input: %v", err)
	}

	if len(docA) != 1 || len(docB) != 1 {
		t.Fatalf("expected 1 record each, got %d and %d",
			len(docA), len(docB))
	}

	if docA[0].Len() != docB[0].Len() {
		t.Errorf("field counts differ: %d vs %d",
			docA[0].Len(), docB[0].Len())
	}

	portA, _ := docA[0].Get(FieldPort)
	portB, _ := docB[0].Get(FieldPort)

	if portA != portB {
		t.Errorf("Port values differ: %v vs %v", portA, portB)
	}
}

func TestParse_HeaderOnlyBlock(t *testing.T) {
	doc, err := Parse(context.Background(), "Host lonely\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc) != 1 {
		t.Fatalf("expected 1 record, got %d", len(doc))
	}

	if doc[0].Len() != 1 || doc[0].Host() != "lonely" {
		t.Errorf("expected single-field record for host lonely, got %v",
			doc[0].Native())
	}
}

func TestParse_DuplicateKeyOverwrites(t *testing.T) {
	input := "Host a\n  Port 2222\n  HostName 10.0.0.1\n  Port 2223\n"

	doc, err := Parse(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := doc[0]

	if rec.Len() != 3 {
		t.Fatalf("expected 3 fields, got %d", rec.Len())
	}

	port, _ := rec.Get(FieldPort)
	if port.Number() != 2223 {
		t.Errorf("expected last Port value 2223, got %d", port.Number())
	}

	// Overwriting keeps the position of the first occurrence.
	var keys []string
	for key := range rec.Fields() {
		keys = append(keys, key)
	}

	want := []string{"Host", "Port", "HostName"}
	for i, key := range want {
		if keys[i] != key {
			t.Errorf("key %d: expected %q, got %q", i, key, keys[i])
		}
	}
}

func TestParse_DigitValueTyping(t *testing.T) {
	tests := []struct {
		name  string
		input string
		key   string
		kind  Kind
	}{
		{
			name:  "digits under any key are numeric",
			input: "Host a\n  Timeout 30\n",
			key:   "Timeout",
			kind:  KindNumber,
		},
		{
			name:  "six digits fall back to text",
			input: "Host a\n  Count 123456\n",
			key:   "Count",
			kind:  KindText,
		},
		{
			name:  "mixed value is text",
			input: "Host a\n  Port 22a\n",
			key:   "Port",
			kind:  KindText,
		},
		{
			name:  "single digit is numeric",
			input: "Host a\n  Port 1\n",
			key:   "Port",
			kind:  KindNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			value, ok := doc[0].Get(tt.key)
			if !ok {
				t.Fatalf("field %q missing", tt.key)
			}

			if value.Kind() != tt.kind {
				t.Errorf("expected kind %v, got %v", tt.kind, value.Kind())
			}
		})
	}
}

func TestParse_TrailerDigitValueTyping(t *testing.T) {
	// A final line without a trailing newline gets the same typed/generic
	// treatment as an ordinary body line.
	tests := []struct {
		name  string
		input string
		key   string
		kind  Kind
	}{
		{
			name:  "digit-only trailer is numeric",
			input: "Host a\n  Port 2222",
			key:   "Port",
			kind:  KindNumber,
		},
		{
			name:  "six-digit trailer falls back to text",
			input: "Host a\n  Count 123456",
			key:   "Count",
			kind:  KindText,
		},
		{
			name:  "mixed trailer value is text",
			input: "Host a\n  Port 22a",
			key:   "Port",
			kind:  KindText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			value, ok := doc[0].Get(tt.key)
			if !ok {
				t.Fatalf("field %q missing", tt.key)
			}

			if value.Kind() != tt.kind {
				t.Errorf("expected kind %v, got %v", tt.kind, value.Kind())
			}

			// Terminating the same input must not change the value.
			terminated, err := Parse(context.Background(), tt.input+"\n")
			if err != nil {
				t.Fatalf("terminated input: %v", err)
			}

			if other, _ := terminated[0].Get(tt.key); other != value {
				t.Errorf("values differ with terminator: %v vs %v",
					other, value)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{
			name:  "empty input",
			input: "",
			line:  1,
		},
		{
			name:  "single-space indent",
			input: "Host a\n Port 2222\n",
			line:  2,
		},
		{
			name:  "header without host name",
			input: "Host\n",
			line:  2,
		},
		{
			name:  "non-alphabetic key",
			input: "123 a\n",
			line:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			if !errors.Is(err, ErrParse) {
				t.Errorf("expected ErrParse, got %v", err)
			}

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError in chain, got %T", err)
			}

			if perr.Line != tt.line {
				t.Errorf("expected failure at line %d, got %d (%v)",
					tt.line, perr.Line, perr)
			}

			if len(perr.Expected) == 0 {
				t.Error("expected terminal names missing from error")
			}
		})
	}
}

func TestParse_UnindentedLineStartsBlock(t *testing.T) {
	// An unindented key-value line is indistinguishable from a header, so it
	// starts a new block rather than failing the parse.
	doc, err := Parse(context.Background(), "Host a\nPort 2222\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc) != 2 {
		t.Fatalf("expected 2 records, got %d", len(doc))
	}

	if doc[0].Host() != "a" {
		t.Errorf("expected first host a, got %q", doc[0].Host())
	}

	// The second block's header key is Port, so it has no Host field.
	if doc[1].Host() != "" {
		t.Errorf("expected second record without Host, got %q", doc[1].Host())
	}

	if port, ok := doc[1].Get(FieldPort); !ok || port.Text() != "2222" {
		t.Errorf("expected Port header value 2222, got %v", port)
	}
}

func TestParseError_Format(t *testing.T) {
	_, err := Parse(context.Background(), "Host a\n Port 2222\n")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}

	msg := perr.Error()

	for _, want := range []string{
		"parse error at line 2, column 1",
		"2 |  Port 2222",
		"^",
		"expected:",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message missing %q:\n%s", want, msg)
		}
	}
}

func TestParseReader(t *testing.T) {
	doc, err := ParseReader(context.Background(), strings.NewReader(workerBlock))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc) != 1 || doc[0].Host() != "worker-001" {
		t.Errorf("unexpected document: %v", doc.Hosts())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestParseReader_ReadFailure(t *testing.T) {
	_, err := ParseReader(context.Background(), failingReader{})
	if !errors.Is(err, ErrReadInput) {
		t.Errorf("expected ErrReadInput, got %v", err)
	}
}

func TestReduce_CoercionFailureDropsField(t *testing.T) {
	const input = "Host a\n  Port 2222\n  HostName 10.0.0.1\n"

	m := &matcher{input: input}

	root, ok := m.match(ref(ruleDocument), 0)
	if !ok || root.end != len(input) {
		t.Fatal("fixture input failed to match grammar")
	}

	r := &reducer{
		input: input,
		coerce: func(string) (int, error) {
			return 0, strconv.ErrRange
		},
	}

	doc := r.document(context.Background(), root)

	rec := doc[0]
	if _, ok := rec.Get(FieldPort); ok {
		t.Error("expected uncoercible Port field to be dropped")
	}

	// The rest of the record survives.
	if rec.Host() != "a" {
		t.Errorf("expected host a, got %q", rec.Host())
	}

	if addr, ok := rec.Get(FieldHostName); !ok || addr.Text() != "10.0.0.1" {
		t.Errorf("expected HostName to survive, got %v", addr)
	}
}

func BenchmarkParse(b *testing.B) {
	input := strings.TrimSuffix(strings.Repeat(workerBlock+"\n", 16), "\n")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := Parse(context.Background(), input)
		if err != nil {
			b.Fatal(err)
		}
	}
}
