package protobuf

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lehigh-university-libraries/marcwalk/format"
	"github.com/lehigh-university-libraries/marcwalk/hub"
	"github.com/lehigh-university-libraries/marcwalk/mapping"
)

func sampleRecords() []hub.Record {
	b := hub.NewBibliographic()
	b.ID = "131381679"
	b.Title = "Evolusjon"
	b.Year = 2011

	a := hub.NewAuthority()
	a.ID = "x90061718"
	a.Label = "Dagfinn Bakke"

	return []hub.Record{b, a}
}

func TestSerializeDelimited(t *testing.T) {
	var buf bytes.Buffer
	if err := (&Format{}).Serialize(&buf, sampleRecords(), nil); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	r := bufio.NewReader(&buf)
	var got []*structpb.Struct
	for {
		msg := &structpb.Struct{}
		err := protodelim.UnmarshalFrom(r, msg)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("UnmarshalFrom failed: %v", err)
		}
		got = append(got, msg)
	}

	if len(got) != 2 {
		t.Fatalf("got %d messages, want 2", len(got))
	}
	if kind := got[0].Fields["kind"].GetStringValue(); kind != "bibliographic" {
		t.Errorf("kind = %q, want bibliographic", kind)
	}
	record := got[0].Fields["record"].GetStructValue()
	if year := record.Fields["year"].GetNumberValue(); year != 2011 {
		t.Errorf("year = %v, want 2011", year)
	}
	if label := got[1].Fields["record"].GetStructValue().Fields["label"].GetStringValue(); label != "Dagfinn Bakke" {
		t.Errorf("label = %q", label)
	}
}

func TestSerializeProtoJSON(t *testing.T) {
	opts := format.NewSerializeOptions()
	opts.Profile = &mapping.Profile{Fields: []string{"id"}}

	var buf bytes.Buffer
	if err := (&JSONFormat{}).Serialize(&buf, sampleRecords(), opts); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	msg := &structpb.Struct{}
	if err := protojson.Unmarshal([]byte(lines[1]), msg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	record := msg.Fields["record"].GetStructValue()
	if len(record.Fields) != 1 || record.Fields["id"].GetStringValue() != "x90061718" {
		t.Errorf("record = %v, want only id", record)
	}
}

func TestEnvelopeKeepsEmptyCollections(t *testing.T) {
	msg, err := Envelope(sampleRecords()[0], nil)
	if err != nil {
		t.Fatalf("Envelope failed: %v", err)
	}
	record := msg.Fields["record"].GetStructValue()
	creators, ok := record.Fields["creators"].GetKind().(*structpb.Value_ListValue)
	if !ok || len(creators.ListValue.Values) != 0 {
		t.Errorf("creators = %v, want empty list", record.Fields["creators"])
	}
}
