// Package protobuf provides serializer plugins that carry records as
// google.protobuf.Struct messages, either as size-delimited binary or as
// protojson lines.
//
// Each message is an envelope:
//
//	{"kind": "bibliographic", "record": {...}}
//
// where record is the record's JSON shape.
package protobuf

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lehigh-university-libraries/marcwalk/format"
	"github.com/lehigh-university-libraries/marcwalk/hub"
)

// Format writes size-delimited binary Struct messages.
type Format struct{}

// JSONFormat writes one protojson-encoded Struct per line.
type JSONFormat struct{}

var (
	_ format.Serializer = (*Format)(nil)
	_ format.Serializer = (*JSONFormat)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "protobuf"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Size-delimited google.protobuf.Struct messages"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"pb", "binpb"}
}

// CanParse always returns false; this format is output only.
func (f *Format) CanParse(peek []byte) bool {
	return false
}

// Serialize writes each record as a varint length followed by the message.
func (f *Format) Serialize(w io.Writer, records []hub.Record, opts *format.SerializeOptions) error {
	for i, r := range records {
		msg, err := Envelope(r, opts)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if _, err := protodelim.MarshalTo(w, msg); err != nil {
			return fmt.Errorf("writing record %d: %w", i, err)
		}
	}
	return nil
}

// Name returns the format identifier.
func (f *JSONFormat) Name() string {
	return "protojson"
}

// Description returns a human-readable format description.
func (f *JSONFormat) Description() string {
	return "google.protobuf.Struct messages in protojson, one per line"
}

// Extensions returns file extensions associated with this format.
func (f *JSONFormat) Extensions() []string {
	return nil
}

// CanParse always returns false; this format is output only.
func (f *JSONFormat) CanParse(peek []byte) bool {
	return false
}

// Serialize writes one protojson message per line.
func (f *JSONFormat) Serialize(w io.Writer, records []hub.Record, opts *format.SerializeOptions) error {
	marshal := protojson.MarshalOptions{}
	for i, r := range records {
		msg, err := Envelope(r, opts)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		data, err := marshal.Marshal(msg)
		if err != nil {
			return fmt.Errorf("encoding record %d: %w", i, err)
		}
		data = append(data, '\n')
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

// Envelope wraps a record's JSON shape, projected through the profile, in
// a Struct tagged with the record kind.
func Envelope(r hub.Record, opts *format.SerializeOptions) (*structpb.Struct, error) {
	m, err := opts.Project(r)
	if err != nil {
		return nil, err
	}
	record, err := structpb.NewStruct(m)
	if err != nil {
		return nil, fmt.Errorf("converting %s record: %w", r.Kind(), err)
	}
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			"kind":   structpb.NewStringValue(string(r.Kind())),
			"record": structpb.NewStructValue(record),
		},
	}, nil
}

func init() {
	format.Register(&Format{})
	format.Register(&JSONFormat{})
}
