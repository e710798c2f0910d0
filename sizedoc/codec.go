package sizedoc

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// CBORCodec holds the encode and decode modes used for size documents.
// Encoding is canonical so the same document always yields the same bytes.
type CBORCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func NewCBORCodec() (CBORCodec, error) {
	enc, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return CBORCodec{}, err
	}
	dec, err := cbor.DecOptions{DupMapKey: cbor.DupMapKeyEnforcedAPF}.DecMode()
	if err != nil {
		return CBORCodec{}, err
	}
	return CBORCodec{enc: enc, dec: dec}, nil
}

func (c CBORCodec) Marshal(doc Document) ([]byte, error) {
	return c.enc.Marshal(doc)
}

func (c CBORCodec) Unmarshal(data []byte, doc *Document) error {
	return c.dec.Unmarshal(data, doc)
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode parses data in the given format and validates the result.
func Decode(data []byte, format Format) (Document, error) {
	var doc Document
	var err error

	switch format {
	case FormatCBOR:
		var codec CBORCodec
		if codec, err = NewCBORCodec(); err != nil {
			return Document{}, err
		}
		err = codec.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return Document{}, fmt.Errorf("%w: %s: %v", ErrDecode, format, err)
	}

	if err = doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func Encode(doc Document, format Format) ([]byte, error) {
	var data []byte
	var err error

	switch format {
	case FormatCBOR:
		var codec CBORCodec
		if codec, err = NewCBORCodec(); err != nil {
			return nil, err
		}
		data, err = codec.Marshal(doc)
	case FormatYAML:
		data, err = yaml.Marshal(doc)
	case FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrEncode, format, err)
	}
	return data, nil
}

// Load reads and decodes the document at path, taking the format from the
// file extension.
func Load(path string) (Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %s", err, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	doc, err := Decode(data, format)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Save encodes doc in the format implied by path and writes it there.
func Save(path string, doc Document) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("%w: %s", err, path)
	}
	data, err := Encode(doc, format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
