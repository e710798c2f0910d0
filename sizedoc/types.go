package sizedoc

import (
	"errors"
	"path/filepath"
	"strings"
)

var (
	ErrUnknownFormat = errors.New("sizedoc: unknown document format")
	ErrDecode        = errors.New("sizedoc: document could not be decoded")
	ErrEncode        = errors.New("sizedoc: document could not be encoded")
	ErrDocument      = errors.New("sizedoc: invalid size document")
)

type Format string

const (
	FormatCBOR Format = "cbor"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cbor":
		return FormatCBOR, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", ErrUnknownFormat
	}
}
