package inference

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format returned from inference provider")
	ErrEmptyImage        = errors.New("inference provider returned an empty image")
)

// Reply is the image payload of a provider response. It is one of Blob,
// Base64 or Buffer.
type Reply interface {
	isReply()
}

// Blob is a payload that still has to be read in full.
type Blob struct {
	io.Reader
}

// Base64 is a base64 encoded payload, optionally as a data URL.
type Base64 string

// Buffer is a payload already held in memory.
type Buffer []byte

func (Blob) isReply()   {}
func (Base64) isReply() {}
func (Buffer) isReply() {}

// Classify maps a raw provider value onto a Reply. Capabilities are checked in
// a fixed order: readers first, then strings, then byte buffers. A
// *bytes.Buffer satisfies both the reader and the buffer check and is
// therefore treated as a Blob.
func Classify(v any) (Reply, error) {
	switch r := v.(type) {
	case Reply:
		return r, nil
	case io.Reader:
		return Blob{Reader: r}, nil
	case string:
		return Base64(r), nil
	case []byte:
		return Buffer(r), nil
	case interface{ Bytes() []byte }:
		return Buffer(r.Bytes()), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedFormat, v)
}

// Normalize returns the image bytes carried by reply.
func Normalize(reply Reply) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch r := reply.(type) {
	case Blob:
		if r.Reader == nil {
			return nil, ErrEmptyImage
		}
		data, err = io.ReadAll(r.Reader)
		if err != nil {
			return nil, fmt.Errorf("failed to read image body: %w", err)
		}
	case Base64:
		data, err = decodeBase64(string(r))
		if err != nil {
			return nil, err
		}
	case Buffer:
		data = bytes.Clone(r)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedFormat, reply)
	}

	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	return data, nil
}

func decodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		if idx := strings.Index(s, ","); idx != -1 {
			s = s[idx+1:]
		}
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}
	data, rawErr := base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
	if rawErr == nil {
		return data, nil
	}
	return nil, fmt.Errorf("failed to decode base64 image: %w", err)
}
