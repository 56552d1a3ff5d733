// Package roll20 reads the chat archive page roll20 exports. The page
// embeds every message as base64 encoded JSON on a single line:
//
//	var msgdata = "W3siLU0x...";
package roll20

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

const msgDataMarker = `var msgdata = "`

// Roll20Error is a custom error type for export decoding errors
type Roll20Error string

// Error implements the error interface
func (e Roll20Error) Error() string {
	return string(e)
}

const (
	ErrDataNotFound     Roll20Error = "message data not found in export"
	ErrDecodeContainer  Roll20Error = "failed to decode message data"
	ErrUnterminatedData Roll20Error = "message data is not terminated"
)

// DecodeExport scans an exported chat archive for the embedded message data
// and decodes it into pages
func DecodeExport(r io.Reader) ([]Page, error) {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if idx := strings.Index(line, msgDataMarker); idx != -1 {
			return decodeMessageData(line[idx+len(msgDataMarker):])
		}
		if errors.Is(err, io.EOF) {
			return nil, ErrDataNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read export: %w", err)
		}
	}
}

func decodeMessageData(rest string) ([]Page, error) {
	end := strings.IndexByte(rest, '"')
	if end == -1 {
		return nil, ErrUnterminatedData
	}

	raw, err := base64.StdEncoding.DecodeString(rest[:end])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeContainer, err)
	}

	return DecodePages(raw)
}

// DecodePages decodes the JSON list of message pages
func DecodePages(data []byte) ([]Page, error) {
	var pages []Page
	if err := json.Unmarshal(data, &pages); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeContainer, err)
	}
	return pages, nil
}
