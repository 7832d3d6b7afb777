package main

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/btseee/mn-translit/internal/mncase"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeInput converts raw stdin bytes to UTF-8. An explicit charset wins;
// otherwise valid UTF-8 is used as is and anything else goes through
// charset detection. Undecodable bytes become U+FFFD.
func decodeInput(data []byte, charset string, logger *zap.Logger) (string, error) {
	if charset != "" {
		enc := lookupEncoding(charset)
		if enc == nil {
			return "", fmt.Errorf("unsupported encoding %q", charset)
		}
		out, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("decode %s input: %w", charset, err)
		}
		return string(out), nil
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}

	if r, err := chardet.NewTextDetector().DetectBest(data); err == nil {
		if enc := lookupEncoding(r.Charset); enc != nil {
			if out, err := enc.NewDecoder().Bytes(data); err == nil && utf8.Valid(out) {
				logger.Debug("decoded input",
					zap.String("charset", r.Charset),
					zap.Int("confidence", r.Confidence))
				return string(out), nil
			}
		}
	}

	logger.Warn("input is not valid UTF-8, replacing invalid bytes")
	return mncase.Sanitize(string(data)), nil
}

// lookupEncoding maps charset names to the encodings Mongolian text is
// commonly stored in. Returns nil for unknown names.
func lookupEncoding(charset string) encoding.Encoding {
	switch strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(charset, "-", ""), "_", "")) {
	case "utf8":
		return unicode.UTF8
	case "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case "utf16be", "utf16":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case "windows1251", "cp1251":
		return charmap.Windows1251
	case "koi8r":
		return charmap.KOI8R
	case "iso88595":
		return charmap.ISO8859_5
	case "ibm866", "cp866":
		return charmap.CodePage866
	case "maccyrillic", "xmaccyrillic":
		return charmap.MacintoshCyrillic
	case "windows1252", "cp1252":
		return charmap.Windows1252
	case "iso88591", "latin1":
		return charmap.ISO8859_1
	default:
		return nil
	}
}
