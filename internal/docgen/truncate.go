package docgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/buger/jsonparser"
)

const (
	truncateThreshold = 6000
	keepArrayItems    = 3
	keepObjectFields  = 10
)

// TruncateJSON bounds the size of a payload before it goes into a prompt.
// A value whose compact serialization exceeds the threshold is shrunk: arrays
// keep their first three items, objects their first ten fields plus a
// "..." entry counting the rest. Kept children are truncated the same way.
// Inputs at or under the threshold are returned as given. Sizes are counted
// in characters of the serialized text, see serializedLength.
func TruncateJSON(data []byte) ([]byte, error) {
	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return nil, fmt.Errorf("compacting payload: %w", err)
	}
	if serializedLength(compact.Bytes()) <= truncateThreshold {
		return data, nil
	}
	return truncateValue(compact.Bytes())
}

func truncateValue(value []byte) ([]byte, error) {
	if serializedLength(value) <= truncateThreshold {
		return value, nil
	}
	switch value[0] {
	case '[':
		return truncateArray(value)
	case '{':
		return truncateObject(value)
	}
	return value, nil
}

func truncateArray(value []byte) ([]byte, error) {
	var (
		out     bytes.Buffer
		kept    int
		walkErr error
	)
	out.WriteByte('[')
	_, err := jsonparser.ArrayEach(value, func(item []byte, dataType jsonparser.ValueType, _ int, _ error) {
		if kept >= keepArrayItems || walkErr != nil {
			return
		}
		truncated, err := truncateValue(raw(item, dataType))
		if err != nil {
			walkErr = err
			return
		}
		if kept > 0 {
			out.WriteByte(',')
		}
		out.Write(truncated)
		kept++
	})
	if err != nil {
		return nil, fmt.Errorf("walking array: %w", err)
	}
	if walkErr != nil {
		return nil, walkErr
	}
	out.WriteByte(']')
	return out.Bytes(), nil
}

func truncateObject(value []byte) ([]byte, error) {
	var (
		out   bytes.Buffer
		total int
	)
	out.WriteByte('{')
	err := jsonparser.ObjectEach(value, func(key, field []byte, dataType jsonparser.ValueType, _ int) error {
		total++
		if total > keepObjectFields {
			return nil
		}
		truncated, err := truncateValue(raw(field, dataType))
		if err != nil {
			return err
		}
		if total > 1 {
			out.WriteByte(',')
		}
		encodedKey, err := json.Marshal(string(key))
		if err != nil {
			return err
		}
		out.Write(encodedKey)
		out.WriteByte(':')
		out.Write(truncated)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking object: %w", err)
	}
	if omitted := total - keepObjectFields; omitted > 0 {
		out.WriteString(`,"...":`)
		out.WriteString(strconv.Quote(fmt.Sprintf("%d more fields", omitted)))
	}
	out.WriteByte('}')
	return out.Bytes(), nil
}

// raw restores the quotes jsonparser strips from string values. The content
// is still escaped, so the result is valid JSON.
func raw(value []byte, dataType jsonparser.ValueType) []byte {
	if dataType != jsonparser.String {
		return value
	}
	quoted := make([]byte, 0, len(value)+2)
	quoted = append(quoted, '"')
	quoted = append(quoted, value...)
	return append(quoted, '"')
}

// serializedLength counts UTF-16 code units of the canonical serialization of
// compact JSON, the unit prompt sizes are budgeted in. Escapes that the
// canonical form writes literally (\u00e4, \/) count as the single character
// they stand for; control characters keep their escaped width.
func serializedLength(b []byte) int {
	n := 0
	for i := 0; i < len(b); {
		if b[i] == '\\' && i+1 < len(b) {
			switch b[i+1] {
			case 'u':
				if i+6 <= len(b) {
					if code, err := strconv.ParseUint(string(b[i+2:i+6]), 16, 16); err == nil {
						n += escapedWidth(rune(code))
						i += 6
						continue
					}
				}
			case '/':
				n++
				i += 2
				continue
			}
			n += 2
			i += 2
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		n += utf16.RuneLen(r)
		i += size
	}
	return n
}

func escapedWidth(code rune) int {
	switch {
	case code == '\b', code == '\f', code == '\n', code == '\r', code == '\t',
		code == '"', code == '\\':
		return 2
	case code < 0x20:
		return 6
	}
	return 1
}
