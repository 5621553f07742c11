package docgen

import (
	"fmt"
	"strings"

	"github.com/buger/jsonparser"
)

// DescribeStructure summarizes the top-level shape of a payload: field names
// for objects, length and first item type for arrays, the type otherwise.
func DescribeStructure(data []byte) string {
	_, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return "Structure type: unknown"
	}

	switch dataType {
	case jsonparser.Object:
		var fields []string
		_ = jsonparser.ObjectEach(data, func(key, _ []byte, _ jsonparser.ValueType, _ int) error {
			fields = append(fields, string(key))
			return nil
		})
		return "Structure type: Object\nFields: " + strings.Join(fields, ", ")
	case jsonparser.Array:
		var (
			length    int
			firstType jsonparser.ValueType
		)
		_, _ = jsonparser.ArrayEach(data, func(_ []byte, t jsonparser.ValueType, _ int, _ error) {
			if length == 0 {
				firstType = t
			}
			length++
		})
		if length == 0 {
			return "Structure type: Array\nLength: 0"
		}
		return fmt.Sprintf("Structure type: Array\nLength: %d\nItem type: %s", length, typeName(firstType))
	}
	return "Structure type: " + typeName(dataType)
}

func typeName(t jsonparser.ValueType) string {
	switch t {
	case jsonparser.Object:
		return "object"
	case jsonparser.Array:
		return "array"
	case jsonparser.String:
		return "string"
	case jsonparser.Number:
		return "number"
	case jsonparser.Boolean:
		return "boolean"
	case jsonparser.Null:
		return "null"
	}
	return "unknown"
}
