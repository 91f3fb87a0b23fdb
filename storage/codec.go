// SPDX-License-Identifier: MIT

package storage

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Type tags of encoded property values.
const (
	tagBool    byte = 0x01
	tagInt32   byte = 0x02
	tagInt64   byte = 0x03
	tagFloat32 byte = 0x04
	tagFloat64 byte = 0x05
	tagString  byte = 0x06
)

// payloadSize lists the fixed-width tags.
var payloadSize = map[byte]int{tagBool: 1, tagInt32: 4, tagInt64: 8, tagFloat32: 4, tagFloat64: 8}

// EncodeValue encodes a property value as tag byte + big-endian payload.
//
// Errors: ErrInvalidPropertyType for any type other than bool, int32,
// int64, float32, float64 and string.
func EncodeValue(v any) ([]byte, error) {
	switch x := v.(type) {
	case bool:
		if x {
			return []byte{tagBool, 1}, nil
		}
		return []byte{tagBool, 0}, nil
	case int32:
		return binary.BigEndian.AppendUint32([]byte{tagInt32}, uint32(x)), nil
	case int64:
		return binary.BigEndian.AppendUint64([]byte{tagInt64}, uint64(x)), nil
	case float32:
		return binary.BigEndian.AppendUint32([]byte{tagFloat32}, math.Float32bits(x)), nil
	case float64:
		return binary.BigEndian.AppendUint64([]byte{tagFloat64}, math.Float64bits(x)), nil
	case string:
		return append([]byte{tagString}, x...), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidPropertyType, v)
	}
}

// DecodeValue reverses EncodeValue.
//
// Errors: ErrCorruptRecord for an unknown tag or a short payload.
func DecodeValue(b []byte) (any, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty value", ErrCorruptRecord)
	}
	tag, p := b[0], b[1:]
	if n, fixed := payloadSize[tag]; fixed && len(p) != n {
		return nil, fmt.Errorf("%w: tag 0x%02x with %d payload bytes", ErrCorruptRecord, tag, len(p))
	}
	switch tag {
	case tagBool:
		return p[0] != 0, nil
	case tagInt32:
		return int32(binary.BigEndian.Uint32(p)), nil
	case tagInt64:
		return int64(binary.BigEndian.Uint64(p)), nil
	case tagFloat32:
		return math.Float32frombits(binary.BigEndian.Uint32(p)), nil
	case tagFloat64:
		return math.Float64frombits(binary.BigEndian.Uint64(p)), nil
	case tagString:
		return string(p), nil
	default:
		return nil, fmt.Errorf("%w: unknown tag 0x%02x", ErrCorruptRecord, tag)
	}
}
