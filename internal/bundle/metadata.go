package bundle

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"modelkit/pkg/types"
)

// Field numbers of the LLM parameters message stored in the METADATA entry.
const (
	fieldStartToken     protowire.Number = 4
	fieldStopTokens     protowire.Number = 5
	fieldNormalizations protowire.Number = 6
)

// normalizationBytesToUnicode is the enum value enabling byte-to-unicode mapping.
const normalizationBytesToUnicode = 1

// EncodeMetadata serializes the token configuration in protobuf wire format.
func EncodeMetadata(tc types.TokenConfig) []byte {
	var b []byte
	if tc.StartToken != "" {
		b = protowire.AppendTag(b, fieldStartToken, protowire.BytesType)
		b = protowire.AppendString(b, tc.StartToken)
	}
	for _, s := range tc.StopTokens {
		b = protowire.AppendTag(b, fieldStopTokens, protowire.BytesType)
		b = protowire.AppendString(b, s)
	}
	if tc.BytesToUnicode {
		b = protowire.AppendTag(b, fieldNormalizations, protowire.VarintType)
		b = protowire.AppendVarint(b, normalizationBytesToUnicode)
	}
	return b
}

// DecodeMetadata parses a METADATA payload produced by EncodeMetadata.
// Unknown fields are skipped.
func DecodeMetadata(b []byte) (types.TokenConfig, error) {
	var tc types.TokenConfig
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return tc, fmt.Errorf("metadata tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == fieldStartToken && typ == protowire.BytesType:
			s, m := protowire.ConsumeString(b)
			if m < 0 {
				return tc, fmt.Errorf("start token: %w", protowire.ParseError(m))
			}
			tc.StartToken = s
			n = m
		case num == fieldStopTokens && typ == protowire.BytesType:
			s, m := protowire.ConsumeString(b)
			if m < 0 {
				return tc, fmt.Errorf("stop token: %w", protowire.ParseError(m))
			}
			tc.StopTokens = append(tc.StopTokens, s)
			n = m
		case num == fieldNormalizations && typ == protowire.VarintType:
			v, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return tc, fmt.Errorf("normalization: %w", protowire.ParseError(m))
			}
			if v == normalizationBytesToUnicode {
				tc.BytesToUnicode = true
			}
			n = m
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return tc, fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
			}
		}
		b = b[n:]
	}
	return tc, nil
}
