package tfrecord

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Example payloads are hand-assembled protos. Field numbers follow the
// tensorflow example schema:
//
//	Example{ features(1): Features{ feature(1): map<string, Feature> } }
//	Feature{ int64_list(3): Int64List{ value(1): packed varints } }

// appendFeatureEntry appends one named Int64List feature map entry to a
// Features message body.
func appendFeatureEntry(features []byte, name string, values []int) []byte {
	var packed []byte
	for _, value := range values {
		packed = protowire.AppendVarint(packed, uint64(value))
	}
	var int64List []byte
	int64List = protowire.AppendTag(int64List, 1, protowire.BytesType)
	int64List = protowire.AppendBytes(int64List, packed)

	var feature []byte
	feature = protowire.AppendTag(feature, 3, protowire.BytesType)
	feature = protowire.AppendBytes(feature, int64List)

	var entry []byte
	entry = protowire.AppendTag(entry, 1, protowire.BytesType)
	entry = protowire.AppendString(entry, name)
	entry = protowire.AppendTag(entry, 2, protowire.BytesType)
	entry = protowire.AppendBytes(entry, feature)

	features = protowire.AppendTag(features, 1, protowire.BytesType)
	return protowire.AppendBytes(features, entry)
}

// EncodeExample
// Serializes the encoded pair as a binary Example proto with two int64
// features, `inputs` and `targets`.
func EncodeExample(inputs []int, targets []int) []byte {
	features := appendFeatureEntry(nil, "inputs", inputs)
	features = appendFeatureEntry(features, "targets", targets)
	example := protowire.AppendTag(nil, 1, protowire.BytesType)
	return protowire.AppendBytes(example, features)
}
