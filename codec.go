package robin

// Codec defines the serialization contract for job records stored in a
// backend. Implementations must round-trip Name, Args, and RetryCount
// without loss.
type Codec interface {
	// Encode serializes a job record to bytes.
	Encode(job EnqueuedJob) ([]byte, error)

	// Decode deserializes bytes into a job record.
	Decode(data []byte) (EnqueuedJob, error)

	// Name returns the codec identifier (e.g. "json", "msgpack").
	Name() string
}

// Codec name constants.
const (
	CodecNameJSON    = "json"
	CodecNameMsgpack = "msgpack"
)

// GetCodec returns a codec by name. Defaults to JSON, the textual wire
// format earlier deployments stored.
func GetCodec(name string) Codec {
	switch name {
	case CodecNameMsgpack:
		return &MsgpackCodec{}
	case CodecNameJSON, "":
		return &JSONCodec{}
	default:
		return &JSONCodec{}
	}
}
