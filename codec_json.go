package robin

import "encoding/json"

// JSONCodec encodes job records as JSON. This is the default wire format:
// a self-describing textual record with exactly the name, args, and
// retry_count fields. Unknown fields are ignored on read and an absent
// retry_count decodes as NeverRetried, so older records and records
// written by newer producers both remain readable.
type JSONCodec struct{}

func (c *JSONCodec) Encode(job EnqueuedJob) ([]byte, error) {
	return json.Marshal(job)
}

func (c *JSONCodec) Decode(data []byte) (EnqueuedJob, error) {
	var job EnqueuedJob
	if err := json.Unmarshal(data, &job); err != nil {
		return EnqueuedJob{}, err
	}
	return job, nil
}

func (c *JSONCodec) Name() string { return CodecNameJSON }
