package robin

import "github.com/vmihailenco/msgpack/v5"

// MsgpackCodec encodes job records as MessagePack. An opt-in binary
// alternative to JSONCodec for deployments that own both ends of the
// queue; the two formats are not interchangeable on one key.
type MsgpackCodec struct{}

func (c *MsgpackCodec) Encode(job EnqueuedJob) ([]byte, error) {
	return msgpack.Marshal(job)
}

func (c *MsgpackCodec) Decode(data []byte) (EnqueuedJob, error) {
	var job EnqueuedJob
	if err := msgpack.Unmarshal(data, &job); err != nil {
		return EnqueuedJob{}, err
	}
	return job, nil
}

func (c *MsgpackCodec) Name() string { return CodecNameMsgpack }
