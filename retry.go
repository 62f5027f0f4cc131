package robin

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// RetryCount tracks how many times a job has been retried, if ever. It is
// a two-variant value: NeverRetried, or a count of one or more retries.
// The zero value is NeverRetried.
//
// Counts only ever grow: Increment is the sole mutation path and it
// returns a new value rather than updating in place.
type RetryCount struct {
	count   uint32
	retried bool
}

// NeverRetried returns the retry state of a freshly enqueued job.
func NeverRetried() RetryCount {
	return RetryCount{}
}

// Retried returns a RetryCount recording n prior retries.
func Retried(n uint32) RetryCount {
	return RetryCount{count: n, retried: true}
}

// Increment returns the retry count advanced by one attempt.
// NeverRetried becomes a count of 1.
func (rc RetryCount) Increment() RetryCount {
	if !rc.retried {
		return RetryCount{count: 1, retried: true}
	}
	return RetryCount{count: rc.count + 1, retried: true}
}

// LimitReached reports whether the job has been retried more times than
// cfg.RetryCountLimit allows. It is false for NeverRetried and false
// while the count is at or below the limit, so a job is retried exactly
// RetryCountLimit times before being considered exhausted.
func (rc RetryCount) LimitReached(cfg Config) bool {
	if !rc.retried {
		return false
	}
	return rc.count > cfg.RetryCountLimit
}

// Count returns the number of retries and whether the job has ever been
// retried. The count is 0 when retried is false.
func (rc RetryCount) Count() (n uint32, retried bool) {
	return rc.count, rc.retried
}

func (rc RetryCount) String() string {
	if !rc.retried {
		return "NeverRetried"
	}
	return fmt.Sprintf("Count(%d)", rc.count)
}

// The wire form is externally tagged, matching records already stored by
// earlier deployments: "NeverRetried" or {"Count":n}.

// MarshalJSON encodes the retry count in its tagged wire form.
func (rc RetryCount) MarshalJSON() ([]byte, error) {
	if !rc.retried {
		return []byte(`"NeverRetried"`), nil
	}
	return json.Marshal(struct {
		Count uint32 `json:"Count"`
	}{rc.count})
}

// UnmarshalJSON decodes the tagged wire form.
func (rc *RetryCount) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag == "NeverRetried" {
			*rc = RetryCount{}
			return nil
		}
		return fmt.Errorf("robin: unknown retry count variant %q", tag)
	}

	var obj struct {
		Count *uint32 `json:"Count"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("robin: malformed retry count: %w", err)
	}
	if obj.Count == nil {
		return errors.New("robin: malformed retry count: missing Count")
	}
	*rc = RetryCount{count: *obj.Count, retried: true}
	return nil
}

// EncodeMsgpack encodes NeverRetried as nil and a count as a uint32.
func (rc RetryCount) EncodeMsgpack(enc *msgpack.Encoder) error {
	if !rc.retried {
		return enc.EncodeNil()
	}
	return enc.EncodeUint32(rc.count)
}

// DecodeMsgpack decodes the msgpack form produced by EncodeMsgpack.
func (rc *RetryCount) DecodeMsgpack(dec *msgpack.Decoder) error {
	code, err := dec.PeekCode()
	if err != nil {
		return err
	}
	if code == msgpcode.Nil {
		if err := dec.DecodeNil(); err != nil {
			return err
		}
		*rc = RetryCount{}
		return nil
	}
	n, err := dec.DecodeUint32()
	if err != nil {
		return fmt.Errorf("robin: malformed retry count: %w", err)
	}
	*rc = RetryCount{count: n, retried: true}
	return nil
}

var (
	_ msgpack.CustomEncoder = RetryCount{}
	_ msgpack.CustomDecoder = (*RetryCount)(nil)
)
