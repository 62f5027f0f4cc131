package robin

import "testing"

func TestGetCodec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"json", CodecNameJSON},
		{"msgpack", CodecNameMsgpack},
		{"", CodecNameJSON},
		{"protobuf", CodecNameJSON}, // unknown names fall back to JSON
	}

	for _, tt := range tests {
		t.Run("name="+tt.name, func(t *testing.T) {
			if got := GetCodec(tt.name).Name(); got != tt.want {
				t.Fatalf("GetCodec(%q).Name() = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestCodecRoundTrip(t *testing.T) {
	t.Parallel()

	jobs := []EnqueuedJob{
		NewEnqueuedJob("send_email", `{"to":"a@b.com"}`),
		NewEnqueuedJob("noop", ""),
		{Name: "resize_image", Args: `{"w":640}`, RetryCount: Retried(4)},
	}

	for _, codec := range []Codec{&JSONCodec{}, &MsgpackCodec{}} {
		for _, job := range jobs {
			t.Run(codec.Name()+"/"+job.Name, func(t *testing.T) {
				data, err := codec.Encode(job)
				if err != nil {
					t.Fatalf("Encode: %v", err)
				}
				back, err := codec.Decode(data)
				if err != nil {
					t.Fatalf("Decode: %v", err)
				}
				if back != job {
					t.Fatalf("round trip = %+v, want %+v", back, job)
				}
			})
		}
	}
}

func TestJSONCodecForwardCompatible(t *testing.T) {
	t.Parallel()

	codec := &JSONCodec{}

	// Unknown fields are ignored on read.
	job, err := codec.Decode([]byte(`{"name":"a","args":"b","retry_count":{"Count":2},"priority":9}`))
	if err != nil {
		t.Fatalf("Decode with unknown field: %v", err)
	}
	if job.Name != "a" || job.Args != "b" {
		t.Fatalf("Decode = %+v", job)
	}
	if n, _ := job.RetryCount.Count(); n != 2 {
		t.Fatalf("RetryCount = %s, want Count(2)", job.RetryCount)
	}

	// An absent retry_count defaults to NeverRetried.
	job, err = codec.Decode([]byte(`{"name":"a","args":"b"}`))
	if err != nil {
		t.Fatalf("Decode without retry_count: %v", err)
	}
	if _, retried := job.RetryCount.Count(); retried {
		t.Fatalf("RetryCount = %s, want NeverRetried", job.RetryCount)
	}
}

func TestJSONCodecDecodeMalformed(t *testing.T) {
	t.Parallel()

	codec := &JSONCodec{}
	if _, err := codec.Decode([]byte(`not json at all`)); err == nil {
		t.Fatal("Decode of garbage succeeded, want error")
	}
	if _, err := codec.Decode([]byte(`{"name":"a","retry_count":"Nonsense"}`)); err == nil {
		t.Fatal("Decode of bad retry_count succeeded, want error")
	}
}
