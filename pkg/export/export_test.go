package export

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"

	"github.com/SirJonasM/fpga-router/pkg/router"
)

type fakeS3 struct {
	puts map[string][]byte
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.puts == nil {
		f.puts = make(map[string][]byte)
	}
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.puts[*params.Key] = body
	return &s3.PutObjectOutput{}, nil
}

func TestPutFASMWritesExpectedKey(t *testing.T) {
	fake := &fakeS3{}
	u := &Uploader{Client: fake, Bucket: "artifacts"}

	require.NoError(t, u.PutFASM(context.Background(), "run-1", "X1Y1.LA_O.N1"))
	require.Equal(t, []byte("X1Y1.LA_O.N1"), fake.puts["run-1/routing.fasm"])
}

func TestPutMetricsSerializesRows(t *testing.T) {
	fake := &fakeS3{}
	u := &Uploader{Client: fake, Bucket: "artifacts"}

	rows := []router.Row{{Iteration: 0, Conflicts: 2}, {Iteration: 1, Conflicts: 0}}
	require.NoError(t, u.PutMetrics(context.Background(), "run-1", rows))

	var got []router.Row
	require.NoError(t, json.Unmarshal(fake.puts["run-1/metrics.json"], &got))
	require.Equal(t, rows, got)
}
