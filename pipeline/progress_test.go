package pipeline_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/skita-dev/skita/container"
	"github.com/skita-dev/skita/pipeline"
	"github.com/skita-dev/skita/pipeline/test/mock"
)

func TestEncrypt_ProgressIsMonotonic(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var percents []int
	sink := mock.NewMockProgressSink(ctrl)
	sink.EXPECT().
		OnProgress(gomock.Any(), gomock.Any()).
		Do(func(percent int, _ pipeline.Stage) {
			percents = append(percents, percent)
		}).
		MinTimes(2)

	plaintext := bytes.Repeat([]byte("E"), 2*container.ChunkSize+1)
	encryptFast(t, plaintext, "prog.bin", []byte("pw"), pipeline.WithProgressSink(sink))

	require.NotEmpty(t, percents)
	require.Zero(t, percents[0])
	require.Equal(t, 100, percents[len(percents)-1])
	for i := 1; i < len(percents); i++ {
		require.GreaterOrEqual(t, percents[i], percents[i-1], "percent must never decrease")
	}
}

func TestDecrypt_ProgressReaches100(t *testing.T) {
	t.Parallel()

	res := encryptFast(t, []byte("progress payload"), "p.bin", []byte("pw"))

	var percents []int
	var stages []pipeline.Stage
	_, err := pipeline.Decrypt(context.Background(), res.Container, []byte("pw"),
		pipeline.WithProgress(func(percent int, stage pipeline.Stage) {
			percents = append(percents, percent)
			stages = append(stages, stage)
		}))
	require.NoError(t, err)

	require.Equal(t, 100, percents[len(percents)-1])
	require.Equal(t, pipeline.StageFinalizing, stages[len(stages)-1])
	for i := 1; i < len(percents); i++ {
		require.GreaterOrEqual(t, percents[i], percents[i-1])
	}
	require.Contains(t, stages, pipeline.StageKeyDerivation)
	require.Contains(t, stages, pipeline.StageChunking)
}

func TestWithProgress_NilSinkKeepsNoop(t *testing.T) {
	t.Parallel()

	// A nil callback must not panic the hot loop.
	res := encryptFast(t, []byte("x"), "x.bin", []byte("pw"), pipeline.WithProgress(nil))
	require.NotEmpty(t, res.Container)
}
