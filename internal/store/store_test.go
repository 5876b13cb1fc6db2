package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/numcast/numeric"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestOpenInMemory(t *testing.T) {
	st, err := Open(":memory:")
	require.NoError(t, err)
	defer st.Close()

	total, failed, err := st.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Zero(t, failed)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")

	st, err := Open(path)
	require.NoError(t, err)
	_, err = st.Append(context.Background(), NewRecord("1", SourceText, numeric.KindInt64, int64(1), nil))
	require.NoError(t, err)
	require.NoError(t, st.Close())

	// Reopening applies pragmas and schema again without clobbering data.
	st, err = Open(path)
	require.NoError(t, err)
	defer st.Close()

	records, err := st.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0].Input)
}

func TestAppendAssignsIDAndSeq(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	first, err := st.Append(ctx, NewRecord("3.0", SourceText, numeric.KindInt32, int32(3), nil))
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, int64(1), first.Seq)

	second, err := st.Append(ctx, NewRecord("4", SourceText, numeric.KindInt32, int32(4), nil))
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Seq)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAppendIdempotentOnID(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	rec := NewRecord("3.0", SourceText, numeric.KindInt32, int32(3), nil)
	rec.ID = "fixed-id"

	first, err := st.Append(ctx, rec)
	require.NoError(t, err)

	// A duplicate append is silently ignored; the original row wins.
	dup := rec
	dup.Input = "different"
	again, err := st.Append(ctx, dup)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	records, err := st.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestListDeterministicOrder(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	inputs := []string{"9", "1", "5"}
	for _, in := range inputs {
		_, err := st.Append(ctx, NewRecord(in, SourceText, numeric.KindInt64, int64(0), nil))
		require.NoError(t, err)
	}

	records, err := st.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, rec := range records {
		assert.Equal(t, int64(i+1), rec.Seq)
		assert.Equal(t, inputs[i], rec.Input)
	}
}

func TestListEmptyIsNotNil(t *testing.T) {
	st := newTestStore(t)
	records, err := st.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestCount(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.Append(ctx, NewRecord("1", SourceText, numeric.KindInt8, int8(1), nil))
	require.NoError(t, err)

	_, convErr := numeric.Parse("3.5", numeric.KindInt8)
	require.Error(t, convErr)
	_, err = st.Append(ctx, NewRecord("3.5", SourceText, numeric.KindInt8, nil, convErr))
	require.NoError(t, err)

	total, failed, err := st.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, int64(1), failed)
}

func TestNewRecordSuccess(t *testing.T) {
	rec := NewRecord("3.0", SourceText, numeric.KindInt32, int32(3), nil)
	assert.Equal(t, StatusOK, rec.Status)
	assert.Equal(t, "3", rec.Result)
	assert.Equal(t, "int32", rec.TargetKind)
	assert.Empty(t, rec.Cause)
}

func TestNewRecordFailure(t *testing.T) {
	_, convErr := numeric.Parse("3.5", numeric.KindInt8)
	require.Error(t, convErr)

	rec := NewRecord("3.5", SourceText, numeric.KindInt8, nil, convErr)
	assert.Equal(t, StatusError, rec.Status)
	assert.Equal(t, string(numeric.CausePrecisionLoss), rec.Cause)
	assert.Empty(t, rec.Result)
}

func TestNewRecordNonConversionError(t *testing.T) {
	rec := NewRecord("x", SourceText, numeric.KindInt8, nil, errors.New("boom"))
	assert.Equal(t, StatusError, rec.Status)
	assert.Empty(t, rec.Cause)
}
