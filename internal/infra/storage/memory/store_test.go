package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SIA-BookingService/internal/infra/storage/kv"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, err := s.Get(ctx, "engineers")
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)

	value := []byte(`[]`)
	require.NoError(t, s.Put(ctx, "engineers", value))
	value[0] = 'x' // caller buffer must not alias stored data

	got, err := s.Get(ctx, "engineers")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	require.NoError(t, s.PutMany(ctx, map[string][]byte{
		"appointments":  []byte(`[]`),
		"adminSettings": []byte(`{}`),
	}))

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"adminSettings", "appointments", "engineers"}, keys)

	require.NoError(t, s.Delete(ctx, "engineers"))
	require.NoError(t, s.Delete(ctx, "engineers"))
	_, err = s.Get(ctx, "engineers")
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)
}
