package update_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/rsa-acc/update"
)

func TestUpdateMarshalRoundTrip(t *testing.T) {
	a := newHolder(t)

	w1, err := a.Add([]byte("1"))
	require.NoError(t, err)
	w2, err := a.Add([]byte("2"))
	require.NoError(t, err)

	u := update.Open(a, nil, nil)
	u.AbsorbAdd(w2)

	data, err := u.MarshalBinary()
	require.NoError(t, err)

	restored, err := update.UnmarshalUpdate(data, nil, nil)
	require.NoError(t, err)
	require.Equal(t, u.ID, restored.ID)

	refreshedFromOriginal, err := u.Apply(w1)
	require.NoError(t, err)
	refreshedFromRestored, err := restored.Apply(w1)
	require.NoError(t, err)

	require.Zero(t, refreshedFromOriginal.W.Cmp(refreshedFromRestored.W))
	require.True(t, a.Verify(refreshedFromRestored))
}
