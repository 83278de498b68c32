package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_Canonical(t *testing.T) {
	codec := NewJSON()

	a, err := codec.Canonical(map[string]interface{}{"round": 3, "projectId": 7, "newRank": 1.0})
	require.NoError(t, err)
	b, err := codec.Canonical(map[string]interface{}{"newRank": 1, "projectId": 7, "round": 3})
	require.NoError(t, err)

	assert.Equal(t, `{"newRank":1,"projectId":7,"round":3}`, string(a))
	assert.Equal(t, a, b)
}

func TestJSON_RoundTrip(t *testing.T) {
	codec := NewJSON()

	type payload struct {
		Wallet string `json:"wallet"`
	}
	raw, err := codec.Marshal(payload{Wallet: "0xabc"})
	require.NoError(t, err)

	var out payload
	require.NoError(t, codec.Unmarshal(raw, &out))
	assert.Equal(t, "0xabc", out.Wallet)
}
