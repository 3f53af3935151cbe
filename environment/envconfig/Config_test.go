package envconfig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, NewConfig(Taxi, 0, 1.0).Validate())
	assert.NoError(t, NewConfig(FrozenLake, 100, 0.99).Validate())
	assert.Error(t, NewConfig("MountainCar-v0", 0, 1.0).Validate())
	assert.Error(t, NewConfig(Taxi, 0, 1.5).Validate())
}

func TestConfigJSON(t *testing.T) {
	data := []byte(`{"Environment": "Taxi-v3", "EpisodeCutoff": 200, "Discount": 1}`)

	var c Config
	require.NoError(t, json.Unmarshal(data, &c))
	assert.Equal(t, NewConfig(Taxi, 200, 1.0), c)
}
