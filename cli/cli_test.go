package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/agent"
	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/agent/tabular/esarsa"
	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/environment/envconfig"
	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/experiment"
	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/experiment/tracker"
	ts "github.com/c-schrade/Udacity-Taxi-v2-Miniproject/timestep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromFile(t *testing.T) {
	f := &trainFlags{configFile: filepath.Join("..", "configs", "taxi.json")}

	c, err := f.config()
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, experiment.OnlineExp, c.Type)
	assert.Equal(t, uint(20000), c.MaxEpisodes)
	require.NotNil(t, c.Target)
	assert.Equal(t, 9.7, *c.Target)
	assert.Equal(t, envconfig.Taxi, c.EnvConf.Environment)
	assert.Equal(t, agent.EGreedyESarsaTabular, c.AgentConf.Type)
	assert.Equal(t, 6, c.AgentConf.Len())
	assert.Equal(t, esarsa.Config{Epsilon: 0.005, Alpha: 0.11, Gamma: 1,
		NA: 6, NS: 500}, c.AgentConf.At(1))
}

func TestConfigFromFlags(t *testing.T) {
	f := &trainFlags{}
	cmd := newTrainCommand(f)
	require.NoError(t, cmd.Flags().Parse([]string{"--epsilon", "0.01",
		"--alpha", "0.2", "--episodes", "50", "--no-target"}))

	c, err := f.config()
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Nil(t, c.Target)
	assert.Equal(t, uint(50), c.MaxEpisodes)
	assert.Equal(t, uint(experiment.DefaultWindow), c.Window)
	assert.Equal(t, envconfig.NewConfig(envconfig.Taxi, 0, 1), c.EnvConf)
	assert.Equal(t, esarsa.Config{Epsilon: 0.01, Alpha: 0.2, Gamma: 1,
		NA: 6, NS: 500}, c.AgentConf.At(0))

	f = &trainFlags{}
	require.NoError(t, newTrainCommand(f).Flags().Parse(nil))
	c, err = f.config()
	require.NoError(t, err)
	require.NotNil(t, c.Target)
	assert.Equal(t, experiment.TaxiTarget, *c.Target)
	assert.Equal(t, esarsa.DefaultConfig(0.00039, 0.11), c.AgentConf.At(0))
}

func TestConfigMissingFile(t *testing.T) {
	f := &trainFlags{configFile: filepath.Join(t.TempDir(), "missing.json")}
	_, err := f.config()
	assert.Error(t, err)
}

func TestConfigNegativeIndex(t *testing.T) {
	f := &trainFlags{}
	require.NoError(t, newTrainCommand(f).Flags().Parse([]string{
		"--index", "-1"}))

	_, err := f.config()
	assert.Error(t, err)

	f.configFile = filepath.Join("..", "configs", "taxi.json")
	_, err = f.config()
	assert.Error(t, err)
}

func TestPlotCommand(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "returns.bin")
	out := filepath.Join(dir, "returns.png")

	r := tracker.NewReturn(data)
	for _, episode := range [][]float64{{0, -1, -1, 20}, {0, -1, 20}} {
		for i, reward := range episode {
			stepType := ts.Mid
			switch i {
			case 0:
				stepType = ts.First
			case len(episode) - 1:
				stepType = ts.Last
			}
			r.Track(ts.New(stepType, reward, 1, i, i))
		}
	}
	require.NoError(t, r.Save())

	root := GetRootCommand()
	root.SetArgs([]string{"plot", data, "--out", out, "--log-level", "error"})
	require.NoError(t, root.Execute())

	_, err := os.Stat(out)
	assert.NoError(t, err)
}
