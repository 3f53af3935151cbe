package agent

import (
	"fmt"
	"reflect"

	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/environment"
)

// Config represents a configuration for creating an agent
type Config interface {
	// CreateAgent creates the agent that the config describes
	CreateAgent(env environment.Environment, seed uint64) (Agent, error)

	// ValidAgent returns whether the argument agent is valid for the
	// Config
	ValidAgent(Agent) bool

	// Validate returns an error describing whether or not the
	// configuration is valid or not.
	Validate() error

	// Type returns the type of agent constructed by the Config
	Type() Type
}

// ConfigList stores a number of Configs in a simple manner. Instead of
// storing a slice of Configs, a ConfigList is a struct of slices, one
// per settable field of its Config, and describes every combination of
// field values. Each field of a ConfigList must share its name with the
// field of the Config it sets.
type ConfigList interface {
	// Config returns an empty Config of the type stored by the list
	Config() Config

	// Type returns the type of agent constructed by the list's Configs
	Type() Type

	// NumFields returns the number of settable fields
	NumFields() int

	// Len returns the number of Configs stored by the list
	Len() int
}

// ConfigAt returns the Config at index i in the ConfigList. Indices
// wrap around the length of the list so that sequential runs of an
// experiment sweep over every Config before repeating any.
//
// The first field of the list varies fastest.
func ConfigAt(i int, list ConfigList) Config {
	if list.Len() == 0 {
		panic("configAt: empty config list")
	}
	if i < 0 {
		panic(fmt.Sprintf("configAt: index %v must be non-negative", i))
	}
	i %= list.Len()

	listValue := reflect.ValueOf(list)
	listType := listValue.Type()
	config := reflect.New(reflect.TypeOf(list.Config())).Elem()

	for f := 0; f < listValue.NumField(); f++ {
		values := listValue.Field(f)
		name := listType.Field(f).Name

		field := config.FieldByName(name)
		if !field.IsValid() {
			panic(fmt.Sprintf("configAt: config has no field %v", name))
		}

		field.Set(values.Index(i % values.Len()))
		i /= values.Len()
	}

	return config.Interface().(Config)
}
