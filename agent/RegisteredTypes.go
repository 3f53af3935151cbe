package agent

import (
	"reflect"
)

// Type represents a specific type of an agent Config.
// Config's with this type can create Agents of the corresponding type.
type Type string

const (
	// Tabular methods
	EGreedyESarsaTabular Type = "EGreedyESarsa-Tabular"
)

// Registered types with the package. Once a Type has been registered
// with this map, a ConfigList with that type can be deserialized.
//
// No Type's are registered wtih this package upon initialization.
// Each separate package is in charge of registering its Type with
// the package separately to avoid circular imports.
var registeredTypes = make(map[Type]reflect.Type)

// Register registers an agent's Type with a concrete ConfigList type
// so that upon deserialization of a TypedConfigList, ConfigLists of
// type agentType are deserialized into the concrete type of configs.
func Register(agentType Type, configs ConfigList) {
	registeredTypes[agentType] = reflect.TypeOf(configs)
}
