// SPDX-License-Identifier: MIT

// Package fixture loads small property graphs from YAML documents for tests
// and the command line.
//
//	graphs:
//	  - var: g0
//	    label: Community
//	    properties: {interest: Databases}
//	vertices:
//	  - {var: alice, label: Person, properties: {name: Alice, age: !int32 20}, graphs: [g0]}
//	  - {var: bob,   label: Person, properties: {name: Bob}, graphs: [g0]}
//	edges:
//	  - {var: e0, label: knows, source: alice, target: bob, mirror: true, graphs: [g0]}
//
// Property values map YAML scalars to the model's types: booleans to bool,
// integers to int64, floats to float64 and strings to string. The local
// tags !int32 and !float32 select the narrower types. Sequences and
// mappings are rejected with epgm.ErrInvalidPropertyType.
//
// Every element declared with a var gets a stable id derived from its kind
// and name, so parsing the same document twice yields the same ids. An edge
// with mirror: true also declares its reverse edge, addressable as var+"~".
package fixture
