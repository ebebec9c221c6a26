// Package mapspec defines the mapping specification that drives conversion
// between X12 documents and nested data trees, and loads it from YAML, JSON
// or TOML.
//
// A specification is a tree of Nodes. Every Node is exactly one of:
//
//   - *Group: ordered keys mapping to sub-specifications
//   - *FieldMap: read or write one field of one segment
//   - *LoopMap: apply a sub-specification to every group of a Loop
//   - *RepeatingSegmentMap: apply a flat sub-specification to every matching segment
//   - *List: an array of sub-specifications
//   - Literal: a string, number or boolean copied as is
//
// # Plain form
//
// Serialized specifications tag descriptor nodes with a "_type" key:
//
//	header:
//	  type:
//	    _type: FieldMap
//	    segmentIdentifier: ST
//	    valuePosition: 0
//	  warehouse:
//	    _type: FieldMap
//	    segmentIdentifier: N1
//	    identifierPosition: 0
//	    identifierValue: WH
//	    valuePosition: 1
//	items:
//	  _type: LoopMap
//	  position: 0
//	  values:
//	    code: {_type: FieldMap, segmentIdentifier: W07, valuePosition: 4}
//	references:
//	  _type: RepeatingSegmentMap
//	  segmentIdentifier: N9
//	  values:
//	    qualifier: {_type: FieldMap, valuePosition: 0}
//	    reference: {_type: FieldMap, valuePosition: 1}
//
// Revive turns plain data into Nodes. An unknown "_type" does not fail: the
// node becomes a Group carrying the unknown discriminator, and a warning is
// recorded. Reviving a tree that is already made of Nodes returns it as is.
//
// # Spec files
//
// A spec file adds loop definitions to the map:
//
//	version: "1"
//	infer_loops: false
//	loops:
//	  - position: 0
//	    segments: [W07, N9, W20]
//	map:
//	  ...
//
// Loop positions index the loop registry of a Transaction, so they must
// follow declaration order.
package mapspec
