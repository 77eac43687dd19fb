// Package scene builds layout trees from YAML scene descriptions.
//
// A scene file holds one root node. Each node names a strategy with its
// type, configures it with type specific fields, and lists a modifier
// chain and children:
//
//	root:
//	  type: row
//	  style: {align: baseline, gap: 4}
//	  children:
//	    - type: label
//	      text: Name
//	    - type: leaf
//	      width: 20
//	      height: 10
//	      modifiers:
//	        - expanded: 1
//
// Lengths are numbers in density-independent pixels, or strings with a
// "dp" or "px" suffix, or "inf".
package scene
