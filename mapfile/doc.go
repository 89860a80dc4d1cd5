// Package mapfile reads terrain maps and query lists from YAML documents.
//
// A document looks like:
//
//	name: map1            # empty or absent: the default slot
//	algorithm: chunked    # direct (default) or chunked
//	chunk_size: 4         # chunked only, default 3
//	weights:              # chunked only, default 1 / 10
//	  open: 1
//	  expensive: 10
//	rows:                 # one string per row, top to bottom
//	  - "0 3 0 0 0"
//	  - "03333"           # without separators every digit is one cell
//	queries:
//	  - {name: corner, from: [0, 0], to: [4, 4]}
//
// Schema returns the JSON schema of the document so editors can validate
// map files.
package mapfile
