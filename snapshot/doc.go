// Package snapshot encodes and decodes a whole session — the distribution
// graph plus a few display flags — as a single flat JSON document.
//
// The wire format mirrors the reference viewer's save format:
//
//	{
//	  "distributions": { "<id>": {"id", "name", "mean", "std_dev",
//	                              "parent_ids", "is_product"}, ... },
//	  "next_id": <integer>,
//	  "show_shading": <bool>,
//	  "shading_opacity": <0..1>,
//	  "show_std_markers": <bool>
//	}
//
// The codec is lossless: Decode(Encode(s)) reproduces every field, including
// product nodes' derived values as last computed (they are not recomputed on
// load) and ParentIDs order. Malformed input yields an error wrapping
// ErrDecode with the parser's message and never produces partial state.
//
// Errors:
//
//	ErrDecode — malformed snapshot document.
package snapshot
