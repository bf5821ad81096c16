// Package writers turns search results and progress snapshots into
// serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (text, JSON, JSONL).
//   • The motif package stays domain-only; motifapp stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
