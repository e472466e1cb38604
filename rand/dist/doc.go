// Package dist draws samples from common distributions using a pluggable
// unit source, typically an *isaac.Generator.
//
// Every sequence is deterministic given its source: two sequences built
// over identically seeded generators produce identical samples.
package dist
