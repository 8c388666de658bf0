/*
Package zjson is an in-place, allocation-conscious JSON parser, document
tree, and serializer.

Parse decodes escape sequences directly inside the caller's buffer, which
it modifies, and builds a tree of Node values. String values and keys are
copied out of the decoded bytes into Go strings; they do not point back
into the buffer. The tree can be walked, queried by key or
index, mutated (AddFirst, AddLast, AddAfter, AddBefore, RemoveNode), and
re-serialized in compact or tab-indented form.

The package assumes a document fits in one buffer: there is no
streaming/incremental parser across multiple chunks, no JSON Pointer or
JSONPath support, and no schema validation. See Context for the
lifecycle.
*/
package zjson
