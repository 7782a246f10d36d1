/*
Package orm provides an easy to use db wrapper.

Models are protobuf messages stored under a key prefixed by the name of the
bucket they belong to. Buckets never share a prefix, so the same key can be
used by different buckets without a collision.
*/
package orm
