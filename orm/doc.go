/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of object.
* Objects are protobuf messages, serialized with gogo/protobuf.
* Easy queries for one and iteration in key order.

Keys within a bucket are chosen by the extension. Use Sequence to generate
keys that preserve insertion order.
*/
package orm
