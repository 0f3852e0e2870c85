// Package huffman builds Huffman codes over arbitrary ordered alphabets and
// converts them into canonical Huffman codes.  A canonical code can be
// reconstructed from its bit lengths alone, which makes it suitable for
// DEFLATE and other compression algorithms.
//
// The usual pipeline is BuildTree, then Extract, then Canonicalize.  Decode
// walks a tree to recover a single symbol.  Encoder and Decoder wrap the
// pipeline for callers that only care about the sending and receiving ends.
//
// References:
//
//	<https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
//
//	<https://en.wikipedia.org/wiki/Canonical_Huffman_code>
package huffman
