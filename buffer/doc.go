// Package buffer provides fixed-capacity implementations of the transport
// contracts in the root package.
//
// Writer is a bounded output buffer: construct it with buffer.New for a
// one-time allocation, or buffer.Wrap to serialize into caller-owned
// storage (a stack array, a DMA region, a mapped peripheral window).
//
// Reader walks an existing byte slice without copying. Beyond the Pop
// contract it exposes Peek, Skip and Remaining, which message decoding uses
// to step over unknown fields.
//
// SizeWriter implements the Writer contract but only counts bytes, so a
// serialize pass against it computes an encoded size without any storage.
package buffer
