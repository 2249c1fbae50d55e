// Copyright 2022 The Impala-1 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package seqfile

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"encoding/binary"
	"io"

	"github.com/pierrec/lz4"

	"github.com/MyqueWooMiddo/Impala-1/pkg/common/moerr"
)

// Codec class names as they appear in file headers.
const (
	DefaultCodecClass = "org.apache.hadoop.io.compress.DefaultCodec"
	GzipCodecClass    = "org.apache.hadoop.io.compress.GzipCodec"
	BZip2CodecClass   = "org.apache.hadoop.io.compress.BZip2Codec"
	Lz4CodecClass     = "org.apache.hadoop.io.compress.Lz4Codec"
)

// A Codec inflates one compressed buffer, either a record-compressed value
// or one of the four streams of a compressed block.
type Codec interface {
	Decompress(data []byte) ([]byte, error)
}

// NewCodec resolves a codec class name from a file header.
func NewCodec(className string) (Codec, error) {
	switch className {
	case DefaultCodecClass:
		return zlibCodec{}, nil
	case GzipCodecClass:
		return gzipCodec{}, nil
	case BZip2CodecClass:
		return bzip2Codec{}, nil
	case Lz4CodecClass:
		return lz4Codec{}, nil
	default:
		return nil, moerr.NewNYINoCtx("compression codec %s", className)
	}
}

type zlibCodec struct{}

func (zlibCodec) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, moerr.NewParseErrorNoCtx("corrupt zlib data: %v", err)
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, moerr.NewParseErrorNoCtx("corrupt zlib data: %v", err)
	}
	return out, nil
}

type gzipCodec struct{}

func (gzipCodec) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, moerr.NewParseErrorNoCtx("corrupt gzip data: %v", err)
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, moerr.NewParseErrorNoCtx("corrupt gzip data: %v", err)
	}
	return out, nil
}

type bzip2Codec struct{}

func (bzip2Codec) Decompress(data []byte) ([]byte, error) {
	out, err := io.ReadAll(bzip2.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, moerr.NewParseErrorNoCtx("corrupt bzip2 data: %v", err)
	}
	return out, nil
}

// lz4Codec understands Hadoop's block framing: a big-endian uncompressed
// length, then chunks of big-endian compressed length followed by a raw lz4
// block, repeated until the uncompressed length is covered.
type lz4Codec struct{}

func (lz4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) < 4 {
		return nil, moerr.NewUnexpectedEOFNoCtx("lz4 block header")
	}
	total := int(binary.BigEndian.Uint32(data))
	data = data[4:]
	out := make([]byte, 0, total)
	buf := make([]byte, total)
	for len(out) < total {
		if len(data) < 4 {
			return nil, moerr.NewUnexpectedEOFNoCtx("lz4 chunk header")
		}
		chunkLen := int(binary.BigEndian.Uint32(data))
		data = data[4:]
		if chunkLen > len(data) {
			return nil, moerr.NewUnexpectedEOFNoCtx("lz4 chunk body")
		}
		n, err := lz4.UncompressBlock(data[:chunkLen], buf[:total-len(out)])
		if err != nil {
			return nil, moerr.NewParseErrorNoCtx("corrupt lz4 data: %v", err)
		}
		out = append(out, buf[:n]...)
		data = data[chunkLen:]
	}
	return out, nil
}
