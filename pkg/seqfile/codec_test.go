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
	"compress/gzip"
	"encoding/binary"
	"testing"

	"github.com/pierrec/lz4"
	"github.com/stretchr/testify/require"

	"github.com/MyqueWooMiddo/Impala-1/pkg/common/moerr"
)

func TestNewCodec(t *testing.T) {
	for _, name := range []string{
		DefaultCodecClass, GzipCodecClass, BZip2CodecClass, Lz4CodecClass,
	} {
		c, err := NewCodec(name)
		require.NoError(t, err)
		require.NotNil(t, c)
	}
	_, err := NewCodec("org.example.Bogus")
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrNYI))
}

func TestZlibCodec(t *testing.T) {
	c, _ := NewCodec(DefaultCodecClass)
	out, err := c.Decompress(deflate(t, []byte("1234500")))
	require.NoError(t, err)
	require.Equal(t, []byte("1234500"), out)

	_, err = c.Decompress([]byte("not zlib"))
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrParseError))
}

func TestGzipCodec(t *testing.T) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte("decimal text"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	c, _ := NewCodec(GzipCodecClass)
	out, err := c.Decompress(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, []byte("decimal text"), out)
}

// hadoopLz4 frames one payload the way Hadoop's Lz4Codec does.
func hadoopLz4(t *testing.T, payload []byte) []byte {
	comp := make([]byte, lz4.CompressBlockBound(len(payload)))
	n, err := lz4.CompressBlock(payload, comp, nil)
	require.NoError(t, err)
	require.NotZero(t, n)

	out := make([]byte, 8, 8+n)
	binary.BigEndian.PutUint32(out[0:], uint32(len(payload)))
	binary.BigEndian.PutUint32(out[4:], uint32(n))
	return append(out, comp[:n]...)
}

func TestLz4Codec(t *testing.T) {
	payload := bytes.Repeat([]byte("0.125|33.000|"), 100)
	c, _ := NewCodec(Lz4CodecClass)
	out, err := c.Decompress(hadoopLz4(t, payload))
	require.NoError(t, err)
	require.Equal(t, payload, out)

	_, err = c.Decompress([]byte{0, 0})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrUnexpectedEOF))
}
