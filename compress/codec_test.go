package compress

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/goalog/errs"
	"github.com/arloliu/goalog/format"
	"github.com/arloliu/goalog/internal/testutil"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"Zstd": NewZstdCompressor(),
		"S2":   NewS2Compressor(),
		"LZ4":  NewLZ4Compressor(),
	}
}

func sampleRecord() []byte {
	rec := testutil.NewRecord(format.ModeScuba)
	for i := range 200 {
		rec.Depth(uint16(i%120), 0)
		if i%10 == 0 {
			rec.Temperature(215)
		}
	}

	return rec.Bytes()
}

func TestGetCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)
			require.NotNil(t, codec)
		})
	}

	_, err := GetCodec(format.CompressionType(0x7f))
	require.ErrorIs(t, err, errs.ErrUnknownCompression)
}

func TestParseCompressionType(t *testing.T) {
	tests := []struct {
		name    string
		want    format.CompressionType
		wantErr bool
	}{
		{"", format.CompressionNone, false},
		{"none", format.CompressionNone, false},
		{"zstd", format.CompressionZstd, false},
		{"ZST", format.CompressionZstd, false},
		{" s2 ", format.CompressionS2, false},
		{"lz4", format.CompressionLZ4, false},
		{"gzip", 0, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.name), func(t *testing.T) {
			got, err := ParseCompressionType(tt.name)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrUnknownCompression)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDetectCompression(t *testing.T) {
	tests := map[string]format.CompressionType{
		"dive-0001.bin":     format.CompressionNone,
		"dive-0001":         format.CompressionNone,
		"dive-0001.bin.zst": format.CompressionZstd,
		"dive-0001.ZSTD":    format.CompressionZstd,
		"/tmp/dive.bin.s2":  format.CompressionS2,
		"dive.sz":           format.CompressionS2,
		"logs/dive.bin.lz4": format.CompressionLZ4,
		"archive.tar.gz":    format.CompressionNone,
		"dir.zst/dive-0001": format.CompressionNone,
	}

	for name, want := range tests {
		require.Equal(t, want, DetectCompression(name), name)
	}
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Empty(t, compressed)

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	record := sampleRecord()

	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(record)
			require.NoError(t, err)
			require.NotEmpty(t, compressed)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(record, decompressed))
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := map[string][]byte{
		"random_bytes":     {0xFF, 0xFF, 0xFF, 0xFF},
		"raw_record":       []byte("GOA000001 is not compressed"),
		"corrupted_header": {0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07},
	}

	for name, codec := range getAllCodecs() {
		if name == "NoOp" {
			continue
		}

		t.Run(name, func(t *testing.T) {
			for inputName, input := range invalidInputs {
				_, err := codec.Decompress(input)
				require.Error(t, err, inputName)
			}
		})
	}
}

func TestAllCodecs_SizeLimit(t *testing.T) {
	oversized := make([]byte, MaxDecompressedSize+1)

	for name, codec := range getAllCodecs() {
		if name == "NoOp" {
			continue
		}

		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(oversized)
			require.NoError(t, err)

			_, err = codec.Decompress(compressed)
			require.ErrorIs(t, err, errs.ErrTooLarge)
			require.NotErrorIs(t, err, errs.ErrDataFormat)
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 16
	record := sampleRecord()

	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(record)
			require.NoError(t, err)

			done := make(chan error, numGoroutines)
			for range numGoroutines {
				go func() {
					decompressed, err := codec.Decompress(compressed)
					if err != nil {
						done <- err
						return
					}
					if !bytes.Equal(record, decompressed) {
						done <- fmt.Errorf("decompressed data mismatch")
						return
					}
					done <- nil
				}()
			}

			for range numGoroutines {
				require.NoError(t, <-done)
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	record := sampleRecord()

	for name, codec := range getAllCodecs() {
		compressed, err := codec.Compress(record)
		require.NoError(b, err)

		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(record)))
			for b.Loop() {
				if _, err := codec.Decompress(compressed); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
