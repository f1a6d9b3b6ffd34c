package chip_test

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/chaisql/chip"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want chip.Value
	}{
		{"int64", []byte{0, 0x53, 0x22, 0, 0, 0, 0, 0, 0}, chip.NewInt64Value(8787)},
		{"int32", []byte{11, 0xfe, 0xff, 0xff, 0xff}, chip.NewInt32Value(-2)},
		{"uint8", []byte{13, 235}, chip.NewUint8Value(235)},
		{"small uint8", []byte{22}, chip.NewSmallUint8Value(2)},
		{"small uint8 max", []byte{255}, chip.NewSmallUint8Value(235)},
		{"float64", []byte{8, 0, 0, 0, 0, 0, 0, 0xf8, 0x3f}, chip.NewFloat64Value(1.5)},
		{"float32", []byte{12, 0, 0, 0xc0, 0x3f}, chip.NewFloat32Value(1.5)},
		{"true", []byte{6}, chip.NewBoolValue(true)},
		{"false", []byte{7}, chip.NewBoolValue(false)},
		{"bytes", []byte{1, 5, 'h', 'e', 'l', 'l', 'o'}, chip.NewTextValue("hello")},
		{"empty bytes", []byte{1, 0}, chip.NewBytesValue(nil)},
		{"absent optional", []byte{10}, chip.NewOptionalValue(nil)},
		{"present optional", []byte{9, 1, 6}, chip.NewOptionalValue(chip.NewBoolValue(true))},
		{"empty array", []byte{2, 3}, chip.NewArrayValue()},
		{"array", []byte{2, 1, 6, 3}, chip.NewArrayValue(chip.NewBoolValue(true))},
		{
			"array of short strings",
			[]byte{2, 3, 1, 1, 'x', 3, 1, 1, 'y', 3},
			chip.NewArrayValue(chip.NewTextValue("x"), chip.NewTextValue("y")),
		},
		{"empty map", []byte{4, 5}, chip.NewMapValue()},
		{
			"map",
			[]byte{4, 7, 1, 5, 'h', 'e', 'l', 'l', 'o', 7, 1, 5, 'w', 'o', 'r', 'l', 'd', 5},
			chip.NewMapValue(chip.Pair{Key: chip.NewTextValue("hello"), Value: chip.NewTextValue("world")}),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v, err := chip.Decode(test.data)
			require.NoError(t, err)
			require.Empty(t, cmp.Diff(test.want, v, cmpopts.EquateEmpty()))

			// re-encoding a decoded value reproduces the input exactly
			b, err := chip.Encode(v)
			require.NoError(t, err)
			require.Equal(t, test.data, b)
		})
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    chip.Value
	}{
		{"zero int64", chip.NewInt64Value(0)},
		{"max int64", chip.NewInt64Value(math.MaxInt64)},
		{"min int64", chip.NewInt64Value(math.MinInt64)},
		{"pi", chip.NewFloat64Value(math.Pi)},
		{"negative float32", chip.NewFloat32Value(-3.14)},
		{"binary bytes", chip.NewBytesValue([]byte{0, 1, 2, 0xfe, 0xff})},
		{
			"pairs",
			chip.NewMapValue(
				chip.Pair{Key: chip.NewTextValue("hello"), Value: chip.NewTextValue("world")},
				chip.Pair{Key: chip.NewTextValue("money"), Value: chip.NewInt64Value(6969694200)},
			),
		},
		{
			"duplicate keys",
			chip.NewMapValue(
				chip.Pair{Key: chip.NewTextValue("k"), Value: chip.NewSmallUint8Value(1)},
				chip.Pair{Key: chip.NewTextValue("k"), Value: chip.NewSmallUint8Value(2)},
			),
		},
		{
			"non text keys",
			chip.NewMapValue(
				chip.Pair{Key: chip.NewInt64Value(1), Value: chip.NewBoolValue(true)},
				chip.Pair{Key: chip.NewArrayValue(), Value: chip.NewBoolValue(false)},
			),
		},
		{"optional of array", chip.NewOptionalValue(chip.NewArrayValue(chip.NewBoolValue(true)))},
		{
			"array of everything",
			chip.NewArrayValue(
				chip.NewInt64Value(-42),
				chip.NewInt32Value(7),
				chip.NewUint8Value(250),
				chip.NewSmallUint8Value(9),
				chip.NewFloat64Value(2.75),
				chip.NewFloat32Value(-0.5),
				chip.NewBoolValue(false),
				chip.NewTextValue("text"),
				chip.NewBytesValue([]byte{0xde, 0xad}),
				chip.NewOptionalValue(nil),
				chip.NewArrayValue(chip.NewMapValue()),
			),
		},
		{"max nesting", nestedOptional(chip.MaxDepth)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			enc, err := chip.Encode(test.v)
			require.NoError(t, err)

			got, err := chip.Decode(enc)
			require.NoError(t, err)
			require.Empty(t, cmp.Diff(test.v, got, cmpopts.EquateEmpty()))

			again, err := chip.Encode(got)
			require.NoError(t, err)
			require.Equal(t, enc, again)
		})
	}
}

func TestDecodeNaN(t *testing.T) {
	enc := mustEncode(t, chip.NewFloat64Value(math.NaN()))

	v, err := chip.Decode(enc)
	require.NoError(t, err)
	f, ok := chip.AsFloat64(v)
	require.True(t, ok)
	require.True(t, math.IsNaN(f))

	again, err := chip.Encode(v)
	require.NoError(t, err)
	require.Equal(t, enc, again)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		err  error
	}{
		{"empty", nil, chip.ErrTruncated},
		{"int64 truncated", []byte{0, 1, 2, 3}, chip.ErrTruncated},
		{"int32 truncated", []byte{11, 1}, chip.ErrTruncated},
		{"uint8 truncated", []byte{13}, chip.ErrTruncated},
		{"float64 truncated", []byte{8, 0, 0, 0, 0, 0, 0, 0xf8}, chip.ErrTruncated},
		{"float32 truncated", []byte{12, 0, 0, 0xc0}, chip.ErrTruncated},
		{"bytes missing length", []byte{1}, chip.ErrTruncated},
		{"bytes short payload", []byte{1, 5, 'h', 'e'}, chip.ErrTruncated},
		{"unterminated array", []byte{2}, chip.ErrTruncated},
		{"unterminated array after element", []byte{2, 1, 6}, chip.ErrTruncated},
		{"array frame short", []byte{2, 5, 1, 3, 'a'}, chip.ErrTruncated},
		{"unterminated map", []byte{4}, chip.ErrTruncated},
		{"map missing value", []byte{4, 7, 1, 5, 'h', 'e', 'l', 'l', 'o'}, chip.ErrTruncated},
		{"optional missing frame", []byte{9}, chip.ErrTruncated},
		{"optional short frame", []byte{9, 5, 6}, chip.ErrTruncated},
		{"lone array end", []byte{3}, chip.ErrUnknownTag},
		{"lone map end", []byte{5}, chip.ErrUnknownTag},
		{"trailing after scalar", []byte{6, 6}, chip.ErrTrailingData},
		{"trailing after small uint8", []byte{255, 0}, chip.ErrTrailingData},
		{"trailing after absent optional", []byte{10, 0}, chip.ErrTrailingData},
		{"slack in optional frame", []byte{9, 2, 6, 6}, chip.ErrTrailingData},
		{"slack in array frame", []byte{2, 2, 6, 6, 3}, chip.ErrTrailingData},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := chip.Decode(test.data)
			require.ErrorIs(t, err, test.err)
		})
	}
}

func TestDecodeReservedTags(t *testing.T) {
	for tag := byte(14); tag < 20; tag++ {
		_, err := chip.Decode([]byte{tag})
		require.ErrorIs(t, err, chip.ErrUnknownTag, "tag %d", tag)

		_, err = chip.Decode([]byte{2, 1, tag, 3})
		require.ErrorIs(t, err, chip.ErrUnknownTag, "nested tag %d", tag)
	}
}

// Cutting an encoding at an element boundary right before a frame
// whose length byte equals the end sentinel value makes the sentinel
// check match early: the prefix parses as a shorter container. A cut
// at any other offset fails with ErrTruncated.
func TestDecodeTruncatedContainer(t *testing.T) {
	full := mustEncode(t, chip.NewArrayValue(chip.NewTextValue("x"), chip.NewTextValue("y")))
	require.Equal(t, []byte{2, 3, 1, 1, 'x', 3, 1, 1, 'y', 3}, full)

	shorter := map[int]chip.Value{
		2: chip.NewArrayValue(),
		6: chip.NewArrayValue(chip.NewTextValue("x")),
	}

	for i := 0; i < len(full); i++ {
		v, err := chip.Decode(full[:i])
		if want, ok := shorter[i]; ok {
			require.NoError(t, err)
			require.Empty(t, cmp.Diff(want, v, cmpopts.EquateEmpty()))
			continue
		}
		require.ErrorIs(t, err, chip.ErrTruncated, "prefix of %d bytes", i)
	}
}

func TestDecodeTruncated(t *testing.T) {
	vals := []chip.Value{
		chip.NewInt64Value(6969694200),
		chip.NewFloat64Value(math.Pi),
		chip.NewTextValue("hello"),
		chip.NewOptionalValue(chip.NewTextValue("hi")),
		chip.NewMapValue(chip.Pair{Key: chip.NewTextValue("hello"), Value: chip.NewTextValue("world")}),
	}

	for _, v := range vals {
		enc := mustEncode(t, v)
		for i := 0; i < len(enc); i++ {
			_, err := chip.Decode(enc[:i])
			require.ErrorIs(t, err, chip.ErrTruncated, "%s cut to %d bytes", v, i)
		}
	}
}

func TestDecodeAliasesInput(t *testing.T) {
	data := []byte{1, 5, 'h', 'e', 'l', 'l', 'o'}

	v, err := chip.Decode(data)
	require.NoError(t, err)

	b, ok := chip.AsBytes(v)
	require.True(t, ok)
	require.True(t, &b[0] == &data[2], "decoded bytes should alias the input")

	data[2] = 'y'
	require.Equal(t, "yello", string(b))
}

func TestDecodeConcurrent(t *testing.T) {
	enc := mustEncode(t, chip.NewMapValue(
		chip.Pair{Key: chip.NewTextValue("hello"), Value: chip.NewTextValue("world")},
		chip.Pair{Key: chip.NewTextValue("money"), Value: chip.NewInt64Value(6969694200)},
	))

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				v, err := chip.Decode(enc)
				if err != nil {
					return err
				}
				again, err := chip.Encode(v)
				if err != nil {
					return err
				}
				if !bytes.Equal(enc, again) {
					return fmt.Errorf("re-encoded bytes differ: % x", again)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func FuzzDecode(f *testing.F) {
	f.Add([]byte{2, 1, 6, 3})
	f.Add([]byte{4, 7, 1, 5, 'h', 'e', 'l', 'l', 'o', 7, 1, 5, 'w', 'o', 'r', 'l', 'd', 5})
	f.Add([]byte{9, 4, 2, 1, 6, 3})
	f.Add([]byte{0, 0x53, 0x22, 0, 0, 0, 0, 0, 0})
	f.Add([]byte{2, 3, 1, 1, 'x', 3, 1, 1, 'y', 3})
	f.Add([]byte{255})
	f.Add([]byte{2, 3})
	f.Add([]byte{14})

	f.Fuzz(func(t *testing.T, data []byte) {
		v, err := chip.Decode(data)
		if err != nil {
			return
		}

		// anything the decoder accepts must re-encode byte for byte
		enc, err := chip.Encode(v)
		if err != nil {
			t.Fatalf("cannot re-encode decoded value %s: %v", v, err)
		}
		if !bytes.Equal(enc, data) {
			t.Fatalf("re-encoding %s produced % x, want % x", v, enc, data)
		}
	})
}

func BenchmarkDecode(b *testing.B) {
	enc := mustEncode(b, chip.NewMapValue(
		chip.Pair{Key: chip.NewTextValue("hello"), Value: chip.NewTextValue("world")},
		chip.Pair{Key: chip.NewTextValue("money"), Value: chip.NewInt64Value(6969694200)},
		chip.Pair{Key: chip.NewTextValue("tags"), Value: chip.NewArrayValue(chip.NewSmallUint8Value(1), chip.NewSmallUint8Value(2))},
	))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := chip.Decode(enc); err != nil {
			b.Fatal(err)
		}
	}
}
