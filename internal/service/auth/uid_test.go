package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeUID(t *testing.T) {
	assert.Equal(t, "MQ", EncodeUID(1))
	assert.Equal(t, "NDI", EncodeUID(42))
	assert.Equal(t, "MTIz", EncodeUID(123))
}

func TestDecodeUID(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{input: "MQ", want: 1},
		{input: "MQ==", want: 1},
		{input: "NDI", want: 42},
		{input: "MTIz", want: 123},
		{input: "!!!", wantErr: true},
		{input: "YWJj", wantErr: true}, // "abc"
		{input: "MA", wantErr: true},   // "0"
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := DecodeUID(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidUID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, id := range []int64{1, 9, 10, 99999, 1 << 40} {
		got, err := DecodeUID(EncodeUID(id))
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}
