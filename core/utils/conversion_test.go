package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		in   any
		want int
	}{
		{int64(54), 54},
		{uint8(3), 3},
		{float64(9.7), 9},
		{"27", 27},
		{[]byte("64"), 64},
		{"abc", 0},
		{nil, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToInt(tt.in), "%#v", tt.in)
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "chest-1", ToString([]byte("chest-1")))
	assert.Equal(t, "12", ToString(12))
}

func TestToBool(t *testing.T) {
	for _, v := range []any{true, 1, int64(1), "true", "ON", " yes ", []byte("1")} {
		assert.True(t, ToBool(v), "%#v", v)
	}
	for _, v := range []any{false, 0, "off", "no", "", []byte("0"), 3.0} {
		assert.False(t, ToBool(v), "%#v", v)
	}
}
