package sorter_test

import (
	"testing"

	"chest-sorter/core/reconcile"
	"chest-sorter/core/sorter"

	"github.com/stretchr/testify/assert"
)

func TestConfig_ParsedMode(t *testing.T) {
	tests := []struct {
		name string
		mode string
		want reconcile.Mode
	}{
		{"Alpha", "alpha", reconcile.ModeAlpha},
		{"Count", "COUNT", reconcile.ModeCount},
		{"Type", " type ", reconcile.ModeType},
		{"Invalid", "random", reconcile.ModeAlpha},
		{"Empty", "", reconcile.ModeAlpha},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sorter.Config{Mode: tt.mode}.ParsedMode())
		})
	}
}
