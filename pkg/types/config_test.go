// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversionConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      ConversionConfig
		want    ConversionConfig
		wantErr bool
	}{
		{
			name: "empty config gets defaults",
			want: ConversionConfig{InputDir: ".", OutputDir: ".", Backend: BackendNative, LogLevel: "info"},
		},
		{
			name: "output follows input",
			in:   ConversionConfig{InputDir: "docs"},
			want: ConversionConfig{InputDir: "docs", OutputDir: "docs", Backend: BackendNative, LogLevel: "info"},
		},
		{
			name: "explicit values kept",
			in:   ConversionConfig{InputDir: "in", OutputDir: "out", Backend: BackendPandoc, LogLevel: "debug"},
			want: ConversionConfig{InputDir: "in", OutputDir: "out", Backend: BackendPandoc, LogLevel: "debug"},
		},
		{
			name:    "unknown backend",
			in:      ConversionConfig{Backend: "tika"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.in
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
			assert.Equal(t, ConversionRequest{InputDir: tt.want.InputDir, OutputDir: tt.want.OutputDir}, cfg.Request())
		})
	}
}
