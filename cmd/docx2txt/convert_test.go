package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docx2txt/internal/container"
	"github.com/pdiddy/docx2txt/internal/docx/docxtest"
	"github.com/pdiddy/docx2txt/internal/logger"
	"github.com/pdiddy/docx2txt/pkg/types"
)

func TestResolveConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		args    []string
		want    types.ConversionConfig
		wantErr string
	}{
		{
			name: "defaults to current directory",
			want: types.ConversionConfig{InputDir: ".", OutputDir: ".", Backend: types.BackendNative, LogLevel: "info"},
		},
		{
			name: "output defaults to input argument",
			args: []string{"docs"},
			want: types.ConversionConfig{InputDir: "docs", OutputDir: "docs", Backend: types.BackendNative, LogLevel: "info"},
		},
		{
			name: "both arguments",
			args: []string{"docs", "txt"},
			want: types.ConversionConfig{InputDir: "docs", OutputDir: "txt", Backend: types.BackendNative, LogLevel: "info"},
		},
		{
			name: "environment",
			env: map[string]string{
				"DOCX2TXT_INPUT_DIR":  "/data/in",
				"DOCX2TXT_OUTPUT_DIR": "/data/out",
				"DOCX2TXT_BACKEND":    "pandoc",
				"DOCX2TXT_REPORT":     "run.yaml",
			},
			want: types.ConversionConfig{
				InputDir: "/data/in", OutputDir: "/data/out", Backend: types.BackendPandoc,
				ReportPath: "run.yaml", LogLevel: "info",
			},
		},
		{
			name: "arguments override environment",
			env:  map[string]string{"DOCX2TXT_INPUT_DIR": "/data/in"},
			args: []string{"local"},
			want: types.ConversionConfig{InputDir: "local", OutputDir: "local", Backend: types.BackendNative, LogLevel: "info"},
		},
		{
			name:    "unknown backend",
			env:     map[string]string{"DOCX2TXT_BACKEND": "libreoffice"},
			wantErr: `unknown backend "libreoffice"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			v := viper.New()
			configureViper(v, filepath.Join(t.TempDir(), "absent.yaml"))

			got, err := resolveConfig(v, tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveConfig_File(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "docx2txt.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input_dir: /srv/docs\noutput_dir: /srv/text\nlog_level: debug\n"), 0o644))

	v := viper.New()
	configureViper(v, cfgPath)
	require.NoError(t, v.ReadInConfig())

	got, err := resolveConfig(v, nil)
	require.NoError(t, err)
	assert.Equal(t, "/srv/docs", got.InputDir)
	assert.Equal(t, "/srv/text", got.OutputDir)
	assert.Equal(t, "debug", got.LogLevel)
}

// stubReader returns a fixed result.
type stubReader struct {
	paras []string
	err   error
}

func (s stubReader) ReadParagraphs(string) ([]string, error) { return s.paras, s.err }

func TestLoggingReader(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, logger.LevelDebug)

	r := &loggingReader{next: stubReader{paras: []string{"a", "b"}}, log: log}
	paras, err := r.ReadParagraphs("x.docx")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, paras)
	assert.Contains(t, buf.String(), "read 2 paragraph(s) from x.docx")

	r = &loggingReader{next: stubReader{err: errors.New("bad")}, log: log}
	_, err = r.ReadParagraphs("y.docx")
	assert.EqualError(t, err, "bad")
	assert.Contains(t, buf.String(), "reading y.docx: bad")
}

func TestNewReader_PandocWithoutRuntime(t *testing.T) {
	orig := detectRuntime
	t.Cleanup(func() { detectRuntime = orig })
	detectRuntime = func() (container.Runtime, error) {
		return nil, errors.New("no container runtime available")
	}

	r, err := newReader(types.BackendPandoc, logger.Discard())
	require.Error(t, err)
	assert.Nil(t, r)
}

func TestConvertCommand(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	docxtest.Write(t, filepath.Join(in, "report.docx"), "A", "B")
	require.NoError(t, os.WriteFile(filepath.Join(in, "notes.txt"), []byte("ignored"), 0o644))
	reportPath := filepath.Join(out, "report.yaml")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"convert", in, out, "--report", reportPath})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(filepath.Join(out, "report.txt"))
	require.NoError(t, err)
	assert.Equal(t, "A\nB", string(data))
	assert.NoFileExists(t, filepath.Join(out, "notes.txt"))
	assert.FileExists(t, reportPath)
	assert.Contains(t, stdout.String(), "Conversion complete: 1 converted, 0 failed.")
}
