// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	stubFs(t, map[string]string{
		"/cfg/bench.yaml": "repeats: 1\n",
	})

	tests := []struct {
		name      string
		src       string
		wantErr   error
		wantBytes []byte
	}{
		{
			name:    "empty source returns error",
			src:     "",
			wantErr: ErrGetConfigFile,
		},
		{
			name:      "local file is read from the filesystem",
			src:       "/cfg/bench.yaml",
			wantBytes: []byte("repeats: 1\n"),
		},
		{
			name:    "unreachable git source",
			src:     "git::http://notexist.invalid//bench.yaml",
			wantErr: ErrGetConfigFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Fetch(context.Background(), tt.src)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, b)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantBytes, b)
		})
	}
}

func TestFetch_LocalViaGetter(t *testing.T) {
	// Not on the stubbed filesystem, so go-getter's file getter reads it from disk.
	stubFs(t, nil)

	b, err := Fetch(context.Background(), "./testdata/lfbench.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(b), "repeats: 5")
}

func TestSplitFileNameFromGetterURL(t *testing.T) {
	tests := []struct {
		url      string
		wantURL  string
		wantFile string
	}{
		{
			url:      "git::https://github.com/org/repo//bench.yaml",
			wantURL:  "git::https://github.com/org/repo",
			wantFile: "bench.yaml",
		},
		{
			url:      "git::https://github.com/org/repo//configs/bench.hcl?ref=v1.2.0",
			wantURL:  "git::https://github.com/org/repo//configs?ref=v1.2.0",
			wantFile: "bench.hcl",
		},
		{
			url: "https://example.com/bench.yaml",
		},
		{
			url: "git::https://github.com/org/repo//",
		},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			gotURL, gotFile := splitFileNameFromGetterURL(tt.url)
			assert.Equal(t, tt.wantURL, gotURL)
			assert.Equal(t, tt.wantFile, gotFile)
		})
	}
}
