package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "mathcoach_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "mathcoach_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "mathcoach_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "mathcoach_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "mathcoach_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "mathcoach_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "mathcoach_Windows_arm64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	input := "abc123  mathcoach_Darwin_all.tar.gz\n" +
		"badline\n" +
		"  \n" +
		"foo  bar  baz\n" +
		"def456  mathcoach_Linux_x86_64.tar.gz\n"

	got := parseChecksums([]byte(input))

	// Malformed lines are skipped, valid ones keyed by asset name.
	assert.Equal(t, map[string]string{
		"mathcoach_Darwin_all.tar.gz":   "abc123",
		"mathcoach_Linux_x86_64.tar.gz": "def456",
	}, got)

	assert.Empty(t, parseChecksums(nil))
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("hello world")
	sum := sha256.Sum256(data)

	assert.NoError(t, verifyChecksum(data, hex.EncodeToString(sum[:])))

	err := verifyChecksum(data, "0000000000000000000000000000000000000000000000000000000000000000")
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	payload := []byte("#!/bin/sh\necho mathcoach")

	got, err := extractBinary(buildTarGz(t, "mathcoach", payload), "mathcoach_Darwin_all.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	_, err = extractBinary(buildTarGz(t, "other-file", payload), "mathcoach_Darwin_all.tar.gz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyUpdatePreservesMode(t *testing.T) {
	target := filepath.Join(t.TempDir(), "mathcoach")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	newData := []byte("new-binary-content")
	sum := sha256.Sum256(newData)
	require.NoError(t, applyUpdate(newData, target, sum[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

// fakeRelease serves the three endpoints Update hits: latest-release
// metadata, the platform archive, and checksums.txt. Empty archive or
// checksums means 404 for that path.
type fakeRelease struct {
	tag       string
	asset     string
	archive   []byte
	checksums string
}

func (f fakeRelease) serve(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/mathcoach-dev/mathcoach/releases/latest":
			_, _ = w.Write([]byte(`{"tag_name":"` + f.tag + `","html_url":"https://example.com/` + f.tag + `"}`))
		case "/mathcoach-dev/mathcoach/releases/download/" + f.tag + "/" + f.asset:
			if f.archive == nil {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write(f.archive)
		case "/mathcoach-dev/mathcoach/releases/download/" + f.tag + "/checksums.txt":
			if f.checksums == "" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write([]byte(f.checksums))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestUpdate(t *testing.T) {
	asset, err := assetNameFor(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)
	binaryContent := []byte("new-mathcoach-binary")
	archive := buildTarGz(t, "mathcoach", binaryContent)
	archiveSum := sha256.Sum256(archive)

	t.Run("happy path", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "mathcoach")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		srv := fakeRelease{
			tag:       "v2.0.0",
			asset:     asset,
			archive:   archive,
			checksums: hex.EncodeToString(archiveSum[:]) + "  " + asset + "\n",
		}.serve(t)

		checker := NewChecker(
			WithBaseURL(srv.URL),
			WithDownloadBaseURL(srv.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)

		assert.Equal(t, []string{StageCheck, StageDownload, StageVerify, StageExtract, StageApply, StageDone}, stages)
	})

	t.Run("dev build", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		srv := fakeRelease{tag: "v1.0.0"}.serve(t)

		checker := NewChecker(WithBaseURL(srv.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		srv := fakeRelease{
			tag:       "v2.0.0",
			asset:     asset,
			archive:   archive,
			checksums: "0000000000000000000000000000000000000000000000000000000000000000  " + asset + "\n",
		}.serve(t)

		checker := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		srv := fakeRelease{tag: "v2.0.0"}.serve(t)

		checker := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// buildTarGz creates a tar.gz archive containing a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
