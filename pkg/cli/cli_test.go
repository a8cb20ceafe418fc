package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func fakeService(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/maskit/api/info":
			_, _ = w.Write([]byte(`{"version":"0.9","features":"randomize"}`))
		case "/maskit/api/process":
			if r.PostForm.Get("text") == "fail\n" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte("Bad input"))
				return
			}
			_, _ = w.Write([]byte(`{"result":"Jan_[Petr] bydlí\nv Brně","stats":"<table>stats</table>"}`))
		case "/soudec/api/detect":
			_, _ = w.Write([]byte(`{"result":"zdroj"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name:  "defaults keep everything",
			stdin: "A_[B] C",
			args:  []string{"render"},
			want:  "A_[B] C\n",
		},
		{
			name:  "hide originals",
			stdin: "A_[B] C\nD_[E]",
			args:  []string{"render", "--hide-originals"},
			want:  "A C\nD\n",
		},
		{
			name:  "display markers",
			stdin: "a\nb",
			args:  []string{"render", "--display"},
			want:  "a\n<br>b\n",
		},
		{
			name:  "html highlighting",
			stdin: `<span class="replacement-text">Jan</span> žije`,
			args:  []string{"render", "--format", "html", "--no-highlighting"},
			want:  "Jan žije\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRenderCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("X_[Y]"), 0o644))

	out, err := run(t, "", "render", "--hide-originals", path)
	require.NoError(t, err)
	assert.Equal(t, "X\n", out)
}

func TestProcessCommand(t *testing.T) {
	server := fakeService(t)
	dir := t.TempDir()
	statsPath := filepath.Join(dir, "statistics.html")

	out, err := run(t, "Petr bydlí v Brně\n",
		"--base-url", server.URL, "process", "--hide-originals", "--save", dir, "--stats", statsPath)
	require.NoError(t, err)
	assert.Equal(t, "Jan bydlí\nv Brně\n", out)

	saved, err := os.ReadFile(filepath.Join(dir, "citations.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Jan bydlí\nv Brně", string(saved))

	stats, err := os.ReadFile(statsPath)
	require.NoError(t, err)
	assert.Equal(t, "<table>stats</table>", string(stats))
}

func TestProcessCommand_RemoteError(t *testing.T) {
	server := fakeService(t)

	_, err := run(t, "fail\n", "--base-url", server.URL, "process")
	require.Error(t, err)
	assert.Equal(t, "An error occurred: Bad input", err.Error())
}

func TestProcessCommand_ExclusiveFlags(t *testing.T) {
	_, err := run(t, "x", "process", "--randomize", "--classes")
	require.Error(t, err)
}

func TestDetectCommand(t *testing.T) {
	server := fakeService(t)

	out, err := run(t, "text", "--base-url", server.URL, "detect")
	require.NoError(t, err)
	assert.Equal(t, "zdroj\n", out)
}

func TestInfoCommand(t *testing.T) {
	server := fakeService(t)

	out, err := run(t, "", "--base-url", server.URL, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "(online)")
	assert.Contains(t, out, "Version:  0.9")
	assert.Contains(t, out, "Features: randomize")
}

func TestInfoCommand_Offline(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	out, err := run(t, "", "--base-url", server.URL, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "(offline)")
	assert.Contains(t, out, "Version:  unknown")
}

func TestConfigDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "maskit.yaml"), []byte("display:\n  show_originals: false\n"), 0o644))

	out, err := run(t, "A_[B]", "--config-dir", dir, "render")
	require.NoError(t, err)
	assert.Equal(t, "A\n", out)
}
