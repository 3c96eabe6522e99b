package source

import (
	"testing"

	"github.com/spf13/afero"
)

func withMemFs(t *testing.T, files map[string]string) func() {
	t.Helper()
	prev := Fs
	mem := afero.NewMemMapFs()
	for name, content := range files {
		if err := afero.WriteFile(mem, name, []byte(content), 0o644); err != nil {
			t.Fatalf("seeding %s: %v", name, err)
		}
	}
	Fs = mem
	return func() { Fs = prev }
}

func TestOpenPlainFile(t *testing.T) {
	defer withMemFs(t, map[string]string{
		"playlist.m3u8": "#EXTM3U\n",
	})()

	buf, err := Open("playlist.m3u8")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer buf.Close()

	if string(buf.Bytes()) != "#EXTM3U\n" {
		t.Fatalf("Bytes() = %q", buf.Bytes())
	}
}

func TestOpenGzipFile(t *testing.T) {
	content := gzipBytes(t, "#EXTM3U\n#EXT-X-VERSION:3\n")
	defer withMemFs(t, map[string]string{
		"playlist.m3u8.gz": string(content),
	})()

	buf, err := Open("playlist.m3u8.gz")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer buf.Close()

	if string(buf.Bytes()) != "#EXTM3U\n#EXT-X-VERSION:3\n" {
		t.Fatalf("Bytes() = %q", buf.Bytes())
	}
}

func TestOpenTarMember(t *testing.T) {
	archive := tarBytes(t, map[string]string{
		"master.m3u8": "#EXTM3U\n",
		"other.txt":   "ignored",
	})
	defer withMemFs(t, map[string]string{
		"bundle.tar": string(archive),
	})()

	buf, err := Open("bundle.tar!master.m3u8")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer buf.Close()

	if string(buf.Bytes()) != "#EXTM3U\n" {
		t.Fatalf("Bytes() = %q", buf.Bytes())
	}
}

func TestOpenTarMemberMissing(t *testing.T) {
	archive := tarBytes(t, map[string]string{
		"master.m3u8": "#EXTM3U\n",
	})
	defer withMemFs(t, map[string]string{
		"bundle.tar": string(archive),
	})()

	if _, err := Open("bundle.tar!nope.m3u8"); err == nil {
		t.Fatal("expected an error for a missing archive member")
	}
}

func TestSplitArchiveMember(t *testing.T) {
	m, ok := splitArchiveMember("bundle.tar!master.m3u8")
	if !ok || m.archivePath != "bundle.tar" || m.name != "master.m3u8" {
		t.Fatalf("splitArchiveMember = %+v, %v", m, ok)
	}

	if _, ok := splitArchiveMember("plain.m3u8"); ok {
		t.Fatal("expected no archive member for a plain path")
	}
}
