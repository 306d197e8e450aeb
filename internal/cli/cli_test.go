package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
	"github.com/Joshrizika/Chat-Pilot/internal/infra/workspacefinder"
)

const aliceBobBook = `contacts:
  - given_name: Alice
    family_name: Smith
    phones:
      - label: mobile
        number: "555-0100"
  - given_name: Bob
    family_name: Jones
    phones:
      - label: home
        number: "555-0199"
`

type deniedStore struct{}

func (deniedStore) RequestAccess(context.Context) (bool, error) { return false, nil }

func (deniedStore) EnumerateContacts(context.Context, []domain.Field, func(domain.Contact) error) error {
	panic("enumerated after access was denied")
}

// testEnv runs commands from a fresh workspace and keeps logs and user config inside it.
func testEnv(t *testing.T, config string, files map[string]string) (*env, *bytes.Buffer, *bytes.Buffer, string) {
	t.Helper()

	root := t.TempDir()
	if config != "" {
		files[workspacefinder.ConfigFile] = config
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	var stdout, stderr bytes.Buffer
	e := newEnv(&stdout, &stderr)
	e.wd = root
	e.cacheDir = func() (string, error) { return filepath.Join(root, "cache"), nil }
	e.finder.UserConfigDir = func() (string, error) { return "", nil }
	e.catalog.AddressBookRoot = filepath.Join(root, "no-addressbook")
	return e, &stdout, &stderr, root
}

const yamlSourceConfig = "fetchcontacts:\n  source:\n    kind: yaml\n    path: book.yaml\n"

func TestExport_AliceAndBob(t *testing.T) {
	e, stdout, stderr, _ := testEnv(t, yamlSourceConfig, map[string]string{"book.yaml": aliceBobBook})

	if code := e.run(nil); code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr=%q)", code, stderr.String())
	}

	want := "{\n  \"Alice Smith\": \"5550100\"\n}\n"
	if stdout.String() != want {
		t.Fatalf("expected stdout %q, got %q", want, stdout.String())
	}
	if stderr.Len() != 0 {
		t.Fatalf("expected empty stderr, got %q", stderr.String())
	}
}

func TestExport_AutoPicksWorkspaceYAMLWithoutConfig(t *testing.T) {
	e, stdout, _, _ := testEnv(t, "", map[string]string{"contacts.yaml": aliceBobBook})

	if code := e.run(nil); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), `"Alice Smith": "5550100"`) {
		t.Fatalf("expected Alice in output, got %q", stdout.String())
	}
}

func TestExport_AccessDenied(t *testing.T) {
	e, stdout, stderr, _ := testEnv(t, yamlSourceConfig, map[string]string{})
	e.store = deniedStore{}

	if code := e.run(nil); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected nothing on stdout, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "Access to contacts was denied") {
		t.Fatalf("expected denial message on stderr, got %q", stderr.String())
	}
}

func TestExport_EnumerationFailureStillSucceeds(t *testing.T) {
	e, stdout, stderr, _ := testEnv(t, yamlSourceConfig, map[string]string{})

	if code := e.run(nil); code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr=%q)", code, stderr.String())
	}
	if stdout.String() != "{}\n" {
		t.Fatalf("expected empty object, got %q", stdout.String())
	}
}

func TestExport_YAMLOutput(t *testing.T) {
	cfg := yamlSourceConfig + "  output:\n    format: yaml\n"
	e, stdout, _, _ := testEnv(t, cfg, map[string]string{"book.yaml": aliceBobBook})

	if code := e.run(nil); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if strings.TrimSpace(stdout.String()) != `Alice Smith: "5550100"` {
		t.Fatalf("unexpected yaml output %q", stdout.String())
	}
}

func TestExport_InvalidConfigExitsOne(t *testing.T) {
	e, stdout, stderr, _ := testEnv(t, "fetchcontacts:\n  source:\n    kind: outlook\n", map[string]string{})

	if code := e.run(nil); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected nothing on stdout, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "source.kind") {
		t.Fatalf("expected field in message, got %q", stderr.String())
	}
}

func TestExport_WritesLogUnderWorkspace(t *testing.T) {
	e, _, _, root := testEnv(t, yamlSourceConfig, map[string]string{"book.yaml": aliceBobBook})

	if code := e.run([]string{"--debug"}); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}

	b, err := os.ReadFile(filepath.Join(root, ".fetchcontacts", "logs", "fetchcontacts.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, event := range []string{"source.selected", "contacts.read", "export.done"} {
		if !bytes.Contains(b, []byte(event)) {
			t.Fatalf("expected %s in log, got:\n%s", event, b)
		}
	}
}

func TestLookup(t *testing.T) {
	e, stdout, stderr, _ := testEnv(t, yamlSourceConfig, map[string]string{"book.yaml": aliceBobBook})

	if code := e.run([]string{"lookup", "alice", "smith"}); code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr=%q)", code, stderr.String())
	}
	if stdout.String() != "5550100\n" {
		t.Fatalf("expected number, got %q", stdout.String())
	}
}

func TestLookup_NotFound(t *testing.T) {
	e, stdout, stderr, _ := testEnv(t, yamlSourceConfig, map[string]string{"book.yaml": aliceBobBook})

	if code := e.run([]string{"lookup", "Bob Jones"}); code != 1 {
		t.Fatalf("expected exit 1 for a contact without mobile, got %d", code)
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected nothing on stdout, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), `Contact "Bob Jones" not found`) {
		t.Fatalf("unexpected message %q", stderr.String())
	}
}

func TestLookup_FromExportFile(t *testing.T) {
	e, stdout, stderr, root := testEnv(t, "", map[string]string{
		"export.json": "{\n  \"Alice Smith\": \"5550100\"\n}\n",
	})

	if code := e.run([]string{"lookup", "--from", filepath.Join(root, "export.json"), "Alice Smith"}); code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr=%q)", code, stderr.String())
	}
	if stdout.String() != "5550100\n" {
		t.Fatalf("expected number, got %q", stdout.String())
	}
}

func TestSources_ListsConfiguredSource(t *testing.T) {
	e, stdout, _, root := testEnv(t, yamlSourceConfig, map[string]string{"book.yaml": aliceBobBook})

	if code := e.run([]string{"sources"}); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	out := stdout.String()
	if !strings.Contains(out, filepath.Join(root, "book.yaml")) || !strings.Contains(out, "yaml") {
		t.Fatalf("expected yaml source in output, got:\n%s", out)
	}
}

func TestInit_WritesConfig(t *testing.T) {
	e, stdout, _, _ := testEnv(t, "", map[string]string{})
	dir := filepath.Join(t.TempDir(), "ws")

	if code := e.run([]string{"init", dir}); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if _, err := os.Stat(filepath.Join(dir, workspacefinder.ConfigFile)); err != nil {
		t.Fatalf("expected config written: %v", err)
	}
	if !strings.Contains(stdout.String(), dir) {
		t.Fatalf("expected directory in output, got %q", stdout.String())
	}
}

func TestVersion(t *testing.T) {
	e, stdout, _, _ := testEnv(t, "", map[string]string{})

	if code := e.run([]string{"version"}); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.HasPrefix(stdout.String(), "fetchcontacts dev") {
		t.Fatalf("unexpected version output %q", stdout.String())
	}
}

func TestUnknownFlagExitsOne(t *testing.T) {
	e, _, stderr, _ := testEnv(t, "", map[string]string{})

	if code := e.run([]string{"--bogus"}); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "bogus") {
		t.Fatalf("expected flag named in error, got %q", stderr.String())
	}
}
