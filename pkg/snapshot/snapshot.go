// Package snapshot compares values against JSON files kept under testdata/
package snapshot

import (
	"encoding/json"
	"fmt"
	"holdem-server/internal/util"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var (
	mu    sync.Mutex
	calls = make(map[string]int)
)

// Validate compares obj, encoded as indented JSON, with the next snapshot for the running test
// The snapshot is written instead when it does not exist yet or when
// HOLDEM_UPDATE_SNAPSHOTS is set.
func Validate(t *testing.T, obj interface{}, msgAndArgs ...interface{}) {
	t.Helper()

	filename := nextFilename(t.Name())
	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if !assert.NoError(t, err, msgAndArgs...) {
		return
	}

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) || util.Getenv("HOLDEM_UPDATE_SNAPSHOTS", "") != "" {
		write(t, filename, objJSON)
		return
	} else if !assert.NoError(t, err, msgAndArgs...) {
		return
	}

	if !assert.Equal(t, strings.TrimSpace(string(expects)), strings.TrimSpace(string(objJSON)), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

func nextFilename(testName string) string {
	mu.Lock()
	defer mu.Unlock()

	name := strings.ReplaceAll(testName, "/", "_")
	call := calls[name]
	calls[name] = call + 1

	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, call))
}

func write(t *testing.T, filename string, data []byte) {
	t.Helper()

	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filename, append(data, '\n'), 0644); err != nil { // nolint:gosec
		t.Fatal(err)
	}
}
