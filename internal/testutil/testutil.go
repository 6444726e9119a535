// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"testing"
)

// MustChdir enters dir and returns a func that restores the previous
// working directory. Failing to enter dir fails the test immediately.
func MustChdir(t testing.TB, dir string) func() {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to read working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to enter %s: %v", dir, err)
	}
	return func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("failed to return to %s: %v", prev, err)
		}
	}
}

// MustSetenv sets key to value and returns a func that restores the
// variable to its previous state, unsetting it when it was absent.
func MustSetenv(t testing.TB, key, value string) func() {
	t.Helper()
	restore := envRestorer(t, key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set %s: %v", key, err)
	}
	return restore
}

// MustUnsetenv clears key and returns a func that restores the previous
// value, if there was one.
func MustUnsetenv(t testing.TB, key string) func() {
	t.Helper()
	restore := envRestorer(t, key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to clear %s: %v", key, err)
	}
	return restore
}

// envRestorer captures the current state of key and returns a func that
// reinstates it.
func envRestorer(t testing.TB, key string) func() {
	t.Helper()
	value, present := os.LookupEnv(key)
	return func() {
		var err error
		if present {
			err = os.Setenv(key, value)
		} else {
			err = os.Unsetenv(key)
		}
		if err != nil {
			t.Errorf("failed to restore %s: %v", key, err)
		}
	}
}
