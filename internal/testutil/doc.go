// SPDX-License-Identifier: MPL-2.0

// Package testutil holds helpers for tests that mutate process-wide state.
//
// Each helper fails the test when setup does not succeed and hands back a
// cleanup function restoring the working directory or environment variable
// it touched.
package testutil
