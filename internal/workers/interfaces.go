// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background activity of the vault. Each worker
// starts its own goroutine in Run and is stopped with Stop.
package workers

// Worker is a background job. Run must not block.
type Worker interface {
	Run()
	Stop()
}
