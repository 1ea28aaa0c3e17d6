// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the local HTTP API until the process is asked to stop
// and then shuts it down gracefully.
package server
