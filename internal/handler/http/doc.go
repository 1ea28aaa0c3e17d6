// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local HTTP API of the vault.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging and session authentication are handled in this package
// before requests are delegated to the service layer.
package http
