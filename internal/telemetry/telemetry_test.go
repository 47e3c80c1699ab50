// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"context"
	"testing"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := Setup(context.Background(), "")
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}
	if shutdown == nil {
		t.Fatal("Setup() returned nil shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("noop shutdown returned %v", err)
	}
}

func TestSetup_WithEndpoint(t *testing.T) {
	// The exporter connects lazily, so setup succeeds without a collector
	// listening; shutdown then flushes against the dead endpoint.
	shutdown, err := Setup(context.Background(), "http://127.0.0.1:0")
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}
