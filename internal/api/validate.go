// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"fmt"
	"net"
	"strconv"
)

// ValidateListenAddr checks that addr is a host:port pair usable by
// net.Listen. The host may be empty (listen on all interfaces).
func ValidateListenAddr(addr string) error {
	if addr == "" {
		return fmt.Errorf("listen address cannot be empty")
	}

	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("invalid listen address format: %w", err)
	}

	if port == "" {
		return fmt.Errorf("listen address must include a port")
	}

	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("port must be numeric, got %q", port)
	}

	if n < 0 || n > 65535 {
		return fmt.Errorf("port must be between 0 and 65535, got %d", n)
	}

	return nil
}
