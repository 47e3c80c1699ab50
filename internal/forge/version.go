// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package forge

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/hashicorp/go-version"

	"github.com/samthorne/draftforge/internal/errors"
)

// MinSimVersion is the oldest Forge release whose CLI exposes the sim
// subcommand.
var MinSimVersion = version.Must(version.NewVersion("1.6.0"))

var jarVersionPattern = regexp.MustCompile(`forge-gui-desktop-(\d+(?:\.\d+)+)`)

// JarVersion parses the Forge release out of an archive filename such as
// forge-gui-desktop-2.0.01-jar-with-dependencies.jar.
func JarVersion(jar string) (*version.Version, error) {
	m := jarVersionPattern.FindStringSubmatch(filepath.Base(jar))
	if m == nil {
		return nil, fmt.Errorf("no forge version in jar name %q", jar)
	}
	return version.NewVersion(m[1])
}

// CheckJar verifies the archive is new enough to run simulations and returns
// the detected version.
func CheckJar(jar string) (*version.Version, error) {
	v, err := JarVersion(jar)
	if err != nil {
		return nil, err
	}
	if v.LessThan(MinSimVersion) {
		return v, errors.WrapUnsupportedForge(v.String(), MinSimVersion.String())
	}
	return v, nil
}
