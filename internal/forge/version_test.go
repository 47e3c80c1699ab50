// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package forge

import (
	stderrors "errors"
	"testing"

	"github.com/samthorne/draftforge/internal/config"
	"github.com/samthorne/draftforge/internal/errors"
)

func TestJarVersion(t *testing.T) {
	tests := []struct {
		name    string
		jar     string
		want    string
		wantErr bool
	}{
		{"default archive", config.DefaultJar, "2.0.1", false},
		{"older release", "forge-gui-desktop-1.6.63-jar-with-dependencies.jar", "1.6.63", false},
		{"full path", "/opt/forge/forge-gui-desktop-2.0.01-jar-with-dependencies.jar", "2.0.1", false},
		{"no version", "forge.jar", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := JarVersion(tt.jar)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("JarVersion(%q) = %v, want error", tt.jar, v)
				}
				return
			}
			if err != nil {
				t.Fatalf("JarVersion(%q) error: %v", tt.jar, err)
			}
			if v.String() != tt.want {
				t.Errorf("JarVersion(%q) = %s, want %s", tt.jar, v, tt.want)
			}
		})
	}
}

func TestCheckJar(t *testing.T) {
	v, err := CheckJar(config.DefaultJar)
	if err != nil {
		t.Fatalf("CheckJar() error: %v", err)
	}
	if v.LessThan(MinSimVersion) {
		t.Errorf("default archive %s predates sim support", v)
	}
}

func TestCheckJar_TooOld(t *testing.T) {
	v, err := CheckJar("forge-gui-desktop-1.5.28-jar-with-dependencies.jar")
	if !stderrors.Is(err, errors.ErrUnsupportedForge) {
		t.Fatalf("err = %v, want ErrUnsupportedForge", err)
	}
	if v == nil || v.String() != "1.5.28" {
		t.Errorf("detected version = %v, want 1.5.28", v)
	}
}
