package main

import (
	"strings"
	"testing"

	"github.com/automoto/trailgunner/assets"
)

func TestSelectLevel(t *testing.T) {
	levels := []assets.Level{{Name: "arena"}, {Name: "canyon"}}

	tests := []struct {
		name    string
		level   string
		want    int
		wantErr string
	}{
		{name: "default", level: "", want: 0},
		{name: "by name", level: "canyon", want: 1},
		{name: "with extension", level: "canyon.tmx", want: 1},
		{name: "unknown", level: "moon", wantErr: `unknown level "moon"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectLevel(levels, tt.level)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("selectLevel: %v", err)
			}
			if got != tt.want {
				t.Fatalf("index = %d, want %d", got, tt.want)
			}
		})
	}
}
