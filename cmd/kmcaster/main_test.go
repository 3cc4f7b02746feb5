package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindUserConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  string
		want string
	}{
		{name: "none", args: []string{"-k", "3"}},
		{name: "separate value", args: []string{"cast", "--config", "a.yaml"}, want: "a.yaml"},
		{name: "equals", args: []string{"--config=b.toml", "keys"}, want: "b.toml"},
		{name: "dangling flag", args: []string{"--config"}},
		{name: "env", env: "c.json", want: "c.json"},
		{name: "flag beats env", args: []string{"--config", "d.json"}, env: "c.json", want: "d.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("KMCASTER_CONFIG", tt.env)
			assert.Equal(t, tt.want, findUserConfig(tt.args))
		})
	}
}
