package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate flag and value",
			args:    []string{"-a", ":8080", "-d", "dsn", "-x", "junk"},
			allowed: []string{"-a", "-d"},
			want:    []string{"-a", ":8080", "-d", "dsn"},
		},
		{
			name:    "combined flag=value",
			args:    []string{"--config=conf.json", "-a=:9090", "-z=skip"},
			allowed: []string{"--config", "-a"},
			want:    []string{"--config=conf.json", "-a=:9090"},
		},
		{
			name:    "flag without value at end",
			args:    []string{"-a"},
			allowed: []string{"-a"},
			want:    []string{"-a"},
		},
		{
			name:    "value starting with dash is not consumed",
			args:    []string{"-a", "-b", "val"},
			allowed: []string{"-a", "-b"},
			want:    []string{"-a", "-b", "val"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "1", "-b", "2"},
			allowed: []string{},
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterArgs(tc.args, tc.allowed)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"app", "-c", "settings.json", "-a", ":8080"}
	assert.Equal(t, "settings.json", JsonConfigFlags())

	os.Args = []string{"app", "-config=other.json"}
	assert.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"app", "-a", ":8080"}
	assert.Equal(t, "", JsonConfigFlags())
}
