// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sep = string(os.PathSeparator)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		sep   string
		want  []string
	}{
		{
			name:  "simple",
			value: `C:\A;C:\B`,
			sep:   ";",
			want:  []string{`C:\A`, `C:\B`},
		},
		{
			name:  "blank and trailing entries",
			value: `C:\A;;C:\B;`,
			sep:   ";",
			want:  []string{`C:\A`, `C:\B`},
		},
		{
			name:  "whitespace-only entry",
			value: "/usr/bin: :/bin",
			sep:   ":",
			want:  []string{"/usr/bin", "/bin"},
		},
		{
			name:  "duplicates are kept",
			value: `C:\A;C:\B;C:\A`,
			sep:   ";",
			want:  []string{`C:\A`, `C:\B`, `C:\A`},
		},
		{
			name:  "empty value",
			value: "",
			sep:   ";",
			want:  nil,
		},
		{
			name:  "default separator",
			value: "a" + DefaultListSeparator + "b",
			sep:   "",
			want:  []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.value, tt.sep))
		})
	}
}

func TestSplitExtensions(t *testing.T) {
	assert.Nil(t, SplitExtensions("", ";"))
	assert.Equal(t, []string{".EXE", ".BAT"}, SplitExtensions(".EXE;.BAT", ";"))
	assert.Equal(t, []string{".EXE", "", ".BAT"}, SplitExtensions(".EXE;;.BAT", ";"))
	assert.Equal(t, []string{".EXE", ".BAT"}, SplitExtensions(".EXE;.BAT", ""), "empty sep defaults to ;")
	assert.Equal(t, []string{".EXE:.BAT"}, SplitExtensions(".EXE:.BAT", ""))
}

func TestHasExtensionMarker(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"test", false},
		{"test.txt", true},
		{"test.", true},
		{"te*t", true},
		{"te?t", true},
		{"", false},
	}

	for _, tt := range tests {
		if got := HasExtensionMarker(tt.input); got != tt.want {
			t.Errorf("HasExtensionMarker(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestExpandExtensions(t *testing.T) {
	tests := []struct {
		name string
		base string
		exts []string
		want []string
	}{
		{
			name: "lower-cases extensions",
			base: "test",
			exts: []string{".EXE", ".BAT"},
			want: []string{"test.exe", "test.bat"},
		},
		{
			name: "empty extension is the bare name",
			base: "test",
			exts: []string{".EXE", "", ".BAT"},
			want: []string{"test.exe", "test", "test.bat"},
		},
		{
			name: "duplicates dropped",
			base: "test",
			exts: []string{".EXE", ".exe", ".BAT"},
			want: []string{"test.exe", "test.bat"},
		},
		{
			name: "base name case preserved",
			base: "Test",
			exts: []string{".CMD"},
			want: []string{"Test.cmd"},
		},
		{
			name: "whitespace kept verbatim",
			base: "test",
			exts: []string{".EXE", " .BAT"},
			want: []string{"test.exe", "test .bat"},
		},
		{
			name: "no extensions",
			base: "test",
			exts: nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandExtensions(tt.base, tt.exts))
		})
	}
}

func TestWithTrailingSeparator(t *testing.T) {
	assert.Equal(t, "dir"+sep, WithTrailingSeparator("dir"))
	assert.Equal(t, "dir"+sep, WithTrailingSeparator("dir"+sep))
	assert.Equal(t, "", WithTrailingSeparator(""))
}

func TestJoinFile(t *testing.T) {
	assert.Equal(t, "dir"+sep+"file.txt", JoinFile("dir", "file.txt"))
	assert.Equal(t, "dir"+sep+"file.txt", JoinFile("dir"+sep, "file.txt"))
}

func TestContainsDir(t *testing.T) {
	base := sep + "opt" + sep + "Tools"
	dirs := []string{sep + "usr" + sep + "bin", base}

	tests := []struct {
		name string
		dir  string
		want bool
	}{
		{name: "exact", dir: base, want: true},
		{name: "different case", dir: sep + "OPT" + sep + "tools", want: true},
		{name: "trailing separator on query", dir: base + sep, want: true},
		{name: "not present", dir: sep + "opt", want: false},
		{name: "prefix is not a match", dir: base + "2", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsDir(dirs, tt.dir))
		})
	}

	t.Run("trailing separator in list", func(t *testing.T) {
		assert.True(t, ContainsDir([]string{base + sep}, base))
	})

	t.Run("root", func(t *testing.T) {
		assert.True(t, ContainsDir([]string{sep}, sep))
	})
}
