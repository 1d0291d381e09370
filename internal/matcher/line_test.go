package matcher

import (
	"testing"

	"github.com/vvka-141/fir/pkg/fir"
)

func TestIsCommentLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"// import utils from './utils'", true},
		{"    // indented comment", true},
		{"\t// tab indented", true},
		{"import utils from './utils' // trailing", false},
		{"/* block */", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsCommentLine(tt.line); got != tt.want {
			t.Errorf("IsCommentLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestHasImportCue(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"import utils from 'x'", true},
		{"export { a } from 'x'", true},
		{"const a = require('x')", true},
		{"<img src=\"./logo.png\">", true},
		{"url(../fonts/a.woff)", true},
		{"const important = 1", false},
		{"requirement/docs", false},
		{"const a = b", false},
	}

	for _, tt := range tests {
		if got := HasImportCue(tt.line); got != tt.want {
			t.Errorf("HasImportCue(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestIsReference_PathSegmentMode(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"es import", "import utils from './utils.js'", true},
		{"named import", "import { a } from '../lib/utils'", true},
		{"require", "const u = require('./utils')", true},
		{"dynamic import", "const m = await import('./utils')", true},
		{"re-export", "export * from './utils'", true},
		{"commented out", "// import utils from './utils.js'", false},
		{"longer file name", "import x from './utilsHelper.js'", false},
		{"bare word only", "utils.doThing()", false},
		{"segment without cue", "const p = 'lib/utils'", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsReference(tt.line, "utils", fir.ModePathSegment); got != tt.want {
				t.Errorf("IsReference(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestIsReference_WordMode(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"es import", "import utils from './utils.js'", true},
		{"package import", "import utils from 'utils'", true},
		{"require", "const utils = require('utils')", true},
		{"commented line still counts", "// import utils from 'utils'", true},
		{"no keyword", "utils.doThing()", false},
		{"from only", "export { a } from './utils'", false},
		{"longer word", "import x from './utilsHelper'", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsReference(tt.line, "utils", fir.ModeWord); got != tt.want {
				t.Errorf("IsReference(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestContainsTarget(t *testing.T) {
	content := "import a from 'utils'\nconst b = utils\n"
	if ContainsTarget(content, "utils", fir.ModePathSegment) {
		t.Error("path mode should require a separator")
	}
	if !ContainsTarget(content, "utils", fir.ModeWord) {
		t.Error("word mode should match a bare word")
	}
	if !ContainsTarget("import a from './utils'", "utils", fir.ModePathSegment) {
		t.Error("path mode should match './utils'")
	}
}
