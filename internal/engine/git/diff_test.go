package git

import (
	"strings"
	"testing"
)

func TestSplitDiffs_MultipleFiles(t *testing.T) {
	rawDiff := `diff --git a/main.go b/main.go
--- a/main.go
+++ b/main.go
@@ -1,3 +1,4 @@
 package main
+import "fmt"
diff --git a/utils.go b/utils.go
--- a/utils.go
+++ b/utils.go
@@ -5,2 +5,3 @@
 func helper() {
+    return nil
`

	diffs := SplitDiffs(rawDiff)
	if len(diffs) != 2 {
		t.Fatalf("expected 2 diffs, got %d", len(diffs))
	}

	if diffs[0].Path != "main.go" {
		t.Errorf("expected first diff path 'main.go', got %q", diffs[0].Path)
	}
	if diffs[1].Path != "utils.go" {
		t.Errorf("expected second diff path 'utils.go', got %q", diffs[1].Path)
	}
	if !strings.HasPrefix(diffs[1].Content, "diff --git a/utils.go b/utils.go\n") {
		t.Errorf("expected second diff to start with its header, got:\n%s", diffs[1].Content)
	}
	if strings.Contains(diffs[0].Content, "utils.go") {
		t.Errorf("first diff leaked into the second:\n%s", diffs[0].Content)
	}
}

func TestSplitDiffs_SingleFile(t *testing.T) {
	rawDiff := `diff --git a/README.md b/README.md
--- a/README.md
+++ b/README.md
@@ -1 +1,2 @@
+Hello
`

	diffs := SplitDiffs(rawDiff)
	if len(diffs) != 1 {
		t.Fatalf("expected 1 diff, got %d", len(diffs))
	}

	if diffs[0].Path != "README.md" {
		t.Errorf("expected path 'README.md', got %q", diffs[0].Path)
	}
	if diffs[0].Content != rawDiff {
		t.Errorf("expected content to round-trip, got:\n%s", diffs[0].Content)
	}
}

func TestSplitDiffs_PathWithSpaces(t *testing.T) {
	diffs := SplitDiffs("diff --git a/my file.txt b/my file.txt\n+x\n")
	if len(diffs) != 1 {
		t.Fatalf("expected 1 diff, got %d", len(diffs))
	}
	if diffs[0].Path != "my file.txt" {
		t.Errorf("expected path 'my file.txt', got %q", diffs[0].Path)
	}
}

func TestSplitDiffs_Empty(t *testing.T) {
	diffs := SplitDiffs("")
	if len(diffs) != 0 {
		t.Errorf("expected 0 diffs for empty input, got %d", len(diffs))
	}

	diffs = SplitDiffs("   \n\n  ")
	if len(diffs) != 0 {
		t.Errorf("expected 0 diffs for whitespace input, got %d", len(diffs))
	}
}

func TestSplitPaths(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: nil},
		{name: "single", raw: "new.txt\n", want: []string{"new.txt"}},
		{name: "nested", raw: "a.txt\ndir/b.txt\n", want: []string{"a.txt", "dir/b.txt"}},
		{name: "crlf", raw: "a.txt\r\nb.txt\r\n", want: []string{"a.txt", "b.txt"}},
		{name: "blank lines", raw: "\na.txt\n\n", want: []string{"a.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitPaths(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("index %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

// --- extractFilePath edge cases ---

func TestExtractFilePath_NoBPrefix(t *testing.T) {
	// Without a b/ prefix the raw destination path is returned.
	result := extractFilePath("a/foo.go bar.go\n@@ rest")
	if result != "bar.go" {
		t.Errorf("expected 'bar.go', got %q", result)
	}
}

func TestExtractFilePath_SinglePart(t *testing.T) {
	result := extractFilePath("a/only.go")
	if result != "only.go" {
		t.Errorf("expected 'only.go', got %q", result)
	}
}

func TestExtractFilePath_SinglePartNoAPrefix(t *testing.T) {
	result := extractFilePath("rawfile.go")
	if result != "rawfile.go" {
		t.Errorf("expected 'rawfile.go', got %q", result)
	}
}

func TestExtractFilePath_Shapes(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  string
	}{
		{
			name:  "plain",
			block: "a/main.go b/main.go\nindex 1..2 100644\n--- a/main.go\n+++ b/main.go\n@@ -1 +1 @@\n",
			want:  "main.go",
		},
		{
			name:  "quoted non-ascii",
			block: "\"a/caf\\303\\251.txt\" \"b/caf\\303\\251.txt\"\nnew file mode 100644\nindex 0..1\n--- /dev/null\n+++ \"b/caf\\303\\251.txt\"\n@@ -0,0 +1 @@\n",
			want:  "café.txt",
		},
		{
			name:  "quoted header only",
			block: "\"a/caf\\303\\251.bin\" \"b/caf\\303\\251.bin\"\nindex 1..2 100644\nBinary files differ\n",
			want:  "café.bin",
		},
		{
			name:  "path containing b/",
			block: "a/x b/y.txt b/x b/y.txt\nnew file mode 100644\nindex 0..1\n--- /dev/null\n+++ b/x b/y.txt\t\n@@ -0,0 +1 @@\n",
			want:  "x b/y.txt",
		},
		{
			name:  "path containing b/ mode change",
			block: "a/x b/y.txt b/x b/y.txt\nold mode 100644\nnew mode 100755\n",
			want:  "x b/y.txt",
		},
		{
			name:  "space with trailing tab",
			block: "a/my file.txt b/my file.txt\n--- a/my file.txt\t\n+++ b/my file.txt\t\n@@ -1 +1 @@\n",
			want:  "my file.txt",
		},
		{
			name:  "rename",
			block: "a/old.txt b/new.txt\nsimilarity index 100%\nrename from old.txt\nrename to new.txt\n",
			want:  "new.txt",
		},
		{
			name:  "quoted rename",
			block: "a/old.txt \"b/n\\303\\251w.txt\"\nsimilarity index 100%\nrename from old.txt\nrename to \"n\\303\\251w.txt\"\n",
			want:  "néw.txt",
		},
		{
			name:  "deleted",
			block: "a/gone.txt b/gone.txt\ndeleted file mode 100644\nindex 1..0\n--- a/gone.txt\n+++ /dev/null\n@@ -1 +0,0 @@\n",
			want:  "gone.txt",
		},
		{
			name:  "hunk text is not header",
			block: "a/doc.md b/doc.md\n--- a/doc.md\n+++ b/doc.md\n@@ -1 +1 @@\n-rename to other\n",
			want:  "doc.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractFilePath(tt.block); got != tt.want {
				t.Errorf("extractFilePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitDiffs_KeepsRawContent(t *testing.T) {
	raw := "diff --git \"a/caf\\303\\251.txt\" \"b/caf\\303\\251.txt\"\n--- \"a/caf\\303\\251.txt\"\n+++ \"b/caf\\303\\251.txt\"\n@@ -1 +1 @@\n-a\n+b\n"

	diffs := SplitDiffs(raw)
	if len(diffs) != 1 {
		t.Fatalf("expected 1 diff, got %d", len(diffs))
	}
	if diffs[0].Path != "café.txt" {
		t.Errorf("expected decoded path, got %q", diffs[0].Path)
	}
	if diffs[0].Content != raw {
		t.Errorf("content must stay as git wrote it, got:\n%s", diffs[0].Content)
	}
}

func TestSplitPaths_Quoted(t *testing.T) {
	got := SplitPaths("plain.txt\n\"new \\303\\251.txt\"\n\"tab\\there.txt\"\n")
	want := []string{"plain.txt", "new é.txt", "tab\there.txt"}
	if len(got) != len(want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
