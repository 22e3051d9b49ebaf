package tree

import "testing"

func TestIsSkippedMatchesWholeNamesOnly(t *testing.T) {
	testCases := []struct {
		name      string
		entryName string
		expected  bool
	}{
		{name: "git_directory", entryName: ".git", expected: true},
		{name: "dependency_directory", entryName: "node_modules", expected: true},
		{name: "editor_directory", entryName: ".vscode", expected: true},
		{name: "finder_metadata", entryName: ".DS_Store", expected: true},
		{name: "different_case", entryName: ".GIT", expected: false},
		{name: "prefix_only", entryName: ".gitignore", expected: false},
		{name: "suffix_only", entryName: "mylib", expected: false},
		{name: "empty_name", entryName: "", expected: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if actual := IsSkipped(testCase.entryName); actual != testCase.expected {
				t.Fatalf("IsSkipped(%q) = %t, expected %t", testCase.entryName, actual, testCase.expected)
			}
		})
	}
}
