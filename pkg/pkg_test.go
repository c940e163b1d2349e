package pkg

import (
	"os"
	"slices"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	expected := "vinv"
	if Name != expected {
		t.Errorf("Expected Name to be %q, got %q", expected, Name)
	}
}

func TestDescription(t *testing.T) {
	expected := "Vagrant dynamic inventory generator"
	if Description != expected {
		t.Errorf("Expected Description to be %q, got %q", expected, Description)
	}
}

func TestVersion(t *testing.T) {
	// Version is embedded from the VERSION file alongside this package.
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("Failed to read VERSION file: %v", err)
	}

	if content := strings.TrimSpace(string(buf)); strings.TrimSpace(Version) != content {
		t.Errorf("Expected Version to be %q, got %q", content, Version)
	}
}

func TestAuthor(t *testing.T) {
	if len(Author) == 0 {
		t.Error("Expected Author to have at least one entry")
	}

	expectedName := "ardnew"
	expectedEmail := "andrew@ardnew.com"

	if !slices.ContainsFunc(Author, func(a AuthorInfo) bool {
		return a.Name == expectedName && a.Email == expectedEmail
	}) {
		t.Errorf("Expected Author to contain %q, %q", expectedName, expectedEmail)
	}
}

func TestAuthorStruct(t *testing.T) {
	for i, author := range Author {
		if author.Name == "" && author.Email == "" {
			t.Errorf("Author[%d] must define at least Name or Email", i)
		}
	}
}
