package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/llamacodes/postdata/internal/model"
)

func writeContent(t *testing.T, contentPath, dir, body string) {
	t.Helper()
	target := filepath.Join(contentPath, dir)
	if err := os.MkdirAll(target, 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(target, "content.md"), []byte(body), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestNormalizeEntry(t *testing.T) {
	tests := []struct {
		name string
		meta map[string]string
		want *model.Entry
	}{
		{
			name: "created date only",
			meta: map[string]string{"title": "Post", "date_created": "2020-01-05"},
			want: &model.Entry{Title: "Post", Date: "2020/01/05", Directory: "post"},
		},
		{
			name: "updated date wins",
			meta: map[string]string{"title": "Post", "date_created": "2020-01-05", "date_updated": "2021-11-30"},
			want: &model.Entry{Title: "Post", Date: "2021/11/30", Directory: "post"},
		},
		{
			name: "optional fields copied",
			meta: map[string]string{
				"title":      "Post",
				"category":   "go",
				"short_link": "abc",
				"image":      "cover.png",
				"unknown":    "ignored",
			},
			want: &model.Entry{Title: "Post", Category: "go", ShortLink: "abc", Image: "cover.png", Directory: "post"},
		},
		{
			name: "rfc3339 date keeps calendar day",
			meta: map[string]string{"title": "Post", "date_created": "2019-07-04T23:30:00-05:00"},
			want: &model.Entry{Title: "Post", Date: "2019/07/04", Directory: "post"},
		},
		{
			name: "long form date",
			meta: map[string]string{"title": "Post", "date_created": "March 9, 2022"},
			want: &model.Entry{Title: "Post", Date: "2022/03/09", Directory: "post"},
		},
		{
			name: "single digit month and day",
			meta: map[string]string{"title": "Post", "date_created": "2020-1-5"},
			want: &model.Entry{Title: "Post", Date: "2020/01/05", Directory: "post"},
		},
		{
			name: "single digit slash date",
			meta: map[string]string{"title": "Post", "date_created": "2020/1/5"},
			want: &model.Entry{Title: "Post", Date: "2020/01/05", Directory: "post"},
		},
		{
			name: "us date",
			meta: map[string]string{"title": "Post", "date_created": "1/5/2020"},
			want: &model.Entry{Title: "Post", Date: "2020/01/05", Directory: "post"},
		},
		{
			name: "long form date without comma",
			meta: map[string]string{"title": "Post", "date_created": "January 5 2020"},
			want: &model.Entry{Title: "Post", Date: "2020/01/05", Directory: "post"},
		},
		{
			name: "short month without comma",
			meta: map[string]string{"title": "Post", "date_created": "Jan 5 2020"},
			want: &model.Entry{Title: "Post", Date: "2020/01/05", Directory: "post"},
		},
		{
			name: "datetime without seconds",
			meta: map[string]string{"title": "Post", "date_created": "2020-01-05T10:00"},
			want: &model.Entry{Title: "Post", Date: "2020/01/05", Directory: "post"},
		},
		{
			name: "rfc1123 date",
			meta: map[string]string{"title": "Post", "date_updated": "Sun, 05 Jan 2020 10:00:00 GMT"},
			want: &model.Entry{Title: "Post", Date: "2020/01/05", Directory: "post"},
		},
		{
			name: "rfc1123 numeric zone",
			meta: map[string]string{"title": "Post", "date_updated": "Sun, 05 Jan 2020 23:00:00 -0700"},
			want: &model.Entry{Title: "Post", Date: "2020/01/05", Directory: "post"},
		},
		{name: "draft", meta: map[string]string{"title": "Post", "draft": "true"}},
		{name: "hidden", meta: map[string]string{"title": "Post", "hide": "true"}},
		{name: "no title", meta: map[string]string{"date_created": "2020-01-05"}},
		{name: "blank title", meta: map[string]string{"title": "   "}},
		{name: "no title with bad date", meta: map[string]string{"date_created": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeEntry("post", tt.meta)
			if err != nil {
				t.Fatalf("NormalizeEntry: %v", err)
			}
			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected entry to be excluded, got %#v", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected entry, got nil")
			}
			got.Published = time.Time{}
			if *got != *tt.want {
				t.Fatalf("NormalizeEntry = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestNormalizeEntryDraftFalseIsKept(t *testing.T) {
	got, err := NormalizeEntry("post", map[string]string{"title": "Post", "draft": "false", "hide": "no"})
	if err != nil {
		t.Fatalf("NormalizeEntry: %v", err)
	}
	if got == nil {
		t.Fatalf("expected entry to be kept")
	}
}

func TestNormalizeEntryInvalidDate(t *testing.T) {
	_, err := NormalizeEntry("broken", map[string]string{"title": "Post", "date_updated": "someday"})
	if err == nil {
		t.Fatalf("expected error for unparseable date")
	}

	var dateErr *InvalidDateError
	if !errors.As(err, &dateErr) {
		t.Fatalf("expected InvalidDateError, got %T", err)
	}
	if dateErr.Directory != "broken" || dateErr.Key != "date_updated" || dateErr.Value != "someday" {
		t.Fatalf("unexpected error fields %#v", dateErr)
	}
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected errors.Is ErrInvalidDate")
	}
}

func TestSortEntries(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
	entries := []*model.Entry{
		{Directory: "undated-a"},
		{Directory: "old", Published: day(2019, 1, 1)},
		{Directory: "new", Published: day(2022, 5, 1)},
		{Directory: "same-1", Published: day(2020, 6, 1)},
		{Directory: "undated-b"},
		{Directory: "same-2", Published: day(2020, 6, 1)},
	}

	SortEntries(entries)

	want := []string{"new", "same-1", "same-2", "old", "undated-a", "undated-b"}
	for i, dir := range want {
		if entries[i].Directory != dir {
			t.Fatalf("position %d: got %s, want %s", i, entries[i].Directory, dir)
		}
	}
}

func TestContentServiceDirectoriesSkipsReserved(t *testing.T) {
	contentPath := t.TempDir()
	for _, dir := range []string{"posts", "l3a", ".git", "b-post", "a-post"} {
		writeContent(t, contentPath, dir, "---\ntitle: "+dir+"\n---\n")
	}
	if err := os.WriteFile(filepath.Join(contentPath, "README.md"), []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	dirs, err := NewContentService(contentPath, "content.md", []string{"posts", "l3a"}).Directories()
	if err != nil {
		t.Fatalf("Directories: %v", err)
	}
	if len(dirs) != 2 || dirs[0] != "a-post" || dirs[1] != "b-post" {
		t.Fatalf("unexpected directories %v", dirs)
	}
}

func TestContentServiceReservedDirsAreNeverRead(t *testing.T) {
	contentPath := t.TempDir()
	// Reserved folders without a content file would fail the scan if they were read.
	for _, dir := range []string{"posts", ".git"} {
		if err := os.MkdirAll(filepath.Join(contentPath, dir), 0755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
	}
	writeContent(t, contentPath, "hello", "---\ntitle: Hello\n---\n")

	entries, err := NewContentService(contentPath, "content.md", []string{"posts", "l3a"}).Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 1 || entries[0].Directory != "hello" {
		t.Fatalf("unexpected entries %#v", entries)
	}
}

func TestContentServiceEntriesMissingFile(t *testing.T) {
	contentPath := t.TempDir()
	if err := os.MkdirAll(filepath.Join(contentPath, "empty"), 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	_, err := NewContentService(contentPath, "content.md", nil).Entries()
	if err == nil {
		t.Fatalf("expected error for folder without content.md")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestContentServiceEntriesSortedAndFiltered(t *testing.T) {
	contentPath := t.TempDir()
	writeContent(t, contentPath, "first", "---\ntitle: First\ndate_created: 2020-01-05\n---\nbody\n")
	writeContent(t, contentPath, "second", "---\ntitle: Second\ndate_created: 2020-01-01\ndate_updated: 2023-02-02\n---\n")
	writeContent(t, contentPath, "draft", "---\ntitle: Draft\ndraft: true\ndate_created: 2024-01-01\n---\n")
	writeContent(t, contentPath, "hidden", "---\ntitle: Hidden\nhide: \"true\"\n---\n")
	writeContent(t, contentPath, "untitled", "---\ndate_created: 2024-01-01\n---\n")

	entries, err := NewContentService(contentPath, "content.md", nil).Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %#v", len(entries), entries)
	}
	if entries[0].Directory != "second" || entries[0].Date != "2023/02/02" {
		t.Fatalf("unexpected first entry %#v", entries[0])
	}
	if entries[1].Directory != "first" || entries[1].Date != "2020/01/05" {
		t.Fatalf("unexpected second entry %#v", entries[1])
	}
}
