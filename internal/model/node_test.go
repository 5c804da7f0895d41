package model_test

import (
	"testing"

	"github.com/tabdash/tabdash/internal/model"
)

func TestBookmarkNode_IsFolder(t *testing.T) {
	tests := []struct {
		name string
		node model.BookmarkNode
		want bool
	}{
		{
			name: "leaf bookmark",
			node: model.BookmarkNode{ID: "b1", Title: "Go", URL: "https://go.dev"},
			want: false,
		},
		{
			name: "folder with children",
			node: model.BookmarkNode{ID: "f1", Title: "Dev", Children: []model.BookmarkNode{{ID: "b1", URL: "https://go.dev"}}},
			want: true,
		},
		{
			name: "empty folder still classifies as folder",
			node: model.BookmarkNode{ID: "f2", Title: "Empty", Children: []model.BookmarkNode{}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.IsFolder(); got != tt.want {
				t.Errorf("IsFolder() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsReservedRoot(t *testing.T) {
	for _, id := range []string{"1", "2", "3"} {
		if !model.IsReservedRoot(id) {
			t.Errorf("expected %q to be a reserved root", id)
		}
	}
	for _, id := range []string{"", "4", "10", "abc"} {
		if model.IsReservedRoot(id) {
			t.Errorf("did not expect %q to be a reserved root", id)
		}
	}
}

func TestNewFolderNode_HasEmptyChildren(t *testing.T) {
	f := model.NewFolderNode("Work", "1")
	if f.Children == nil {
		t.Fatal("folder node must have non-nil Children")
	}
	if !f.IsFolder() {
		t.Error("new folder node must classify as folder")
	}
	if f.ID == "" {
		t.Error("expected generated ID")
	}
}
