package document

import (
	"testing"
)

func TestCollectionNames(t *testing.T) {
	if got := (ArticleDocument{}).CollectionName(); got != "articles" {
		t.Errorf("ArticleDocument.CollectionName() = %q, want articles", got)
	}
	if got := (UserDocument{}).CollectionName(); got != "users" {
		t.Errorf("UserDocument.CollectionName() = %q, want users", got)
	}
}
