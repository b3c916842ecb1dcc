package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/gidacan/blog-backend/internal/domain/entity"
)

func TestNewSuccessWithData(t *testing.T) {
	resp := NewSuccessWithData("created", ArticleResponse{ID: 1, Name: "post"})
	if !resp.Success {
		t.Error("Success = false")
	}
	if resp.Message != "created" {
		t.Errorf("Message = %q", resp.Message)
	}
	if resp.Data.ID != 1 {
		t.Errorf("Data.ID = %d", resp.Data.ID)
	}
}

func TestNewError(t *testing.T) {
	resp := NewError("user not found")
	if resp.Success {
		t.Error("Success = true")
	}
	if resp.Error != "user not found" {
		t.Errorf("Error = %q", resp.Error)
	}
}

func TestNewPagedResponse(t *testing.T) {
	items := []ArticleResponse{{ID: 1}, {ID: 2}}
	resp := NewPagedResponse(items, 1, 2, 5)
	if resp.Page.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", resp.Page.TotalPages)
	}
	if resp.Page.TotalItems != 5 {
		t.Errorf("TotalItems = %d, want 5", resp.Page.TotalItems)
	}
}

func TestNewPagedResponse_NilItems(t *testing.T) {
	resp := NewPagedResponse[ArticleResponse](nil, 1, 20, 0)
	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	// Empty pages serialize as [], not null
	if !strings.Contains(string(b), `"data":[]`) {
		t.Errorf("body = %s", b)
	}
}

func TestUserResponse_OmitsPassword(t *testing.T) {
	u := &entity.User{
		ID:        1,
		FirstName: "Carla",
		Username:  "carla",
		Email:     "carla@example.com",
		Password:  "$2a$12$hash",
		Role:      entity.RoleAdmin,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	b, err := json.Marshal(NewUserResponse(u))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	body := string(b)
	if strings.Contains(body, "password") || strings.Contains(body, "$2a$") {
		t.Errorf("password leaked: %s", body)
	}
	if !strings.Contains(body, `"type":"admin"`) {
		t.Errorf("role not serialized as type: %s", body)
	}
}
