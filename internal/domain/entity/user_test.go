package entity

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUser_FullName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Carla", "Gidacan", "Carla Gidacan"},
		{"Carla", "", "Carla"},
		{"", "Gidacan", "Gidacan"},
	}
	for _, tt := range tests {
		u := &User{FirstName: tt.first, LastName: tt.last}
		if got := u.FullName(); got != tt.want {
			t.Errorf("FullName() = %q, want %q", got, tt.want)
		}
	}
}

func TestUser_IsAdmin(t *testing.T) {
	u := &User{Role: RoleAdmin}
	if !u.IsAdmin() {
		t.Error("IsAdmin() = false, want true")
	}
	u.Role = RoleMember
	if u.IsAdmin() {
		t.Error("IsAdmin() = true, want false")
	}
}

func TestUser_PasswordNeverSerialized(t *testing.T) {
	u := &User{Username: "carla", Password: "$2a$12$hash"}
	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "password") || strings.Contains(string(data), "$2a$12$hash") {
		t.Errorf("serialized user leaks password: %s", data)
	}
}
