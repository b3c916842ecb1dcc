// Package seed provisions the administrator account.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile describes the administrator account to provision
type Profile struct {
	FirstName     string `yaml:"firstName"`
	LastName      string `yaml:"lastName"`
	Age           int    `yaml:"age"`
	Gender        string `yaml:"gender"`
	ContactNumber string `yaml:"contactNumber"`
	Username      string `yaml:"username"`
	Email         string `yaml:"email"`
	Password      string `yaml:"password"`
	Address       string `yaml:"address"`
}

// DefaultProfile returns the built-in administrator profile
func DefaultProfile() Profile {
	return Profile{
		FirstName:     "Carla",
		LastName:      "Gidacan",
		Age:           21,
		Gender:        "Female",
		ContactNumber: "09559409739",
		Username:      "carla",
		Email:         "carla@example.com",
		Password:      "12345",
		Address:       "Address",
	}
}

// LoadProfile reads a profile from a YAML file
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks the profile has the fields the account needs
func (p Profile) Validate() error {
	if p.Email == "" {
		return fmt.Errorf("profile: email is required")
	}
	if p.Username == "" {
		return fmt.Errorf("profile: username is required")
	}
	if p.Password == "" {
		return fmt.Errorf("profile: password is required")
	}
	return nil
}
