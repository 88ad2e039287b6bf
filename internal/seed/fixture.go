package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture is the declarative seed format. Articles reference users,
// categories and tags by their natural keys so the file carries no
// database ids.
type Fixture struct {
	Users      []UserFixture    `yaml:"users"`
	Categories []TermFixture    `yaml:"categories"`
	Tags       []TermFixture    `yaml:"tags"`
	Articles   []ArticleFixture `yaml:"articles"`
}

type UserFixture struct {
	Email       string `yaml:"email"`
	DisplayName string `yaml:"displayName"`
	Role        string `yaml:"role"`
	Password    string `yaml:"password"`
}

type TermFixture struct {
	Code   string `yaml:"code"`
	NameEn string `yaml:"nameEn"`
	NameBn string `yaml:"nameBn"`
}

type TranslationFixture struct {
	Lang    string `yaml:"lang"`
	Title   string `yaml:"title"`
	Slug    string `yaml:"slug"`
	Excerpt string `yaml:"excerpt"`
	Body    string `yaml:"body"`
}

type ArticleFixture struct {
	AuthorEmail  string               `yaml:"authorEmail"`
	CategoryCode string               `yaml:"categoryCode"`
	Status       string               `yaml:"status"`
	TagCodes     []string             `yaml:"tagCodes"`
	Translations []TranslationFixture `yaml:"translations"`
}

func LoadFromFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture YAML: %w", err)
	}

	for i, u := range f.Users {
		if u.Email == "" {
			return nil, fmt.Errorf("user at index %d has no email", i)
		}
		if u.Password == "" {
			return nil, fmt.Errorf("user %q has no password", u.Email)
		}
	}
	for i, c := range f.Categories {
		if c.Code == "" {
			return nil, fmt.Errorf("category at index %d has no code", i)
		}
	}
	for i, tg := range f.Tags {
		if tg.Code == "" {
			return nil, fmt.Errorf("tag at index %d has no code", i)
		}
	}
	for i, a := range f.Articles {
		if a.AuthorEmail == "" {
			return nil, fmt.Errorf("article at index %d has no authorEmail", i)
		}
		if len(a.Translations) == 0 {
			return nil, fmt.Errorf("article at index %d has no translations", i)
		}
	}

	return &f, nil
}
