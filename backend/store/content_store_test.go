package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	cmserrors "portfolio-cms/backend/common/errors"
)

func TestContentStore_InitializeWritesDefaults(t *testing.T) {
	s := NewContentStore(t.TempDir())
	assert.NoError(t, s.Initialize())

	hero, err := s.ReadSection("hero")
	assert.NoError(t, err)

	var heroData struct {
		Name  string `json:"name"`
		Title string `json:"title"`
	}
	assert.NoError(t, json.Unmarshal(hero, &heroData))
	assert.Equal(t, "Rahul Thakur", heroData.Name)
	assert.Equal(t, ".NET Angular Developer & AI Engineer", heroData.Title)

	for _, section := range []string{"hero", "about", "skills", "projects", "experience", "testimonials", "contact"} {
		_, err := s.ReadSection(section)
		assert.NoError(t, err, section)
	}
}

func TestContentStore_InitializeIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	s := NewContentStore(dir)
	assert.NoError(t, s.Initialize())

	assert.NoError(t, s.WriteSection("hero", json.RawMessage(`{"name":"Edited"}`)))
	assert.NoError(t, s.Initialize())

	hero, err := s.ReadSection("hero")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"name":"Edited"}`, string(hero))
}

func TestContentStore_ReadSectionNotFound(t *testing.T) {
	s := NewContentStore(t.TempDir())
	assert.NoError(t, s.Initialize())

	_, err := s.ReadSection("nonexistent")
	assert.ErrorIs(t, err, cmserrors.ErrSectionNotFound)

	// "settings" is not part of the default document either; it only
	// exists once the admin panel writes it.
	_, err = s.ReadSection("settings")
	assert.ErrorIs(t, err, cmserrors.ErrSectionNotFound)
}

func TestContentStore_WriteSectionRoundTrip(t *testing.T) {
	s := NewContentStore(t.TempDir())
	assert.NoError(t, s.Initialize())

	value := json.RawMessage(`{"name":"Someone Else","stats":{"projects":7},"tags":["a","b"]}`)
	assert.NoError(t, s.WriteSection("hero", value))

	got, err := s.ReadSection("hero")
	assert.NoError(t, err)
	assert.JSONEq(t, string(value), string(got))
}

func TestContentStore_WriteSectionReplacesWholesale(t *testing.T) {
	s := NewContentStore(t.TempDir())
	assert.NoError(t, s.Initialize())

	assert.NoError(t, s.WriteSection("contact", json.RawMessage(`{"email":"new@example.com"}`)))

	got, err := s.ReadSection("contact")
	assert.NoError(t, err)
	// The old phone/github fields must be gone: no merge.
	assert.JSONEq(t, `{"email":"new@example.com"}`, string(got))
}

func TestContentStore_ReadAllDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	s := NewContentStore(dir)

	// Missing file.
	assert.Empty(t, s.ReadAll())

	// Corrupt file.
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "content.json"), []byte("{not json"), 0o644))
	assert.Empty(t, s.ReadAll())
}

func TestContentStore_ConcurrentWritersLoseNothing(t *testing.T) {
	s := NewContentStore(t.TempDir())
	assert.NoError(t, s.Initialize())

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		section := []string{"projects", "experience"}[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				assert.NoError(t, s.WriteSection(section, json.RawMessage(`{"updated":true}`)))
			}
		}()
	}
	wg.Wait()

	for _, section := range []string{"projects", "experience"} {
		got, err := s.ReadSection(section)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"updated":true}`, string(got))
	}
}
