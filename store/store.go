package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/schedule"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/types"
)

const (
	profileFile    = "perfil.json"
	chatFile       = "chat_history.json"
	projectsFile   = "proyectos.json"
	prioritiesFile = "last_priorities.json"
	googleToken    = "token.json"
)

// Store persists the application's JSON documents to a data directory.
// It is handed to every caller explicitly; there is no package-level
// instance.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory the store writes under.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name string) string { return filepath.Join(s.dir, name) }

func (s *Store) readJSON(name string, out any) (bool, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return true, nil
}

func (s *Store) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// LoadUserProfile returns nil without error when no profile was saved.
func (s *Store) LoadUserProfile() (*types.UserProfile, error) {
	var p types.UserProfile
	ok, err := s.readJSON(profileFile, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func (s *Store) SaveUserProfile(p types.UserProfile) error {
	return s.writeJSON(profileFile, p)
}

func (s *Store) DeleteUserProfile() error {
	err := os.Remove(s.path(profileFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

func (s *Store) LoadChatHistory() ([]types.ChatMessage, error) {
	history := []types.ChatMessage{}
	if _, err := s.readJSON(chatFile, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (s *Store) SaveChatHistory(history []types.ChatMessage) error {
	return s.writeJSON(chatFile, history)
}

func (s *Store) LoadProjects() ([]types.Project, error) {
	projects := []types.Project{}
	if _, err := s.readJSON(projectsFile, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *Store) SaveProjects(projects []types.Project) error {
	return s.writeJSON(projectsFile, projects)
}

// LoadLastPriorities returns the previously persisted priorities
// document; the boolean reports whether one existed.
func (s *Store) LoadLastPriorities() (schedule.Priorities, bool, error) {
	var p schedule.Priorities
	ok, err := s.readJSON(prioritiesFile, &p)
	return p, ok, err
}

func (s *Store) SaveLastPriorities(p schedule.Priorities) error {
	return s.writeJSON(prioritiesFile, p)
}

// GoogleTokenPath points the calendar client at the stored OAuth token.
func (s *Store) GoogleTokenPath() string { return s.path(googleToken) }

func (s *Store) HasGoogleToken() bool {
	_, err := os.Stat(s.GoogleTokenPath())
	return err == nil
}

func (s *Store) DeleteGoogleToken() error {
	err := os.Remove(s.GoogleTokenPath())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete google token: %w", err)
	}
	return nil
}
