package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	ErrNotFound     = errors.New("profile entry not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Store keeps one profile per session. All mutations replace whole
// fields under the lock, so readers never observe a half-applied edit.
type Store struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{profiles: make(map[string]Profile)}
}

// Get returns the session's profile, creating an empty one on first use.
// The copy is taken while the read lock is held so a concurrent mutation
// cannot be observed mid-clone.
func (s *Store) Get(sessionID string) Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[sessionID]
	if !ok {
		return New()
	}
	return p.clone()
}

// Put replaces the session's whole profile.
func (s *Store) Put(sessionID string, p Profile) {
	s.mu.Lock()
	s.profiles[sessionID] = p.clone()
	s.mu.Unlock()
}

// SetPersonalInfo replaces the personal info block.
func (s *Store) SetPersonalInfo(sessionID string, info PersonalInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getLocked(sessionID)
	p.PersonalInfo = info
	s.profiles[sessionID] = p
}

// AddExperience appends an experience entry.
func (s *Store) AddExperience(sessionID string, entry ExperienceEntry) error {
	if strings.TrimSpace(entry.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getLocked(sessionID)
	p.Experience = append(p.Experience, entry)
	s.profiles[sessionID] = p
	return nil
}

// RemoveExperience deletes the entry at index.
func (s *Store) RemoveExperience(sessionID string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getLocked(sessionID)
	if index < 0 || index >= len(p.Experience) {
		return ErrNotFound
	}
	p.Experience = append(p.Experience[:index], p.Experience[index+1:]...)
	s.profiles[sessionID] = p
	return nil
}

// AddEducation appends an education entry.
func (s *Store) AddEducation(sessionID string, entry EducationEntry) error {
	if strings.TrimSpace(entry.Degree) == "" {
		return fmt.Errorf("%w: degree is required", ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getLocked(sessionID)
	p.Education = append(p.Education, entry)
	s.profiles[sessionID] = p
	return nil
}

// RemoveEducation deletes the entry at index.
func (s *Store) RemoveEducation(sessionID string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getLocked(sessionID)
	if index < 0 || index >= len(p.Education) {
		return ErrNotFound
	}
	p.Education = append(p.Education[:index], p.Education[index+1:]...)
	s.profiles[sessionID] = p
	return nil
}

// AddSkill appends a skill, ignoring duplicates case-insensitively.
func (s *Store) AddSkill(sessionID, skill string) error {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return fmt.Errorf("%w: skill is required", ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getLocked(sessionID)
	for _, existing := range p.Skills {
		if strings.EqualFold(existing, skill) {
			return nil
		}
	}
	p.Skills = append(p.Skills, skill)
	s.profiles[sessionID] = p
	return nil
}

// RemoveSkill deletes a skill by case-insensitive name.
func (s *Store) RemoveSkill(sessionID, skill string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getLocked(sessionID)
	for i, existing := range p.Skills {
		if strings.EqualFold(existing, skill) {
			p.Skills = append(p.Skills[:i], p.Skills[i+1:]...)
			s.profiles[sessionID] = p
			return nil
		}
	}
	return ErrNotFound
}

// AddProject appends a project entry.
func (s *Store) AddProject(sessionID string, entry ProjectEntry) error {
	if strings.TrimSpace(entry.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getLocked(sessionID)
	p.Projects = append(p.Projects, entry)
	s.profiles[sessionID] = p
	return nil
}

// RemoveProject deletes the entry at index.
func (s *Store) RemoveProject(sessionID string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getLocked(sessionID)
	if index < 0 || index >= len(p.Projects) {
		return ErrNotFound
	}
	p.Projects = append(p.Projects[:index], p.Projects[index+1:]...)
	s.profiles[sessionID] = p
	return nil
}

// AddCertification appends a certification.
func (s *Store) AddCertification(sessionID, cert string) error {
	cert = strings.TrimSpace(cert)
	if cert == "" {
		return fmt.Errorf("%w: certification is required", ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getLocked(sessionID)
	p.Certifications = append(p.Certifications, cert)
	s.profiles[sessionID] = p
	return nil
}

// RemoveCertification deletes a certification by case-insensitive name.
func (s *Store) RemoveCertification(sessionID, cert string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getLocked(sessionID)
	for i, existing := range p.Certifications {
		if strings.EqualFold(existing, cert) {
			p.Certifications = append(p.Certifications[:i], p.Certifications[i+1:]...)
			s.profiles[sessionID] = p
			return nil
		}
	}
	return ErrNotFound
}

// Export serializes the session's profile with stable, indented keys.
func (s *Store) Export(sessionID string) ([]byte, error) {
	p := s.Get(sessionID)
	return json.MarshalIndent(p, "", "  ")
}

// Import replaces the session's profile from exported JSON.
func (s *Store) Import(sessionID string, data []byte) error {
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if p.Experience == nil {
		p.Experience = []ExperienceEntry{}
	}
	if p.Education == nil {
		p.Education = []EducationEntry{}
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Projects == nil {
		p.Projects = []ProjectEntry{}
	}
	if p.Certifications == nil {
		p.Certifications = []string{}
	}
	s.Put(sessionID, p)
	return nil
}

// getLocked fetches a private copy of the profile for mutation. Callers
// hold s.mu and publish the edited copy back into the map, so in-place
// appends never touch arrays that an earlier Get may still reference.
func (s *Store) getLocked(sessionID string) Profile {
	p, ok := s.profiles[sessionID]
	if !ok {
		return New()
	}
	return p.clone()
}
